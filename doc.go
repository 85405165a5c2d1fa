// Package textpath turns text into a lazily produced sequence of vector
// path commands.
//
// # Overview
//
// A Collection holds one or more fonts. Render shapes a string with the
// first font, plans greedy line breaks against a maximum row length, and
// returns a PathIterator. Each call to Next yields one PathCommand
// (MoveTo, LineTo, QuadTo, CubicTo or Close); glyph outlines are decoded
// one glyph at a time as the iterator crosses glyph boundaries.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textpath"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	fonts := textpath.New()
//	if err := fonts.Push(goregular.TTF); err != nil {
//	    log.Fatal(err)
//	}
//
//	it := fonts.Render("Hello, world", 20000, -2400)
//	for cmd := range it.All() {
//	    fmt.Println(cmd)
//	}
//	fmt.Println("pen:", it.Offset())
//
// # Coordinate System
//
// Row length, row drop and the pen offset are in font units. Emitted
// commands are in em units with the Y axis pointing down:
//   - Origin (0,0) at the top-left of the first line (the font ascender)
//   - X increases right, 1.0 == one em
//   - Y increases down
//
// A negative row drop moves subsequent lines down.
//
// # Limitations
//
// Only the first font of a Collection is used. Line breaks are computed
// by character and matched by glyph index, which is exact only when the
// shaper maps characters to glyphs one to one.
//
// # Concurrency
//
// A Collection supports one active PathIterator at a time. Calling Render
// again before the previous iterator is exhausted or closed panics.
package textpath
