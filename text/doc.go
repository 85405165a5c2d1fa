// Package text provides the font collaborators used by textpath.
//
// The package separates font handling into three concerns:
//
//   - FontSource: a parsed font file (TTF or OTF) that exposes metrics and
//     glyph outlines in font units
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//   - Shaper: converts text into positioned glyphs in font units
//
// All geometry produced here is in font units with the Y axis pointing up,
// exactly as stored in the font. Scaling and flipping into caller space is
// done by package textpath.
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	glyphs := text.Shape(nil, "Hello", source)
//	for _, g := range glyphs {
//	    segs, _ := source.AppendOutline(nil, g.GID)
//	    fmt.Println(g.GID, g.XAdvance, len(segs))
//	}
//
// # Shapers
//
// Two shapers are provided. GoTextShaper (the default) runs HarfBuzz shaping
// from go-text/typesetting and applies kerning, ligatures and mark
// positioning. BuiltinShaper maps one rune to one glyph using the cmap,
// hmtx and kern tables only.
//
//	text.SetShaper(&text.BuiltinShaper{})
//	defer text.SetShaper(nil) // Reset to default
package text
