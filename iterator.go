package textpath

import (
	"iter"
	"slices"
)

// PenOffset is the pen position in font units.
type PenOffset struct {
	X, Y int
}

// PathIterator lazily produces the path commands of one render.
//
// Commands come out glyph by glyph in shaping order, then contour by
// contour. Glyphs without an outline are skipped after advancing the pen.
// A PathIterator is single pass: once Next reports false it stays done.
//
// The iterator holds its Collection until it is exhausted or closed.
type PathIterator struct {
	c    *Collection
	font *StyledFont

	glyph int // next glyph to produce
	count int

	buf []PathCommand // commands of the current glyph
	cmd int           // next command in buf

	pen     PenOffset
	breaks  []int
	rowDrop int
	done    bool
}

// Next returns the next path command, or false when the text is exhausted.
func (it *PathIterator) Next() (PathCommand, bool) {
	if it.done {
		return nil, false
	}
	for {
		if it.cmd < len(it.buf) {
			cmd := it.buf[it.cmd]
			it.cmd++
			return cmd, true
		}

		it.buf = it.buf[:0]
		it.cmd = 0
		if it.glyph >= it.count {
			it.release()
			return nil, false
		}

		it.buf = it.font.appendGlyphPath(it.glyph, it.buf, &it.pen)
		if it.isBreak(it.glyph) {
			it.pen.X = 0
			it.pen.Y += it.rowDrop
		}
		it.glyph++
	}
}

// All returns an iterator over the remaining path commands.
// It shares state with Next. Stopping a range loop early keeps the
// PathIterator active; call Close to release it.
func (it *PathIterator) All() iter.Seq[PathCommand] {
	return func(yield func(PathCommand) bool) {
		for {
			cmd, ok := it.Next()
			if !ok || !yield(cmd) {
				return
			}
		}
	}
}

// Offset returns the current pen position. After the iterator is exhausted
// it is the position following the last glyph.
func (it *PathIterator) Offset() PenOffset {
	return it.pen
}

// LineBreaks returns the byte indices of the text at which lines end.
func (it *PathIterator) LineBreaks() []int {
	return slices.Clone(it.breaks)
}

// Close stops the iteration and releases the Collection.
// Close is idempotent.
func (it *PathIterator) Close() {
	it.release()
}

func (it *PathIterator) isBreak(glyph int) bool {
	_, found := slices.BinarySearch(it.breaks, glyph)
	return found
}

func (it *PathIterator) release() {
	if it.done {
		return
	}
	it.done = true
	it.c.scratch = it.buf[:0]
	it.c.rendering = false
	it.buf = nil
	it.cmd = 0
}
