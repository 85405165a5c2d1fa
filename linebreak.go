package textpath

import "github.com/gogpu/textpath/text"

// planLineBreaks appends to dst the byte indices of s at which a line ends.
//
// Characters of s are paired with glyphs by position until either runs out.
// A newline always breaks at its own index. Otherwise a break happens once
// the accumulated advance exceeds rowLength: at the last space of the line
// when there is one, at the current character when there is not.
//
// The returned indices are ascending. They are later matched against glyph
// indices, which is exact only when shaping maps characters to glyphs one
// to one.
func planLineBreaks(dst []int, s string, glyphs []text.ShapedGlyph, rowLength int) []int {
	xPos := 0
	lastSpace := -1
	gi := 0

	for i, r := range s {
		if gi >= len(glyphs) {
			break
		}
		xPos += glyphs[gi].XAdvance
		gi++

		switch {
		case r == ' ':
			lastSpace = i
			continue
		case r == '\n':
			dst = append(dst, i)
		case xPos > rowLength:
			if lastSpace >= 0 {
				dst = append(dst, lastSpace)
			} else {
				dst = append(dst, i)
			}
		default:
			continue
		}
		xPos = 0
		lastSpace = -1
	}
	return dst
}
