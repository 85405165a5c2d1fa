package textpath

import (
	"testing"

	"github.com/gogpu/textpath/text"
	"golang.org/x/image/font/gofont/goregular"
)

// fakeGlyph describes one glyph of a fakeFont.
type fakeGlyph struct {
	gid     text.GlyphID
	advance int
}

// fakeFont is a GlyphOutliner and TextShaper with hand-made glyphs.
// It shapes one glyph per rune; unknown runes map to glyph 0 with no
// advance and no outline.
type fakeFont struct {
	upem     int
	ascender int
	glyphs   map[rune]fakeGlyph
	outlines map[text.GlyphID][]text.OutlineSegment
	errs     map[text.GlyphID]error
}

func (f *fakeFont) UnitsPerEm() int { return f.upem }
func (f *fakeFont) Ascender() int   { return f.ascender }

func (f *fakeFont) AppendOutline(dst []text.OutlineSegment, gid text.GlyphID) ([]text.OutlineSegment, error) {
	if err := f.errs[gid]; err != nil {
		return dst, err
	}
	return append(dst, f.outlines[gid]...), nil
}

func (f *fakeFont) Shape(dst []text.ShapedGlyph, s string) []text.ShapedGlyph {
	for i, r := range s {
		g := f.glyphs[r]
		dst = append(dst, text.ShapedGlyph{
			GID:      g.gid,
			Cluster:  i,
			XAdvance: g.advance,
		})
	}
	return dst
}

func pt(x, y float32) text.OutlinePoint {
	return text.OutlinePoint{X: x, Y: y}
}

// triangle is a single contour: MoveTo, LineTo, LineTo, Close.
func triangle() []text.OutlineSegment {
	return []text.OutlineSegment{
		{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{pt(0, 0)}},
		{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{pt(512, 0)}},
		{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{pt(256, 512)}},
		{Op: text.OutlineOpClose},
	}
}

// newFakeFont returns a font with a 1024 unit em and a 768 unit ascender,
// so that every coordinate in the tests is exact in float64.
//
//	'A' gid 1, advance 600, triangle
//	'B' gid 2, advance 400, no outline
//	'a' gid 3, advance 600, triangle
//	'b' gid 4, advance 600, triangle
//	' ' gid 5, advance 300, no outline
func newFakeFont() *fakeFont {
	return &fakeFont{
		upem:     1024,
		ascender: 768,
		glyphs: map[rune]fakeGlyph{
			'A': {gid: 1, advance: 600},
			'B': {gid: 2, advance: 400},
			'a': {gid: 3, advance: 600},
			'b': {gid: 4, advance: 600},
			' ': {gid: 5, advance: 300},
		},
		outlines: map[text.GlyphID][]text.OutlineSegment{
			1: triangle(),
			3: triangle(),
			4: triangle(),
		},
	}
}

func newFakeCollection(f *fakeFont) *Collection {
	c := New()
	c.PushFace(f, f)
	return c
}

func testFontSource(t *testing.T) *text.FontSource {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(goregular) error = %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}
