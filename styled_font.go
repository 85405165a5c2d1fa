package textpath

import (
	"fmt"

	"github.com/gogpu/textpath/text"
)

// GlyphOutliner provides a font's metrics and glyph outlines in font units.
// *text.FontSource implements GlyphOutliner.
type GlyphOutliner interface {
	// UnitsPerEm returns the size of the font's design grid.
	UnitsPerEm() int

	// Ascender returns the distance from the baseline to the top of the
	// font, in font units.
	Ascender() int

	// AppendOutline appends the outline of gid to dst, Y axis up.
	// A glyph without contours appends nothing and is not an error.
	AppendOutline(dst []text.OutlineSegment, gid text.GlyphID) ([]text.OutlineSegment, error)
}

// TextShaper converts a string into positioned glyphs in font units.
// Cluster values of the returned glyphs are byte indices into s.
type TextShaper interface {
	Shape(dst []text.ShapedGlyph, s string) []text.ShapedGlyph
}

// sourceShaper binds a text.Shaper to one font source.
// A nil shaper resolves to the package-level shaper on every call.
type sourceShaper struct {
	shaper text.Shaper
	source *text.FontSource
}

func (s sourceShaper) Shape(dst []text.ShapedGlyph, str string) []text.ShapedGlyph {
	shaper := s.shaper
	if shaper == nil {
		shaper = text.GetShaper()
	}
	return shaper.Shape(dst, str, s.source)
}

// StyledFont pairs one font's outlines with its shaper and keeps the
// shaped glyphs of the most recent render.
//
// StyledFont is NOT safe for concurrent use.
type StyledFont struct {
	outliner GlyphOutliner
	shaper   TextShaper

	// glyphs is truncated and refilled by every shape call.
	glyphs []text.ShapedGlyph

	// outline is scratch space for one glyph's segments.
	outline []text.OutlineSegment
}

// NewStyledFont creates a StyledFont from an outline provider and a shaper.
func NewStyledFont(o GlyphOutliner, s TextShaper) *StyledFont {
	return &StyledFont{outliner: o, shaper: s}
}

// Glyphs returns the glyphs shaped by the most recent render.
// The slice is reused by the next render and must not be modified.
func (f *StyledFont) Glyphs() []text.ShapedGlyph {
	return f.glyphs
}

func (f *StyledFont) shape(s string) {
	f.glyphs = f.shaper.Shape(f.glyphs[:0], s)
}

// appendGlyphPath appends the path of shaped glyph i to dst and advances
// pen by the glyph's advance. The pen moves before the outline is loaded,
// so glyphs without an outline still advance it.
func (f *StyledFont) appendGlyphPath(i int, dst []PathCommand, pen *PenOffset) []PathCommand {
	if i < 0 || i >= len(f.glyphs) {
		panic(fmt.Sprintf("textpath: glyph index %d out of range [0:%d]", i, len(f.glyphs)))
	}
	g := f.glyphs[i]

	offset := Point{
		X: float64(g.XOffset + pen.X),
		Y: float64(g.YOffset + pen.Y),
	}
	pen.X += g.XAdvance
	pen.Y += g.YAdvance

	var err error
	f.outline, err = f.outliner.AppendOutline(f.outline[:0], g.GID)
	if err != nil {
		Logger().Warn("textpath: glyph outline unavailable", "gid", g.GID, "err", err)
		return dst
	}
	if len(f.outline) == 0 {
		return dst
	}

	upem := f.outliner.UnitsPerEm()
	if upem <= 0 {
		return dst
	}
	t := outlineTransform{
		scale:    1 / float64(upem),
		ascender: float64(f.outliner.Ascender()),
		offset:   offset,
	}
	return t.appendSegments(dst, f.outline)
}
