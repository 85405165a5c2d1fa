package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		return nil, &FontError{Reason: "font has no units per em"}
	}
	xf := &ximageParsedFont{
		font: f,
		upem: upem,
		// Loading at ppem == unitsPerEm makes sfnt report font units
		// in 26.6 fixed point.
		ppem: fixed.Int26_6(upem) << 6,
	}
	buf := xf.getBuffer()
	defer xf.putBuffer(buf)
	m, err := f.Metrics(buf, xf.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font metrics: %w", err)
	}
	xf.metrics = Metrics{
		Ascent:    m.Ascent.Round(),
		Descent:   m.Descent.Round(),
		LineGap:   (m.Height - m.Ascent - m.Descent).Round(),
		XHeight:   m.XHeight.Round(),
		CapHeight: m.CapHeight.Round(),
	}
	return xf, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as every goroutine brings
// its own sfnt.Buffer, so buffers are pooled.
type ximageParsedFont struct {
	font    *opentype.Font
	upem    int
	ppem    fixed.Int26_6
	metrics Metrics
	buffers sync.Pool
}

func (f *ximageParsedFont) getBuffer() *sfnt.Buffer {
	if b, ok := f.buffers.Get().(*sfnt.Buffer); ok {
		return b
	}
	return &sfnt.Buffer{}
}

func (f *ximageParsedFont) putBuffer(b *sfnt.Buffer) {
	f.buffers.Put(b)
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return f.upem
}

// Ascender implements ParsedFont.Ascender.
func (f *ximageParsedFont) Ascender() int {
	return f.metrics.Ascent
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics() Metrics {
	return f.metrics
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID) int {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	advance, err := f.font.GlyphAdvance(buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return advance.Round()
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(a, b GlyphID) int {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	k, err := f.font.Kern(buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), f.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return k.Round()
}

// LoadOutline implements ParsedFont.LoadOutline.
//
// sfnt reports outlines with the Y axis pointing down and without explicit
// close operations; both are undone here so that the result matches the
// font's own coordinate system.
func (f *ximageParsedFont) LoadOutline(dst []OutlineSegment, gid GlyphID) ([]OutlineSegment, error) {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	segments, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		return dst, fmt.Errorf("text: failed to load glyph %d: %w", gid, err)
	}

	open := false
	for _, seg := range segments {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				dst = append(dst, OutlineSegment{Op: OutlineOpClose})
			}
			open = true
			out.Op = OutlineOpMoveTo
			out.Points[0] = fontUnitPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
			out.Points[0] = fontUnitPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
			out.Points[0] = fontUnitPoint(seg.Args[0])
			out.Points[1] = fontUnitPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
			out.Points[0] = fontUnitPoint(seg.Args[0])
			out.Points[1] = fontUnitPoint(seg.Args[1])
			out.Points[2] = fontUnitPoint(seg.Args[2])
		default:
			continue
		}
		dst = append(dst, out)
	}
	if open {
		dst = append(dst, OutlineSegment{Op: OutlineOpClose})
	}
	return dst, nil
}

// fontUnitPoint converts a Y-down 26.6 point loaded at ppem == unitsPerEm
// into a Y-up point in font units.
func fontUnitPoint(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: -float32(p.Y) / 64.0,
	}
}
