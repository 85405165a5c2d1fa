package textpath

import "github.com/gogpu/textpath/text"

// outlineTransform maps glyph outlines from font space (Y up, font units)
// to output space (Y down, em units):
//
//	X' = (x + offset.X) * scale
//	Y' = (ascender - (y + offset.Y)) * scale
//
// offset already includes the running pen position.
type outlineTransform struct {
	scale    float64
	ascender float64
	offset   Point
}

func (t outlineTransform) apply(p text.OutlinePoint) Point {
	return Point{
		X: (float64(p.X) + t.offset.X) * t.scale,
		Y: (t.ascender - (float64(p.Y) + t.offset.Y)) * t.scale,
	}
}

// appendSegments appends the transformed segments to dst, preserving
// segment kinds and point order.
func (t outlineTransform) appendSegments(dst []PathCommand, segs []text.OutlineSegment) []PathCommand {
	for _, seg := range segs {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			dst = append(dst, MoveTo{Point: t.apply(seg.Points[0])})
		case text.OutlineOpLineTo:
			dst = append(dst, LineTo{Point: t.apply(seg.Points[0])})
		case text.OutlineOpQuadTo:
			dst = append(dst, QuadTo{
				Control: t.apply(seg.Points[0]),
				Point:   t.apply(seg.Points[1]),
			})
		case text.OutlineOpCubicTo:
			dst = append(dst, CubicTo{
				Control1: t.apply(seg.Points[0]),
				Control2: t.apply(seg.Points[1]),
				Point:    t.apply(seg.Points[2]),
			})
		case text.OutlineOpClose:
			dst = append(dst, Close{})
		}
	}
	return dst
}
