package text

// OutlinePoint represents a point in a glyph outline.
// Coordinates are in font units with the Y axis pointing up.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	// - Close: no points
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo

	// OutlineOpClose closes the current contour.
	OutlineOpClose
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	case OutlineOpClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns how many entries of Points the operation uses.
func (op OutlineOp) PointCount() int {
	switch op {
	case OutlineOpMoveTo, OutlineOpLineTo:
		return 1
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 0
	}
}

// GlyphOutline represents the vector outline of a glyph in font units.
// The outline consists of zero or more closed contours.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Bounds is the control-point bounding box of the outline.
	Bounds Rect

	// Advance is the horizontal advance width of the glyph.
	Advance int

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// SegmentCount returns the number of segments in the outline.
func (o *GlyphOutline) SegmentCount() int {
	return len(o.Segments)
}

// ContourCount returns the number of closed contours in the outline.
func (o *GlyphOutline) ContourCount() int {
	n := 0
	for _, seg := range o.Segments {
		if seg.Op == OutlineOpClose {
			n++
		}
	}
	return n
}

// Clone creates a deep copy of the outline.
func (o *GlyphOutline) Clone() *GlyphOutline {
	if o == nil {
		return nil
	}

	clone := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Bounds:   o.Bounds,
		Advance:  o.Advance,
		GID:      o.GID,
	}
	copy(clone.Segments, o.Segments)
	return clone
}

// OutlineExtractor extracts glyph outlines from parsed fonts.
// It reuses a segment buffer between calls.
//
// OutlineExtractor is NOT safe for concurrent use.
type OutlineExtractor struct {
	segments []OutlineSegment
}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// ExtractOutline extracts the outline for a glyph in font units.
// A glyph without contours (e.g. space) yields an empty outline that still
// carries the advance.
func (e *OutlineExtractor) ExtractOutline(font ParsedFont, gid GlyphID) (*GlyphOutline, error) {
	if font == nil {
		return nil, ErrUnsupportedFontType
	}

	var err error
	e.segments, err = font.LoadOutline(e.segments[:0], gid)
	if err != nil {
		return nil, err
	}

	outline := &GlyphOutline{
		GID:     gid,
		Advance: font.GlyphAdvance(gid),
	}
	if len(e.segments) == 0 {
		return outline, nil
	}

	outline.Segments = make([]OutlineSegment, len(e.segments))
	copy(outline.Segments, e.segments)
	outline.Bounds = segmentBounds(outline.Segments)
	return outline, nil
}

// segmentBounds returns the bounding box of all points used by segments.
func segmentBounds(segments []OutlineSegment) Rect {
	minX, minY := float64(1e10), float64(1e10)
	maxX, maxY := float64(-1e10), float64(-1e10)
	seen := false

	for _, seg := range segments {
		for j := 0; j < seg.Op.PointCount(); j++ {
			p := seg.Points[j]
			updateBounds(p, &minX, &minY, &maxX, &maxY)
			seen = true
		}
	}
	if !seen {
		return Rect{}
	}
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// updateBounds updates the min/max bounds.
func updateBounds(p OutlinePoint, minX, minY, maxX, maxY *float64) {
	if float64(p.X) < *minX {
		*minX = float64(p.X)
	}
	if float64(p.Y) < *minY {
		*minY = float64(p.Y)
	}
	if float64(p.X) > *maxX {
		*maxX = float64(p.X)
	}
	if float64(p.Y) > *maxY {
		*maxY = float64(p.Y)
	}
}
