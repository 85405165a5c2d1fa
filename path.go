package textpath

import (
	"math"
	"strconv"
	"strings"
)

// PathCommand is a single command of a path produced by a PathIterator.
// The concrete type is one of MoveTo, LineTo, QuadTo, CubicTo or Close.
type PathCommand interface {
	isPathCommand()
}

// MoveTo starts a new contour at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathCommand() {}

// LineTo draws a line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathCommand() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathCommand() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathCommand() {}

// Close closes the current contour.
type Close struct{}

func (Close) isPathCommand() {}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Path is a growable list of path commands.
// The zero value is an empty path ready to use.
type Path struct {
	commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		commands: make([]PathCommand, 0, 64),
	}
}

// Append adds commands to the end of the path.
func (p *Path) Append(cmds ...PathCommand) {
	p.commands = append(p.commands, cmds...)
}

// Commands returns the path commands. The slice must not be modified.
func (p *Path) Commands() []PathCommand {
	return p.commands
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.commands)
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.commands = p.commands[:0]
}

// Bounds returns the bounding box of every point of the path, control
// points included. An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	seen := false

	add := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
		seen = true
	}

	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			add(c.Point)
		case LineTo:
			add(c.Point)
		case QuadTo:
			add(c.Control)
			add(c.Point)
		case CubicTo:
			add(c.Control1)
			add(c.Control2)
			add(c.Point)
		}
	}
	if !seen {
		return Rect{}
	}
	return Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}
}

// Transform returns a new path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{commands: make([]PathCommand, 0, len(p.commands))}
	for _, cmd := range p.commands {
		switch c := cmd.(type) {
		case MoveTo:
			result.commands = append(result.commands, MoveTo{Point: m.TransformPoint(c.Point)})
		case LineTo:
			result.commands = append(result.commands, LineTo{Point: m.TransformPoint(c.Point)})
		case QuadTo:
			result.commands = append(result.commands, QuadTo{
				Control: m.TransformPoint(c.Control),
				Point:   m.TransformPoint(c.Point),
			})
		case CubicTo:
			result.commands = append(result.commands, CubicTo{
				Control1: m.TransformPoint(c.Control1),
				Control2: m.TransformPoint(c.Control2),
				Point:    m.TransformPoint(c.Point),
			})
		case Close:
			result.commands = append(result.commands, Close{})
		}
	}
	return result
}

// SVGData returns the path as SVG path data ("M x y L x y Q ... C ... Z").
// Coordinates are written with at most precision fractional digits.
func (p *Path) SVGData(precision int) string {
	var sb strings.Builder
	for _, cmd := range p.commands {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch c := cmd.(type) {
		case MoveTo:
			sb.WriteByte('M')
			writePoints(&sb, precision, c.Point)
		case LineTo:
			sb.WriteByte('L')
			writePoints(&sb, precision, c.Point)
		case QuadTo:
			sb.WriteByte('Q')
			writePoints(&sb, precision, c.Control, c.Point)
		case CubicTo:
			sb.WriteByte('C')
			writePoints(&sb, precision, c.Control1, c.Control2, c.Point)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writePoints(sb *strings.Builder, precision int, pts ...Point) {
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatCoord(pt.X, precision))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(pt.Y, precision))
	}
}

// formatCoord formats v with trailing zeros removed.
func formatCoord(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
