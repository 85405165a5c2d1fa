package text

// Metrics holds the vertical metrics of a font in font units.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent int

	// Descent is the distance from the baseline to the bottom of the font,
	// stored as a positive value.
	Descent int

	// LineGap is the recommended gap between lines.
	LineGap int

	// XHeight is the height of lowercase letters (like 'x').
	XHeight int

	// CapHeight is the height of uppercase letters.
	CapHeight int
}

// LineHeight returns the recommended distance between baselines of
// consecutive lines (ascent + descent + line gap).
func (m Metrics) LineHeight() int {
	return m.Ascent + m.Descent + m.LineGap
}
