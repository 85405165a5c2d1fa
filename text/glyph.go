package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// ShapedGlyph is one element of shaping output.
// All fields are in font units. Shaping order is the order in which glyphs
// are laid out, which is not necessarily the order of the source text.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the byte index in the source text of the first
	// character this glyph was produced from.
	Cluster int

	// XAdvance is the horizontal pen advance after this glyph.
	XAdvance int

	// YAdvance is the vertical pen advance (for vertical text).
	YAdvance int

	// XOffset and YOffset displace the glyph from the pen position
	// without moving the pen (mark positioning, etc.).
	XOffset int
	YOffset int
}
