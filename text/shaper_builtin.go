package text

// BuiltinShaper provides text shaping using golang.org/x/image/font/sfnt.
// It supports Latin, Cyrillic, Greek, CJK, and other scripts that don't
// require complex text shaping (ligatures, contextual forms, etc.).
//
// Every rune maps to exactly one glyph, so glyph i always corresponds to
// rune i of the text. Pairwise kerning from the legacy kern table is
// applied to the advance of the left glyph.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct {
	// DisableKerning turns off kern table lookups.
	DisableKerning bool
}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(dst []ShapedGlyph, text string, source *FontSource) []ShapedGlyph {
	if text == "" || source == nil {
		return dst
	}

	parsed := source.Parsed()
	if parsed == nil {
		return dst
	}

	start := len(dst)
	for i, r := range text {
		gid := parsed.GlyphIndex(r)
		dst = append(dst, ShapedGlyph{
			GID:      gid,
			Cluster:  i,
			XAdvance: parsed.GlyphAdvance(gid),
		})
	}

	if !s.DisableKerning {
		for i := start; i+1 < len(dst); i++ {
			dst[i].XAdvance += parsed.Kern(dst[i].GID, dst[i+1].GID)
		}
	}

	return dst
}
