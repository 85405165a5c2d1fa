package text

import "sync"

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting (default)
//   - BuiltinShaper: one glyph per rune from cmap, hmtx and kern tables
type Shaper interface {
	// Shape appends the shaped glyphs for text to dst and returns the
	// extended slice. All positions are in font units of source.
	// A nil or closed source, or empty text, appends nothing. A source the
	// shaper cannot read also appends nothing; GoTextShaper logs it at Warn.
	Shape(dst []ShapedGlyph, text string, source *FontSource) []ShapedGlyph
}

// SourceLoader is implemented by shapers that parse the font data with
// their own backend. LoadSource reports whether that backend accepts the
// source, so callers can reject a font before first use.
type SourceLoader interface {
	LoadSource(source *FontSource) error
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// SetShaper sets the global shaper used by Shape().
// Pass nil to reset to the default GoTextShaper.
//
// Example usage with the builtin shaper:
//
//	text.SetShaper(&text.BuiltinShaper{})
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(dst []ShapedGlyph, text string, source *FontSource) []ShapedGlyph {
	return GetShaper().Shape(dst, text, source)
}
