package text

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// All metrics are reported in font units.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// Ascender returns the distance from the baseline to the top of the
	// font's vertical extent (positive).
	Ascender() int

	// Metrics returns the font's vertical metrics.
	Metrics() Metrics

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the horizontal advance of a glyph.
	GlyphAdvance(gid GlyphID) int

	// Kern returns the kerning adjustment for the glyph pair (a, b).
	// Returns 0 if the font has no kern table or no entry for the pair.
	Kern(a, b GlyphID) int

	// LoadOutline appends the outline segments of a glyph to dst.
	// Each contour is terminated by an OutlineOpClose segment.
	// A glyph without contours appends nothing and returns no error.
	LoadOutline(dst []OutlineSegment, gid GlyphID) ([]OutlineSegment, error)
}

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
