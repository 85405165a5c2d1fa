package text

import (
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// It exposes the font's metrics and glyph outlines in font units and keeps
// an LRU cache of decoded outlines.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	name string

	// mu guards data and parsed against Close.
	mu sync.RWMutex

	// outlines caches decoded glyph outlines; nil when caching is disabled.
	outlines *Cache[GlyphID, *GlyphOutline]

	// Configuration
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure caching and parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Copy before parsing: sfnt keeps referencing the slice it parsed.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := getParser(config.parserName).Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(parsed)
	if config.cacheLimit >= 0 {
		s.outlines = NewCache[GlyphID, *GlyphOutline](config.cacheLimit)
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
// Returns nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Data returns the raw font bytes. The slice must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// UnitsPerEm returns the size of the font's design grid.
// Returns 0 after Close.
func (s *FontSource) UnitsPerEm() int {
	if p := s.Parsed(); p != nil {
		return p.UnitsPerEm()
	}
	return 0
}

// Ascender returns the font ascender in font units.
// Returns 0 after Close.
func (s *FontSource) Ascender() int {
	if p := s.Parsed(); p != nil {
		return p.Ascender()
	}
	return 0
}

// Metrics returns the font's vertical metrics in font units.
// Returns zero metrics after Close.
func (s *FontSource) Metrics() Metrics {
	if p := s.Parsed(); p != nil {
		return p.Metrics()
	}
	return Metrics{}
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	if p := s.Parsed(); p != nil {
		return p.NumGlyphs()
	}
	return 0
}

// Outline returns the outline of a glyph in font units.
// The returned outline is shared with the cache and must not be modified.
func (s *FontSource) Outline(gid GlyphID) (*GlyphOutline, error) {
	parsed := s.Parsed()
	if parsed == nil {
		return nil, ErrSourceClosed
	}

	if s.outlines != nil {
		if o, ok := s.outlines.Get(gid); ok {
			return o, nil
		}
	}

	o, err := NewOutlineExtractor().ExtractOutline(parsed, gid)
	if err != nil {
		return nil, err
	}
	if s.outlines != nil {
		s.outlines.Set(gid, o)
	}
	return o, nil
}

// AppendOutline appends the outline segments of gid to dst.
// A glyph without contours appends nothing.
func (s *FontSource) AppendOutline(dst []OutlineSegment, gid GlyphID) ([]OutlineSegment, error) {
	o, err := s.Outline(gid)
	if err != nil {
		return dst, err
	}
	return append(dst, o.Segments...), nil
}

// CacheStats reports the outline cache counters.
func (s *FontSource) CacheStats() CacheStats {
	s.copyCheck()
	if s.outlines == nil {
		return CacheStats{}
	}
	return s.outlines.Stats()
}

// Close releases resources associated with the FontSource.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil
	if s.outlines != nil {
		s.outlines.Clear()
	}

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}

	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}

	return "Unknown Font"
}
