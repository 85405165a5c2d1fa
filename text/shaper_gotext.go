package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning pairs (AV, To, etc.)
//   - Mark positioning
//   - Complex scripts (Devanagari, Thai, etc.)
//
// Text is shaped at a size equal to the font's units per em, so every
// advance and offset comes out in font units.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape() call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	fontCache map[*FontSource]*font.Font

	config shaperConfig
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper(opts ...ShaperOption) *GoTextShaper {
	config := defaultShaperConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
		config:    config,
	}
}

// LoadSource implements SourceLoader. It parses the source with go-text
// and caches the result, so a font go-text cannot read is rejected early.
func (s *GoTextShaper) LoadSource(source *FontSource) error {
	_, err := s.getOrCreateFont(source)
	return err
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(dst []ShapedGlyph, text string, source *FontSource) []ShapedGlyph {
	if text == "" || source == nil {
		return dst
	}
	upem := source.UnitsPerEm()
	if upem == 0 {
		return dst
	}

	goTextFont, err := s.getOrCreateFont(source)
	if err != nil {
		Logger().Warn("text: font not shaped", "font", source.Name(), "err", err)
		return dst
	}

	runes := []rune(text)
	dir := s.resolveDirection(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(goTextFont),
		Size:      fixed.Int26_6(upem) << 6,
		Script:    detectScript(runes),
		Language:  language.NewLanguage(s.config.language),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return appendGlyphs(dst, output.Glyphs, dir, runeByteOffsets(text, len(runes)))
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	data := source.Data()
	if len(data) == 0 {
		return nil, ErrSourceClosed
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	goTextFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Reason: "go-text cannot parse font: " + err.Error()}
	}

	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

func (s *GoTextShaper) resolveDirection(text string) di.Direction {
	d := s.config.direction
	if d == DirectionAuto {
		d = DetectDirection(text)
	}
	return mapDirection(d)
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

// detectScript returns the script of the first non-space character.
// For mixed-script text, callers should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// runeByteOffsets maps rune index to byte index in text.
// The extra trailing entry holds len(text).
func runeByteOffsets(text string, n int) []int {
	offsets := make([]int, 0, n+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}

// appendGlyphs converts go-text output glyphs to ShapedGlyph values in font units.
func appendGlyphs(dst []ShapedGlyph, glyphs []shaping.Glyph, dir di.Direction, offsets []int) []ShapedGlyph {
	for _, g := range glyphs {
		cluster := g.TextIndex()
		if cluster >= 0 && cluster < len(offsets) {
			cluster = offsets[cluster]
		}

		sg := ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph IDs in sfnt fonts fit in 16 bits
			Cluster: cluster,
			XOffset: g.XOffset.Round(),
			YOffset: g.YOffset.Round(),
		}
		if dir.IsVertical() {
			sg.YAdvance = g.Advance.Round()
		} else {
			sg.XAdvance = g.Advance.Round()
		}
		dst = append(dst, sg)
	}
	return dst
}
