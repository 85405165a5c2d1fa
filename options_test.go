package textpath

import (
	"testing"

	"github.com/gogpu/textpath/text"
)

func pushedSource(t *testing.T, c *Collection, i int) *text.FontSource {
	t.Helper()
	src, ok := c.Font(i).outliner.(*text.FontSource)
	if !ok {
		t.Fatalf("font %d outliner = %T, want *text.FontSource", i, c.Font(i).outliner)
	}
	return src
}

func TestWithSourceOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []text.SourceOption
		wantCached bool
	}{
		{"default cache", nil, true},
		{"cache disabled", []text.SourceOption{text.WithCacheLimit(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newGoRegular(t, WithSourceOptions(tt.opts...))
			c.Collect("aa", 1<<20, 0)

			stats := pushedSource(t, c, 0).CacheStats()
			if got := stats.Hits > 0; got != tt.wantCached {
				t.Errorf("CacheStats() = %+v, want hits: %v", stats, tt.wantCached)
			}
		})
	}
}

func TestWithShaper(t *testing.T) {
	c := newGoRegular(t, WithShaper(&text.BuiltinShaper{}))
	shaper, ok := c.Font(0).shaper.(sourceShaper)
	if !ok {
		t.Fatalf("shaper = %T, want sourceShaper", c.Font(0).shaper)
	}
	if _, ok := shaper.shaper.(*text.BuiltinShaper); !ok {
		t.Errorf("bound shaper = %T, want *text.BuiltinShaper", shaper.shaper)
	}
}

func TestDefaultShaperFollowsGlobal(t *testing.T) {
	t.Cleanup(func() { text.SetShaper(nil) })

	c := newGoRegular(t)
	text.SetShaper(&text.BuiltinShaper{})

	// "fi" stays two glyphs with the builtin shaper even if the font has a ligature.
	c.Render("fi", 1<<20, 0).Close()
	if got := len(c.Font(0).Glyphs()); got != 2 {
		t.Errorf("glyph count = %d, want 2", got)
	}
}
