package text

import (
	"testing"
)

func TestBuiltinShaper_OneGlyphPerRune(t *testing.T) {
	source := testSource(t)
	shaper := &BuiltinShaper{}

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single", "A", 1},
		{"word", "Hello", 5},
		{"with space", "Hello World", 11},
		{"cyrillic", "Привет", 6},
		{"newline", "a\nb", 3},
		{"mixed widths", "aПр€b", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyphs := shaper.Shape(nil, tt.text, source)
			if len(glyphs) != tt.want {
				t.Fatalf("Shape(%q): got %d glyphs, want %d", tt.text, len(glyphs), tt.want)
			}

			gi := 0
			for i := range tt.text {
				if glyphs[gi].Cluster != i {
					t.Errorf("glyph %d: Cluster = %d, want %d", gi, glyphs[gi].Cluster, i)
				}
				gi++
			}
		})
	}
}

func TestBuiltinShaper_Advances(t *testing.T) {
	source := testSource(t)
	parsed := source.Parsed()

	glyphs := (&BuiltinShaper{DisableKerning: true}).Shape(nil, "ab", source)
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(glyphs))
	}
	for i, r := range "ab" {
		gid := parsed.GlyphIndex(r)
		if glyphs[i].GID != gid {
			t.Errorf("glyph %d: GID = %d, want %d", i, glyphs[i].GID, gid)
		}
		if glyphs[i].XAdvance != parsed.GlyphAdvance(gid) {
			t.Errorf("glyph %d: XAdvance = %d, want %d", i, glyphs[i].XAdvance, parsed.GlyphAdvance(gid))
		}
		if glyphs[i].YAdvance != 0 || glyphs[i].XOffset != 0 || glyphs[i].YOffset != 0 {
			t.Errorf("glyph %d: unexpected offsets %+v", i, glyphs[i])
		}
	}
}

func TestBuiltinShaper_AppendsToDst(t *testing.T) {
	source := testSource(t)

	dst := make([]ShapedGlyph, 1, 8)
	dst = (&BuiltinShaper{}).Shape(dst, "xy", source)
	if len(dst) != 3 {
		t.Fatalf("len = %d, want 3", len(dst))
	}
	if dst[0] != (ShapedGlyph{}) {
		t.Error("existing element was modified")
	}
}

func TestBuiltinShaper_NilSource(t *testing.T) {
	if got := (&BuiltinShaper{}).Shape(nil, "abc", nil); got != nil {
		t.Errorf("Shape with nil source = %v, want nil", got)
	}
}

func TestSetShaper(t *testing.T) {
	t.Cleanup(func() { SetShaper(nil) })

	if _, ok := GetShaper().(*GoTextShaper); !ok {
		t.Fatalf("default shaper = %T, want *GoTextShaper", GetShaper())
	}

	builtin := &BuiltinShaper{}
	SetShaper(builtin)
	if GetShaper() != builtin {
		t.Error("GetShaper() did not return the shaper set via SetShaper")
	}

	source := testSource(t)
	if got := Shape(nil, "abc", source); len(got) != 3 {
		t.Errorf("Shape() via global builtin shaper = %d glyphs, want 3", len(got))
	}

	SetShaper(nil)
	if _, ok := GetShaper().(*GoTextShaper); !ok {
		t.Errorf("SetShaper(nil) should restore *GoTextShaper, got %T", GetShaper())
	}
}
