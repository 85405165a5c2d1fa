package textpath

import (
	"errors"
	"testing"

	"github.com/gogpu/textpath/text"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func newGoRegular(t *testing.T, opts ...Option) *Collection {
	t.Helper()
	c := New(opts...)
	if err := c.Push(goregular.TTF); err != nil {
		t.Fatalf("Push(goregular) error = %v", err)
	}
	return c
}

// rejectingShaper shapes like BuiltinShaper but refuses every source.
type rejectingShaper struct {
	text.BuiltinShaper
}

func (*rejectingShaper) LoadSource(*text.FontSource) error {
	return errors.New("rejected")
}

func TestPushInvalidData(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"nil", nil, text.ErrEmptyFontData},
		{"empty", []byte{}, text.ErrEmptyFontData},
		{"truncated", goregular.TTF[:100], nil},
		{"garbage", []byte("not a font at all"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.Push(tt.data)
			if err == nil {
				t.Fatal("Push() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Push() error = %v, want %v", err, tt.wantErr)
			}
			if c.Len() != 0 {
				t.Errorf("Len() = %d after failed Push, want 0", c.Len())
			}
		})
	}
}

func TestPushFailureKeepsExistingFonts(t *testing.T) {
	c := newGoRegular(t)
	if err := c.Push(goregular.TTF[:100]); err == nil {
		t.Fatal("Push(truncated) error = nil, want error")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestPushMultiple(t *testing.T) {
	c := newGoRegular(t)
	if err := c.Push(gomono.TTF); err != nil {
		t.Fatalf("Push(gomono) error = %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestPushShaperRejectsSource(t *testing.T) {
	c := New(WithShaper(&rejectingShaper{}))
	if err := c.Push(goregular.TTF); err == nil {
		t.Fatal("Push() error = nil, want rejection")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestPushSource(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}

	c := New()
	if err := c.PushSource(nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("PushSource(nil) error = %v, want ErrNilSource", err)
	}
	if err := c.PushSource(src); err != nil {
		t.Fatalf("PushSource() error = %v", err)
	}

	closed, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	_ = closed.Close()
	if err := c.PushSource(closed); !errors.Is(err, text.ErrSourceClosed) {
		t.Errorf("PushSource(closed) error = %v, want ErrSourceClosed", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestRenderProducesOutlines(t *testing.T) {
	c := newGoRegular(t)

	path, pen := c.Collect("Hello, world", 1<<20, -2400)

	visible := 0
	for _, cmd := range path.Commands() {
		if _, ok := cmd.(Close); !ok {
			visible++
		}
	}
	if visible == 0 {
		t.Fatal("no drawing commands produced")
	}
	if pen.X <= 0 || pen.Y != 0 {
		t.Errorf("pen = %+v, want positive X on the first line", pen)
	}

	b := path.Bounds()
	if b.Empty() {
		t.Errorf("Bounds() = %+v, want non-empty", b)
	}
	// Ten visible glyphs of a proportional font span several ems.
	if b.Width() < 3 {
		t.Errorf("Bounds().Width() = %v, want >= 3 em", b.Width())
	}
}

func TestRenderNoBreaksWhenTextFits(t *testing.T) {
	c := newGoRegular(t)

	it := c.Render("the quick brown fox", 1<<20, -2400)
	defer it.Close()
	if breaks := it.LineBreaks(); len(breaks) != 0 {
		t.Errorf("LineBreaks() = %v, want none", breaks)
	}
}

func TestRenderNewlineBreak(t *testing.T) {
	c := newGoRegular(t, WithShaper(&text.BuiltinShaper{}))

	for _, rowLength := range []int{0, 500, 1 << 20} {
		it := c.Render("ab\ncd", rowLength, -2400)
		breaks := it.LineBreaks()
		it.Close()

		found := 0
		for _, b := range breaks {
			if b == 2 {
				found++
			}
		}
		if found != 1 {
			t.Errorf("rowLength %d: LineBreaks() = %v, want exactly one break at 2", rowLength, breaks)
		}
	}
}

func TestRenderPenStaysBounded(t *testing.T) {
	c := newGoRegular(t)
	const (
		rowLength = 10000
		rowDrop   = -2400
	)
	s := "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod " +
		"tempor incididunt ut labore et dolore magna aliqua Ut enim ad minim veniam"

	it := c.Render(s, rowLength, rowDrop)
	maxAdvance := 0
	for _, g := range c.Font(0).Glyphs() {
		maxAdvance = max(maxAdvance, g.XAdvance)
	}
	drain(it)

	pen := it.Offset()
	breaks := it.LineBreaks()
	if len(breaks) == 0 {
		t.Fatal("expected the text to wrap")
	}
	if pen.Y != len(breaks)*rowDrop {
		t.Errorf("pen.Y = %d, want %d", pen.Y, len(breaks)*rowDrop)
	}
	if pen.X > 2*rowLength+maxAdvance {
		t.Errorf("pen.X = %d exceeds %d", pen.X, 2*rowLength+maxAdvance)
	}
}

func TestRenderIdempotent(t *testing.T) {
	c := newGoRegular(t)

	first, pen1 := c.Collect("Idempotent text\nwith two lines", 8000, -2400)
	// Render something else in between so the glyph cache is reused.
	c.Collect("other", 8000, -2400)
	second, pen2 := c.Collect("Idempotent text\nwith two lines", 8000, -2400)

	if diff := cmp.Diff(first.Commands(), second.Commands()); diff != "" {
		t.Errorf("re-render mismatch (-first +second):\n%s", diff)
	}
	if pen1 != pen2 {
		t.Errorf("pen mismatch: %+v vs %+v", pen1, pen2)
	}
}

func TestRenderBuiltinMatchesGoTextForLatin(t *testing.T) {
	const s = "Simple Latin"

	gotext := newGoRegular(t)
	builtin := newGoRegular(t, WithShaper(&text.BuiltinShaper{DisableKerning: true}))

	gotext.Render(s, 1<<20, 0).Close()
	builtin.Render(s, 1<<20, 0).Close()

	if g, b := len(gotext.Font(0).Glyphs()), len(builtin.Font(0).Glyphs()); g != b {
		t.Errorf("glyph count: gotext %d, builtin %d", g, b)
	}
}

func TestRenderInProgressPanics(t *testing.T) {
	c := newFakeCollection(newFakeFont())
	it := c.Render("ab", 100000, 0)
	defer it.Close()

	for _, tt := range []struct {
		name string
		fn   func()
	}{
		{"Render", func() { c.Render("ab", 100000, 0) }},
		{"Push", func() { _ = c.Push(goregular.TTF) }},
		{"PushFace", func() { c.PushFace(newFakeFont(), newFakeFont()) }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrRenderInProgress) {
					t.Errorf("recover() = %v, want ErrRenderInProgress", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestRenderEmptyCollectionPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNoFonts {
			t.Errorf("recover() = %v, want ErrNoFonts", r)
		}
	}()
	New().Render("a", 100, 0)
}

func TestRenderEmptyText(t *testing.T) {
	c := newFakeCollection(newFakeFont())
	it := c.Render("", 100, 0)
	if _, ok := it.Next(); ok {
		t.Error("Next() on empty text = true, want false")
	}
	if it.Offset() != (PenOffset{}) {
		t.Errorf("Offset() = %+v, want zero", it.Offset())
	}
	// Released on exhaustion.
	c.Render("a", 100, 0).Close()
}

func TestRenderUsesFirstFontOnly(t *testing.T) {
	first := newFakeFont()
	second := newFakeFont()
	second.glyphs['A'] = fakeGlyph{gid: 1, advance: 9999}

	c := New()
	c.PushFace(first, first)
	c.PushFace(second, second)

	_, pen := c.Collect("A", 100000, 0)
	if pen.X != 600 {
		t.Errorf("pen.X = %d, want 600 from the first font", pen.X)
	}
}
