package textpath

import "github.com/gogpu/textpath/text"

// Collection is an ordered list of fonts used to render text into paths.
//
// Only the first font is used by Render; later fonts are kept for callers
// that manage fallback themselves.
//
// Collection is NOT safe for concurrent use, and at most one PathIterator
// obtained from it may be active at a time.
type Collection struct {
	fonts []*StyledFont

	// scratch is lent to the active PathIterator.
	scratch   []PathCommand
	rendering bool

	opts collectionOptions
}

// New creates an empty Collection.
func New(opts ...Option) *Collection {
	var o collectionOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection{
		scratch: make([]PathCommand, 0, 64),
		opts:    o,
	}
}

// Push parses font data (TTF or OTF) and appends the font.
// On error the Collection is left unchanged.
func (c *Collection) Push(data []byte) error {
	c.checkIdle()

	src, err := text.NewFontSource(data, c.opts.sourceOpts...)
	if err != nil {
		return err
	}
	if err := c.pushSource(src); err != nil {
		_ = src.Close()
		return err
	}
	return nil
}

// PushSource appends an already loaded font source.
// On error the Collection is left unchanged.
func (c *Collection) PushSource(src *text.FontSource) error {
	c.checkIdle()

	if src == nil {
		return ErrNilSource
	}
	if src.Parsed() == nil {
		return text.ErrSourceClosed
	}
	return c.pushSource(src)
}

func (c *Collection) pushSource(src *text.FontSource) error {
	shaper := c.opts.shaper
	if shaper == nil {
		shaper = text.GetShaper()
	}
	if loader, ok := shaper.(text.SourceLoader); ok {
		if err := loader.LoadSource(src); err != nil {
			return err
		}
	}

	c.fonts = append(c.fonts, NewStyledFont(src, sourceShaper{shaper: c.opts.shaper, source: src}))
	Logger().Debug("textpath: font pushed",
		"name", src.Name(),
		"glyphs", src.NumGlyphs(),
		"unitsPerEm", src.UnitsPerEm(),
		"fonts", len(c.fonts))
	return nil
}

// PushFace appends a font built from custom collaborators.
func (c *Collection) PushFace(o GlyphOutliner, s TextShaper) {
	c.checkIdle()
	c.fonts = append(c.fonts, NewStyledFont(o, s))
}

// Len returns the number of fonts in the Collection.
func (c *Collection) Len() int {
	return len(c.fonts)
}

// Font returns the i-th font. It panics if i is out of range.
func (c *Collection) Font(i int) *StyledFont {
	return c.fonts[i]
}

// Render shapes s with the first font, plans line breaks and returns an
// iterator over the resulting path commands.
//
// rowLength is the maximum line advance in font units. rowDrop is added
// to the pen's Y position at every break; negative values move down.
//
// Render panics with ErrRenderInProgress if a previous iterator is still
// active and with ErrNoFonts if the Collection is empty.
func (c *Collection) Render(s string, rowLength, rowDrop int) *PathIterator {
	c.checkIdle()
	if len(c.fonts) == 0 {
		panic(ErrNoFonts)
	}

	f := c.fonts[0]
	f.shape(s)
	breaks := planLineBreaks(nil, s, f.glyphs, rowLength)
	Logger().Debug("textpath: render planned",
		"bytes", len(s),
		"glyphs", len(f.glyphs),
		"breaks", len(breaks),
		"rowLength", rowLength)

	it := &PathIterator{
		c:       c,
		font:    f,
		count:   len(f.glyphs),
		buf:     c.scratch[:0],
		breaks:  breaks,
		rowDrop: rowDrop,
	}
	c.scratch = nil
	c.rendering = true
	return it
}

// Collect renders s and gathers every command into a new Path.
// It returns the path and the final pen position.
func (c *Collection) Collect(s string, rowLength, rowDrop int) (*Path, PenOffset) {
	it := c.Render(s, rowLength, rowDrop)
	p := NewPath()
	for cmd := range it.All() {
		p.Append(cmd)
	}
	return p, it.Offset()
}

func (c *Collection) checkIdle() {
	if c.rendering {
		panic(ErrRenderInProgress)
	}
}
