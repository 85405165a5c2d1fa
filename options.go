package textpath

import "github.com/gogpu/textpath/text"

// Option configures a Collection during creation.
//
// Example:
//
//	// Default: go-text shaping, 512 cached outlines per font
//	fonts := textpath.New()
//
//	// One glyph per rune, unlimited outline cache
//	fonts := textpath.New(
//	    textpath.WithShaper(&text.BuiltinShaper{}),
//	    textpath.WithSourceOptions(text.WithCacheLimit(0)),
//	)
type Option func(*collectionOptions)

// collectionOptions holds optional configuration for Collection creation.
type collectionOptions struct {
	shaper     text.Shaper
	sourceOpts []text.SourceOption
}

// WithShaper sets the shaper used for fonts added with Push and PushSource.
// When unset, the package-level shaper from text.GetShaper is used at the
// time the font is pushed.
func WithShaper(s text.Shaper) Option {
	return func(o *collectionOptions) {
		o.shaper = s
	}
}

// WithSourceOptions sets the options used to create font sources in Push.
func WithSourceOptions(opts ...text.SourceOption) Option {
	return func(o *collectionOptions) {
		o.sourceOpts = append(o.sourceOpts, opts...)
	}
}
