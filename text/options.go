package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,               // Default outline cache limit
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithCacheLimit sets the maximum number of cached glyph outlines.
// A value of 0 disables the cache limit; a negative value disables caching.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// ShaperOption configures a GoTextShaper.
type ShaperOption func(*shaperConfig)

// shaperConfig holds configuration for GoTextShaper.
type shaperConfig struct {
	direction Direction
	language  string
}

// defaultShaperConfig returns the default shaper configuration.
func defaultShaperConfig() shaperConfig {
	return shaperConfig{
		direction: DirectionLTR,
		language:  "en",
	}
}

// WithDirection sets the shaping direction.
// DirectionAuto selects LTR or RTL from the first strong character.
func WithDirection(d Direction) ShaperOption {
	return func(c *shaperConfig) {
		c.direction = d
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "ja", "ar").
func WithLanguage(lang string) ShaperOption {
	return func(c *shaperConfig) {
		c.language = lang
	}
}
