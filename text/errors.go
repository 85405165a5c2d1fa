package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrSourceClosed is returned when a closed FontSource is queried.
	ErrSourceClosed = errors.New("text: font source is closed")
)

// ErrUnsupportedFontType is returned when the parsed font cannot provide
// outlines or shaping data.
var ErrUnsupportedFontType = &FontError{Reason: "unsupported font type"}

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}
