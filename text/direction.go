package text

import "golang.org/x/text/unicode/bidi"

// DetectDirection returns the base direction of text following the first
// strong character rule (UAX #9, P2/P3). Text without a strong character
// is treated as LTR.
//
// Only the base direction is computed; runs of the opposite direction are
// not reordered.
func DetectDirection(text string) Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}
