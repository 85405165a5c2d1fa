package textpath

import "errors"

// Sentinel errors for textpath.
var (
	// ErrRenderInProgress is the panic value when a Collection is rendered
	// or modified while a PathIterator obtained from it is still active.
	ErrRenderInProgress = errors.New("textpath: render in progress")

	// ErrNoFonts is the panic value when an empty Collection is rendered.
	ErrNoFonts = errors.New("textpath: collection has no fonts")

	// ErrNilSource is returned when a nil font source is pushed.
	ErrNilSource = errors.New("textpath: nil font source")
)
