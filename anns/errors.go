package anns

import "errors"

var (
	// ErrInvalidInput is returned when vectors of different lengths are
	// compared or a vector holds a value other than 0 or 1.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateParameters is returned when a collection, vector length,
	// round count or sample width is too small (or too large) for the
	// search to be meaningful.
	ErrDegenerateParameters = errors.New("degenerate parameters")
)
