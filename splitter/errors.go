package splitter

import "errors"

var (
	// ErrBadMaxGap indicates a negative or NaN gap threshold.
	ErrBadMaxGap = errors.New("splitter: max gap must be >= 0")

	// ErrBadMinPoints indicates a negative minimum run size.
	ErrBadMinPoints = errors.New("splitter: min points must be >= 0")
)
