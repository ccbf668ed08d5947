package binner

import "errors"

var (
	// ErrInvalidAnchor indicates an Anchor outside the closed set.
	ErrInvalidAnchor = errors.New("binner: invalid anchor")

	// ErrBadMaxGap indicates a negative or NaN gap threshold.
	ErrBadMaxGap = errors.New("binner: max gap must be >= 0")

	// ErrBadMinBinSize indicates a negative minimum bin size.
	ErrBadMinBinSize = errors.New("binner: min bin size must be >= 0")

	// ErrEmptyInput is returned by the grid helpers for zero bins.
	ErrEmptyInput = errors.New("binner: no bins")

	// ErrGridMismatch indicates rows*cols differs from the number of bins.
	ErrGridMismatch = errors.New("binner: grid size does not match the number of bins")
)
