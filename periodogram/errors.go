package periodogram

import "errors"

var (
	// ErrBadNTerms indicates NTerms < 1.
	ErrBadNTerms = errors.New("periodogram: nterms must be >= 1")

	// ErrBadTopK indicates TopK < 1.
	ErrBadTopK = errors.New("periodogram: top k must be >= 1")

	// ErrBadGrid indicates a negative or non-finite MaxFreq, non-positive or
	// non-finite sampling factors, or a grid larger than MaxGridSize.
	ErrBadGrid = errors.New("periodogram: invalid frequency grid options")

	// ErrTooFewPoints indicates fewer points than the 2·nterms+1 model terms.
	ErrTooFewPoints = errors.New("periodogram: not enough points for the requested harmonics")

	// ErrLengthMismatch indicates times and values of different lengths.
	ErrLengthMismatch = errors.New("periodogram: times and values differ in length")

	// ErrZeroBaseline indicates all samples share one timestamp.
	ErrZeroBaseline = errors.New("periodogram: zero time baseline")

	// ErrFlatSignal indicates a constant series with no variance to explain.
	ErrFlatSignal = errors.New("periodogram: constant signal")

	// ErrNoFrequencies indicates MaxFreq below the lowest grid frequency.
	ErrNoFrequencies = errors.New("periodogram: empty frequency grid")
)
