package loader

import "errors"

var (
	// ErrNotFound indicates an unknown work name.
	ErrNotFound = errors.New("loader: asteroid not found")

	// ErrMissingFile indicates a required catalogue, spin or lightcurve file is absent.
	ErrMissingFile = errors.New("loader: missing data file")

	// ErrCatalogue indicates a malformed asteroids.csv or an ambiguous name.
	ErrCatalogue = errors.New("loader: invalid asteroid catalogue")
)
