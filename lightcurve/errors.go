// SPDX-License-Identifier: MIT

package lightcurve

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "lightcurve: ". Operations wrap these with
// the operation name; callers match with errors.Is.
var (
	// ErrNoPoints is returned when a lightcurve would have zero points.
	ErrNoPoints = errors.New("lightcurve: at least one point is required")

	// ErrPointsCountMismatch indicates the declared points count disagrees
	// with the parsed point list.
	ErrPointsCountMismatch = errors.New("lightcurve: points count does not match points")

	// ErrNegativePeriod indicates last JD < first JD after sorting.
	ErrNegativePeriod = errors.New("lightcurve: negative period")

	// ErrBadPoint indicates a point record with the wrong arity or a
	// non-numeric field.
	ErrBadPoint = errors.New("lightcurve: malformed point record")

	// ErrBadRecord indicates a lightcurve record that cannot be decoded.
	ErrBadRecord = errors.New("lightcurve: malformed lightcurve record")

	// ErrEmptyBin is returned when a bin would hold no lightcurves.
	ErrEmptyBin = errors.New("lightcurve: bin must contain at least one lightcurve")

	// ErrEmptyInput is returned by range and folding helpers given no curves.
	ErrEmptyInput = errors.New("lightcurve: no lightcurves given")

	// ErrNotFound indicates a lookup by id on an absent key.
	ErrNotFound = errors.New("lightcurve: not found")

	// ErrInvalidOption indicates an unsupported SortBy value.
	ErrInvalidOption = errors.New("lightcurve: invalid option")

	// ErrBadPeriod indicates a non-positive folding period.
	ErrBadPeriod = errors.New("lightcurve: period must be > 0")
)

// Operation tags used in wrapped errors.
const (
	opNew          = "New"
	opNewBin       = "NewBin"
	opParsePoint   = "ParsePoint"
	opFromRecord   = "FromRecord"
	opLightcurve   = "Asteroid.Lightcurve"
	opLightcurves  = "Asteroid.Lightcurves"
	opSpan         = "Span"
	opFold         = "Fold"
	opNewAsteroid  = "NewAsteroid"
	opDecodeRecord = "DecodeRecords"
)

// lcErrorf wraps err with an operation tag, keeping the sentinel reachable.
func lcErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
