// SPDX-License-Identifier: MIT

package lightcurve

import (
	"fmt"
	"math"
)

// Phase maps t into [0,1) by its position within a period given in hours,
// counted from ref: ((t-ref)*24 mod period) / period. Times before ref wrap
// around like a floored modulo.
func Phase(t, ref, periodHours float64) float64 {
	m := math.Mod((t-ref)*HoursPerDay, periodHours)
	if m < 0 {
		m += periodHours
	}
	// a tiny negative remainder can round up to a full period
	if ph := m / periodHours; ph < 1 {
		return ph
	}

	return 0
}

// Folded is the phase-folded view of one lightcurve.
type Folded struct {
	ID           int
	Phases       []float64
	Brightnesses []float64
}

// Fold phase-folds every curve with the given period in hours. The
// reference time is the FirstJD of the first curve.
//
// Errors:
//   - ErrEmptyInput when curves is empty.
//   - ErrBadPeriod when periodHours <= 0.
func Fold(curves []*Lightcurve, periodHours float64) ([]Folded, error) {
	if len(curves) == 0 {
		return nil, lcErrorf(opFold, ErrEmptyInput)
	}
	if !(periodHours > 0) {
		return nil, lcErrorf(opFold, fmt.Errorf("%w: got %g", ErrBadPeriod, periodHours))
	}

	ref := curves[0].FirstJD()
	out := make([]Folded, len(curves))
	for i, lc := range curves {
		f := Folded{
			ID:           lc.ID(),
			Phases:       make([]float64, lc.Len()),
			Brightnesses: make([]float64, lc.Len()),
		}
		for j, p := range lc.points {
			f.Phases[j] = Phase(p.JD, ref, periodHours)
			f.Brightnesses[j] = p.Brightness
		}
		out[i] = f
	}

	return out, nil
}

// Span returns the smallest FirstJD and the largest LastJD over curves.
// It fails with ErrEmptyInput rather than returning a degenerate range.
func Span(curves []*Lightcurve) (first, last float64, err error) {
	if len(curves) == 0 {
		return 0, 0, lcErrorf(opSpan, ErrEmptyInput)
	}

	first, last = curves[0].FirstJD(), curves[0].LastJD()
	for _, lc := range curves[1:] {
		first = math.Min(first, lc.FirstJD())
		last = math.Max(last, lc.LastJD())
	}

	return first, last, nil
}
