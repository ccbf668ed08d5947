// SPDX-License-Identifier: MIT

package lightcurve

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// HoursPerDay converts JD differences (days) to hours.
const HoursPerDay = 24.0

// Meta is the identity carried by a lightcurve. Split and merged curves
// inherit it from the curve they were derived from.
type Meta struct {
	ID          int
	Scale       int // instrument/reduction tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PointsCount int // declared count; must equal the number of points
}

// Lightcurve is one continuous observation run.
//
// Instances are created only through New, FromPoints or Merge and are never
// mutated afterwards. Always handle them by pointer.
type Lightcurve struct {
	meta   Meta
	points []Point

	timesOnce, brightOnce sync.Once
	times, brightnesses   []float64
}

// New validates meta against points and returns a Lightcurve sorted by JD.
//
// Implementation:
//   - Stage 1: reject an empty point list and a PointsCount mismatch.
//   - Stage 2: copy and stable-sort the points by JD.
//   - Stage 3: assert the span is non-negative.
//
// Errors:
//   - ErrNoPoints, ErrPointsCountMismatch, ErrNegativePeriod.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func New(meta Meta, points []Point) (*Lightcurve, error) {
	// Stage 1: structural checks
	if len(points) == 0 {
		return nil, lcErrorf(opNew, fmt.Errorf("id %d: %w", meta.ID, ErrNoPoints))
	}
	if len(points) != meta.PointsCount {
		return nil, lcErrorf(opNew, fmt.Errorf("id %d: declared %d, parsed %d: %w",
			meta.ID, meta.PointsCount, len(points), ErrPointsCountMismatch))
	}

	// Stage 2: own a sorted copy
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].JD < sorted[j].JD })

	lc := &Lightcurve{meta: meta, points: sorted}

	// Stage 3: span sanity (holds after sorting unless JDs are NaN)
	if !(lc.Period() >= 0) {
		return nil, lcErrorf(opNew, fmt.Errorf("id %d: %w", meta.ID, ErrNegativePeriod))
	}

	return lc, nil
}

// FromPoints builds a Lightcurve from points, inheriting id, scale and
// timestamps of og. PointsCount is recomputed.
func FromPoints(og *Lightcurve, points []Point) (*Lightcurve, error) {
	meta := og.meta
	meta.PointsCount = len(points)

	return New(meta, points)
}

// Merge returns a new Lightcurve holding the union of both point sets,
// sorted by JD, with the metadata of lc. Points with equal JD are kept
// from both sides; nothing is deduplicated.
func (lc *Lightcurve) Merge(other *Lightcurve) *Lightcurve {
	points := make([]Point, 0, len(lc.points)+len(other.points))
	points = append(points, lc.points...)
	points = append(points, other.points...)
	sort.SliceStable(points, func(i, j int) bool { return points[i].JD < points[j].JD })

	meta := lc.meta
	meta.PointsCount = len(points)

	// both operands are valid, so the union is too
	return &Lightcurve{meta: meta, points: points}
}

// ID returns the lightcurve id.
func (lc *Lightcurve) ID() int { return lc.meta.ID }

// Scale returns the instrument/reduction tag.
func (lc *Lightcurve) Scale() int { return lc.meta.Scale }

// CreatedAt returns the creation timestamp of the source record.
func (lc *Lightcurve) CreatedAt() time.Time { return lc.meta.CreatedAt }

// UpdatedAt returns the modification timestamp of the source record.
func (lc *Lightcurve) UpdatedAt() time.Time { return lc.meta.UpdatedAt }

// Meta returns a copy of the metadata.
func (lc *Lightcurve) Meta() Meta { return lc.meta }

// PointsCount returns the number of points.
func (lc *Lightcurve) PointsCount() int { return len(lc.points) }

// Len is an alias of PointsCount.
func (lc *Lightcurve) Len() int { return len(lc.points) }

// Points returns a copy of the points in JD order.
func (lc *Lightcurve) Points() []Point {
	out := make([]Point, len(lc.points))
	copy(out, lc.points)

	return out
}

// At returns the i-th point in JD order. It panics if i is out of range,
// like a slice index.
func (lc *Lightcurve) At(i int) Point { return lc.points[i] }

// FirstJD is the JD of the earliest point.
func (lc *Lightcurve) FirstJD() float64 { return lc.points[0].JD }

// LastJD is the JD of the latest point.
func (lc *Lightcurve) LastJD() float64 { return lc.points[len(lc.points)-1].JD }

// Period is the span LastJD-FirstJD in days.
func (lc *Lightcurve) Period() float64 { return lc.LastJD() - lc.FirstJD() }

// PeriodHours is the span in hours.
func (lc *Lightcurve) PeriodHours() float64 { return lc.Period() * HoursPerDay }

// Overlaps reports whether lc ends at or after next starts.
func (lc *Lightcurve) Overlaps(next *Lightcurve) bool { return lc.LastJD() >= next.FirstJD() }

// Times returns the JD of every point. The slice is cached and shared;
// callers must not modify it.
func (lc *Lightcurve) Times() []float64 {
	lc.timesOnce.Do(func() {
		lc.times = make([]float64, len(lc.points))
		for i, p := range lc.points {
			lc.times[i] = p.JD
		}
	})

	return lc.times
}

// Brightnesses returns the brightness of every point. The slice is cached
// and shared; callers must not modify it.
func (lc *Lightcurve) Brightnesses() []float64 {
	lc.brightOnce.Do(func() {
		lc.brightnesses = make([]float64, len(lc.points))
		for i, p := range lc.points {
			lc.brightnesses[i] = p.Brightness
		}
	})

	return lc.brightnesses
}

// String implements fmt.Stringer.
func (lc *Lightcurve) String() string {
	return fmt.Sprintf("Lightcurve(id=%d, period=%.5fh, points=%d, first=%s, last=%s)",
		lc.meta.ID, lc.PeriodHours(), len(lc.points), jdDate(lc.FirstJD()), jdDate(lc.LastJD()))
}

// jdDate renders a JD as a UTC calendar timestamp.
func jdDate(jd float64) string {
	return julian.JDToTime(jd).UTC().Format("2006-01-02T15:04:05")
}
