// SPDX-License-Identifier: MIT

package lightcurve

import (
	"fmt"
	"sync"
)

// Bin is one observation epoch: a non-empty, time-ordered group of
// lightcurves treated as a single analysis unit.
type Bin struct {
	curves []*Lightcurve

	countOnce, timesOnce, brightOnce sync.Once
	pointsCount                      int
	times, brightnesses              []float64
}

// NewBin groups curves into a Bin. The curves are assumed to be time
// ordered already; the slice is copied.
func NewBin(curves []*Lightcurve) (*Bin, error) {
	if len(curves) == 0 {
		return nil, lcErrorf(opNewBin, ErrEmptyBin)
	}
	own := make([]*Lightcurve, len(curves))
	copy(own, curves)

	return &Bin{curves: own}, nil
}

// Len returns the number of member lightcurves.
func (b *Bin) Len() int { return len(b.curves) }

// At returns the i-th member.
func (b *Bin) At(i int) *Lightcurve { return b.curves[i] }

// Lightcurves returns a copy of the member list.
func (b *Bin) Lightcurves() []*Lightcurve {
	out := make([]*Lightcurve, len(b.curves))
	copy(out, b.curves)

	return out
}

// FirstJD is the first JD of the first member.
func (b *Bin) FirstJD() float64 { return b.curves[0].FirstJD() }

// LastJD is the last JD of the last member.
func (b *Bin) LastJD() float64 { return b.curves[len(b.curves)-1].LastJD() }

// Period is LastJD-FirstJD in days.
func (b *Bin) Period() float64 { return b.LastJD() - b.FirstJD() }

// PeriodAuto returns the span in hours when it is shorter than a day and in
// days otherwise, together with the unit name.
func (b *Bin) PeriodAuto() (float64, string) {
	if d := b.Period(); d >= 1 {
		return d, "d"
	}

	return b.Period() * HoursPerDay, "h"
}

// PointsCount is the total number of points over all members.
func (b *Bin) PointsCount() int {
	b.countOnce.Do(func() {
		for _, lc := range b.curves {
			b.pointsCount += lc.PointsCount()
		}
	})

	return b.pointsCount
}

// Times concatenates the member times in member order. Cached; do not modify.
func (b *Bin) Times() []float64 {
	b.timesOnce.Do(func() {
		b.times = make([]float64, 0, b.PointsCount())
		for _, lc := range b.curves {
			b.times = append(b.times, lc.Times()...)
		}
	})

	return b.times
}

// Brightnesses concatenates the member brightnesses in member order.
// Cached; do not modify.
func (b *Bin) Brightnesses() []float64 {
	b.brightOnce.Do(func() {
		b.brightnesses = make([]float64, 0, b.PointsCount())
		for _, lc := range b.curves {
			b.brightnesses = append(b.brightnesses, lc.Brightnesses()...)
		}
	})

	return b.brightnesses
}

// Less orders bins by point count only.
func (b *Bin) Less(other *Bin) bool { return b.PointsCount() < other.PointsCount() }

// Equal compares bins by point count only.
func (b *Bin) Equal(other *Bin) bool { return b.PointsCount() == other.PointsCount() }

// String implements fmt.Stringer.
func (b *Bin) String() string {
	span, unit := b.PeriodAuto()

	return fmt.Sprintf("Bin(lightcurves=%d, period=%.5f%s, points=%d, first=%s)",
		len(b.curves), span, unit, b.PointsCount(), jdDate(b.FirstJD()))
}
