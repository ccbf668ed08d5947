// SPDX-License-Identifier: MIT

package lightcurve

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/soniakeys/unit"
)

// SortBy selects the key used to order an asteroid's lightcurves.
type SortBy int

const (
	// SortByPeriod orders by time span (LastJD-FirstJD).
	SortByPeriod SortBy = iota
	// SortByPoints orders by number of points.
	SortByPoints
)

var sortByNames = [...]string{SortByPeriod: "period", SortByPoints: "points"}

// String implements fmt.Stringer.
func (s SortBy) String() string {
	if s < 0 || int(s) >= len(sortByNames) {
		return fmt.Sprintf("SortBy(%d)", int(s))
	}

	return sortByNames[s]
}

// key returns the ordering key for s or ErrInvalidOption listing the legal set.
func (s SortBy) key() (func(*Lightcurve) float64, error) {
	switch s {
	case SortByPeriod:
		return (*Lightcurve).Period, nil
	case SortByPoints:
		return func(lc *Lightcurve) float64 { return float64(lc.PointsCount()) }, nil
	default:
		return nil, fmt.Errorf("%w: SortBy %d, use one of [%s]",
			ErrInvalidOption, int(s), strings.Join(sortByNames[:], ", "))
	}
}

// AsteroidInfo is the catalogue identity of an asteroid.
type AsteroidInfo struct {
	ID     int
	Name   string
	Period float64 // known rotation period, hours

	// spin axis ecliptic longitude and latitude
	Lambda unit.Angle
	Beta   unit.Angle
}

// Asteroid owns the lightcurves observed for one object.
type Asteroid struct {
	AsteroidInfo

	curves []*Lightcurve

	idOnce sync.Once
	byID   map[int]*Lightcurve
}

// NewAsteroid wraps curves (copied, order kept) with info.
func NewAsteroid(info AsteroidInfo, curves []*Lightcurve) *Asteroid {
	own := make([]*Lightcurve, len(curves))
	copy(own, curves)

	return &Asteroid{AsteroidInfo: info, curves: own}
}

// AsteroidFromRecords parses every record and wraps the result. The first
// invalid record fails the whole call.
func AsteroidFromRecords(info AsteroidInfo, recs []Record) (*Asteroid, error) {
	curves := make([]*Lightcurve, 0, len(recs))
	for i, rec := range recs {
		lc, err := FromRecord(rec)
		if err != nil {
			return nil, lcErrorf(opNewAsteroid, fmt.Errorf("%s: record %d: %w", info.Name, i, err))
		}
		curves = append(curves, lc)
	}

	return NewAsteroid(info, curves), nil
}

// Len returns the number of lightcurves.
func (a *Asteroid) Len() int { return len(a.curves) }

// All returns the lightcurves in their original order.
func (a *Asteroid) All() []*Lightcurve {
	out := make([]*Lightcurve, len(a.curves))
	copy(out, a.curves)

	return out
}

// Lightcurve returns the curve with the given id or ErrNotFound.
func (a *Asteroid) Lightcurve(id int) (*Lightcurve, error) {
	a.idOnce.Do(func() {
		a.byID = make(map[int]*Lightcurve, len(a.curves))
		for _, lc := range a.curves {
			a.byID[lc.ID()] = lc
		}
	})

	lc, ok := a.byID[id]
	if !ok {
		return nil, lcErrorf(opLightcurve, fmt.Errorf("lightcurve with id %d: %w", id, ErrNotFound))
	}

	return lc, nil
}

// Lightcurves returns the curves ordered descending by the chosen key.
// Ties keep the original order.
func (a *Asteroid) Lightcurves(by SortBy) ([]*Lightcurve, error) {
	key, err := by.key()
	if err != nil {
		return nil, lcErrorf(opLightcurves, err)
	}

	out := a.All()
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })

	return out, nil
}

// Longest returns the curve with the largest key, the earliest one on ties.
// It fails with ErrEmptyInput when the asteroid has no curves.
func (a *Asteroid) Longest(by SortBy) (*Lightcurve, error) {
	sorted, err := a.Lightcurves(by)
	if err != nil {
		return nil, err
	}
	if len(sorted) == 0 {
		return nil, lcErrorf(opLightcurves, ErrEmptyInput)
	}

	return sorted[0], nil
}

// Canonical returns the curves sorted by time with overlapping runs merged.
func (a *Asteroid) Canonical() []*Lightcurve { return Canonicalize(a.curves) }

// String implements fmt.Stringer.
func (a *Asteroid) String() string {
	return fmt.Sprintf("Asteroid(id=%d, name=%s, period=%gh, lightcurves=%d)",
		a.ID, a.Name, a.Period, len(a.curves))
}
