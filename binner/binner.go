package binner

import (
	"fmt"

	"github.com/katalvlaran/astrofit/lightcurve"
)

// Bin groups curves into epochs under opts.
//
// Implementation:
//   - Stage 1: validate opts; an empty input yields no bins.
//   - Stage 2: seed the anchor from the first curve.
//   - Stage 3: for each curve, close the open bin when
//     curve.FirstJD - anchor > MaxGap and re-anchor on the new curve;
//     under LastToFirst also re-anchor after every admitted curve.
//   - Stage 4: drop bins smaller than MinBinSize.
//
// The curves are expected to be canonical (time ordered, non-overlapping).
// Output preserves time order.
func Bin(curves []*lightcurve.Lightcurve, opts Options) ([]*lightcurve.Bin, error) {
	// Stage 1: Validate
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("Bin: %w", err)
	}
	if len(curves) == 0 {
		return nil, nil
	}

	// Stage 2: Prepare
	var (
		groups  [][]*lightcurve.Lightcurve
		current []*lightcurve.Lightcurve
		anchor  = opts.Anchor.of(curves[0])
	)

	// Stage 3: Execute
	for _, lc := range curves {
		if lc.FirstJD()-anchor > opts.MaxGap {
			groups = append(groups, current)
			current = nil
			anchor = opts.Anchor.of(lc)
		}
		current = append(current, lc)
		if opts.Anchor == LastToFirst {
			anchor = lc.LastJD()
		}
	}
	groups = append(groups, current)

	// Stage 4: Finalize
	bins := make([]*lightcurve.Bin, 0, len(groups))
	for _, g := range groups {
		if len(g) < opts.MinBinSize {
			continue
		}
		b, err := lightcurve.NewBin(g)
		if err != nil {
			return nil, fmt.Errorf("Bin: %w", err)
		}
		bins = append(bins, b)
	}

	return bins, nil
}

// BinAsteroid canonicalizes the asteroid's curves and bins them.
func BinAsteroid(a *lightcurve.Asteroid, opts Options) ([]*lightcurve.Bin, error) {
	return Bin(a.Canonical(), opts)
}

// of returns the anchor JD a curve sets when it opens a bin.
func (a Anchor) of(lc *lightcurve.Lightcurve) float64 {
	if a == LastToFirst {
		return lc.LastJD()
	}

	return lc.FirstJD()
}
