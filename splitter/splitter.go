package splitter

import (
	"fmt"

	"github.com/katalvlaran/astrofit/lightcurve"
)

// Split partitions lc into maximal runs where every consecutive pair of
// retained points is at most opts.MaxGap apart.
//
// Implementation:
//   - Stage 1: validate opts.
//   - Stage 2: cut the sorted points wherever next.JD-prev.JD > MaxGap.
//   - Stage 3: if RejectOutliers, filter each run by modified z-score and
//     cut the survivors again, so removed points never bridge a gap.
//   - Stage 4: drop runs shorter than MinPoints; emit the rest in time order
//     with lc's metadata.
//
// A single-point curve yields one run of size 1 (subject to MinPoints).
func Split(lc *lightcurve.Lightcurve, opts Options) ([]*lightcurve.Lightcurve, error) {
	// Stage 1: Validate
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}

	return split(lc, opts)
}

// SplitAll applies Split to each curve independently and concatenates the
// results in input order. An empty input yields an empty result.
func SplitAll(curves []*lightcurve.Lightcurve, opts Options) ([]*lightcurve.Lightcurve, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("SplitAll: %w", err)
	}

	out := make([]*lightcurve.Lightcurve, 0, len(curves))
	for _, lc := range curves {
		runs, err := split(lc, opts)
		if err != nil {
			return nil, fmt.Errorf("SplitAll: %w", err)
		}
		out = append(out, runs...)
	}

	return out, nil
}

func split(lc *lightcurve.Lightcurve, opts Options) ([]*lightcurve.Lightcurve, error) {
	var out []*lightcurve.Lightcurve

	// Stage 2: gap runs
	for _, run := range gapRuns(lc.Points(), opts.MaxGap) {
		parts := [][]lightcurve.Point{run}

		// Stage 3: per-run outlier rejection
		if opts.RejectOutliers {
			parts = gapRuns(RejectOutliers(run), opts.MaxGap)
		}

		// Stage 4: size filter
		for _, part := range parts {
			if len(part) == 0 || len(part) < opts.MinPoints {
				continue
			}
			sub, err := lightcurve.FromPoints(lc, part)
			if err != nil {
				return nil, err
			}
			out = append(out, sub)
		}
	}

	return out, nil
}

// gapRuns cuts points (sorted by JD) wherever the gap to the previous point
// exceeds maxGap.
func gapRuns(points []lightcurve.Point, maxGap float64) [][]lightcurve.Point {
	if len(points) == 0 {
		return nil
	}

	var runs [][]lightcurve.Point
	start := 0
	for i := 1; i < len(points); i++ {
		if points[i].JD-points[i-1].JD > maxGap {
			runs = append(runs, points[start:i:i])
			start = i
		}
	}

	return append(runs, points[start:])
}
