// Package splitter breaks lightcurves into maximal runs of temporally close
// points and optionally strips brightness outliers from each run.
//
// A split happens wherever the gap between a point and the immediately
// preceding retained point exceeds Options.MaxGap. Measuring from the
// previous point, not from the run's first point, lets a slow drift of
// sub-threshold gaps stay in one run.
//
// Outlier rejection uses the modified z-score
//
//	z = 0.6745 * (x - median) / MAD
//
// and falls back to z = 0.7979 * (x - median) / MeanAD when MAD == 0, where
// MeanAD is the mean absolute deviation about the median. Points with
// |z| > 3.5 are dropped. Statistics are computed per run and never across
// run boundaries.
//
// Complexity:
//
//	O(n) per lightcurve for splitting, O(n log n) per run with rejection.
package splitter
