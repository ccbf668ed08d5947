package splitter

import (
	"math"
	"sort"

	"github.com/katalvlaran/astrofit/lightcurve"
)

const (
	// MADScale makes the MAD a consistent estimator of the standard
	// deviation for normal data (Iglewicz & Hoaglin).
	MADScale = 0.6745

	// MeanADScale replaces MADScale when MAD is zero and the mean absolute
	// deviation is used instead (≈ sqrt(2/π)).
	MeanADScale = 0.7979

	// ZThreshold is the |z| above which a point is an outlier.
	ZThreshold = 3.5
)

// Median returns the median of x without modifying it. It returns NaN for
// an empty slice.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}

	s := make([]float64, n)
	copy(s, x)
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}

// ModifiedZScores returns the modified z-score of every value.
//
// With MAD = median(|x - median|) non-zero, z = 0.6745*(x-median)/MAD.
// When MAD is zero (more than half of the values equal the median) the
// mean absolute deviation about the median replaces it together with the
// 0.7979 constant. If that is zero as well, every value equals the median
// and all scores are zero.
func ModifiedZScores(x []float64) []float64 {
	z := make([]float64, len(x))
	if len(x) == 0 {
		return z
	}

	med := Median(x)
	dev := make([]float64, len(x))
	var sumDev float64
	for i, v := range x {
		dev[i] = math.Abs(v - med)
		sumDev += dev[i]
	}

	scale, spread := MADScale, Median(dev)
	if spread == 0 {
		scale, spread = MeanADScale, sumDev/float64(len(x))
	}
	if spread == 0 {
		return z
	}

	for i, v := range x {
		z[i] = scale * (v - med) / spread
	}

	return z
}

// RejectOutliers returns the points whose brightness has |z| <= ZThreshold,
// in their original order. The input is not modified.
func RejectOutliers(points []lightcurve.Point) []lightcurve.Point {
	b := make([]float64, len(points))
	for i, p := range points {
		b[i] = p.Brightness
	}

	kept := make([]lightcurve.Point, 0, len(points))
	for i, z := range ModifiedZScores(b) {
		if math.Abs(z) <= ZThreshold {
			kept = append(kept, points[i])
		}
	}

	return kept
}
