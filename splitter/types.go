package splitter

import "github.com/katalvlaran/astrofit/lightcurve"

// Options configures Split and SplitAll.
//
// Fields:
//   - MaxGap         — largest allowed gap between consecutive points, in
//     days (JD units). Use Hours to convert an hours threshold.
//   - MinPoints      — runs smaller than this after filtering are dropped.
//     Zero disables the size filter.
//   - RejectOutliers — run the modified z-score filter on every run.
type Options struct {
	MaxGap         float64
	MinPoints      int
	RejectOutliers bool
}

// DefaultOptions splits on gaps longer than two hours, keeps every run and
// does not reject outliers.
func DefaultOptions() Options {
	return Options{MaxGap: Hours(2)}
}

// Hours converts a threshold in hours to days: h / 24.
func Hours(h float64) float64 { return h / lightcurve.HoursPerDay }

// validate reports the first invalid field.
func (o Options) validate() error {
	if !(o.MaxGap >= 0) {
		return ErrBadMaxGap
	}
	if o.MinPoints < 0 {
		return ErrBadMinPoints
	}

	return nil
}
