package periodogram

import (
	"math"

	"github.com/katalvlaran/astrofit/lightcurve"
)

// MaxGridSize caps the number of trial frequencies of one periodogram.
const MaxGridSize = 1 << 22

// Options configures Decompose and Compute.
//
// Fields:
//   - NTerms         — number of Fourier harmonics in the model (≥ 1).
//   - TopK           — number of candidates returned by Decompose (≥ 1).
//   - MaxFreq        — highest trial frequency in cycles/day; 0 selects
//     NyquistFactor times the average Nyquist frequency.
//   - SamplesPerPeak — grid oversampling relative to 1/baseline.
//   - NyquistFactor  — multiplier of the average Nyquist frequency.
type Options struct {
	NTerms         int
	TopK           int
	MaxFreq        float64
	SamplesPerPeak float64
	NyquistFactor  float64
}

// DefaultOptions returns a single-harmonic fit, five candidates and the
// automatic grid.
func DefaultOptions() Options {
	return Options{NTerms: 1, TopK: 5, SamplesPerPeak: 5, NyquistFactor: 5}
}

func (o Options) validate() error {
	if o.NTerms < 1 {
		return ErrBadNTerms
	}
	if o.TopK < 1 {
		return ErrBadTopK
	}
	if !(o.MaxFreq >= 0) || !(o.SamplesPerPeak > 0) || !(o.NyquistFactor > 0) {
		return ErrBadGrid
	}
	if math.IsInf(o.MaxFreq, 0) || math.IsInf(o.SamplesPerPeak, 0) || math.IsInf(o.NyquistFactor, 0) {
		return ErrBadGrid
	}

	return nil
}

// Peak is one periodicity candidate.
type Peak struct {
	Frequency float64 // cycles per day
	Power     float64 // normalized power in [0, 1]
}

// Period returns 1/Frequency in days.
func (p Peak) Period() float64 { return 1 / p.Frequency }

// PeriodHours returns 1/Frequency in hours.
func (p Peak) PeriodHours() float64 { return lightcurve.HoursPerDay / p.Frequency }
