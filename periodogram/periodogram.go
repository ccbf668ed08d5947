package periodogram

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/astrofit/lightcurve"
	"github.com/katalvlaran/astrofit/matrix"
)

const (
	opCompute      = "Compute"
	opGrid         = "Grid"
	opDecompose    = "Decompose"
	opDecomposeAll = "DecomposeAll"
)

func pgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Grid returns the automatic frequency grid for the sample times.
//
// Errors:
//   - ErrZeroBaseline, ErrNoFrequencies, ErrBadGrid (grid above
//     MaxGridSize) and option validation errors.
func Grid(times []float64, opts Options) ([]float64, error) {
	if err := opts.validate(); err != nil {
		return nil, pgErrorf(opGrid, err)
	}

	freqs, err := grid(times, opts)
	if err != nil {
		return nil, pgErrorf(opGrid, err)
	}

	return freqs, nil
}

func grid(times []float64, opts Options) ([]float64, error) {
	if len(times) == 0 {
		return nil, ErrTooFewPoints
	}
	lo, hi := times[0], times[0]
	for _, t := range times[1:] {
		lo = math.Min(lo, t)
		hi = math.Max(hi, t)
	}
	baseline := hi - lo
	if !(baseline > 0) {
		return nil, ErrZeroBaseline
	}

	df := 1 / (baseline * opts.SamplesPerPeak)
	fmin := df / 2
	fmax := opts.MaxFreq
	if fmax == 0 {
		fmax = opts.NyquistFactor * 0.5 * float64(len(times)) / baseline
	}
	if fmax < fmin {
		return nil, fmt.Errorf("max %g < min %g: %w", fmax, fmin, ErrNoFrequencies)
	}

	steps := math.Round((fmax - fmin) / df)
	if !(steps < MaxGridSize) {
		return nil, fmt.Errorf("%g frequencies, limit %d: %w", steps+1, MaxGridSize, ErrBadGrid)
	}
	nf := 1 + int(steps)
	freqs := make([]float64, nf)
	for k := range freqs {
		freqs[k] = fmin + float64(k)*df
	}

	return freqs, nil
}

// Compute evaluates the normalized multi-harmonic periodogram of (times, values)
// on the automatic grid and returns the frequencies and their powers.
//
// Implementation:
//   - Stage 1: validate options and inputs, build the grid.
//   - Stage 2: center the values and compute the reference chi².
//   - Stage 3: per frequency, accumulate XᵀX and Xᵀy for the design
//     columns [1, sin(2πkft), cos(2πkft)] and solve for β.
//   - Stage 4: power = Xᵀy·β / chi²_ref.
//
// A frequency whose normal equations are singular gets zero power.
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewPoints, ErrZeroBaseline, ErrFlatSignal,
//     ErrNoFrequencies and option validation errors.
func Compute(times, values []float64, opts Options) (freqs, power []float64, err error) {
	// Stage 1: Validate
	if err = opts.validate(); err != nil {
		return nil, nil, pgErrorf(opCompute, err)
	}
	if len(times) != len(values) {
		return nil, nil, pgErrorf(opCompute, fmt.Errorf("%d times, %d values: %w",
			len(times), len(values), ErrLengthMismatch))
	}
	m := 2*opts.NTerms + 1
	if len(times) < m {
		return nil, nil, pgErrorf(opCompute, fmt.Errorf("%d points, need %d: %w",
			len(times), m, ErrTooFewPoints))
	}
	if freqs, err = grid(times, opts); err != nil {
		return nil, nil, pgErrorf(opCompute, err)
	}

	// Stage 2: Center
	n := len(values)
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)
	y := make([]float64, n)
	var chi2Ref float64
	for i, v := range values {
		y[i] = v - mean
		chi2Ref += y[i] * y[i]
	}
	if chi2Ref == 0 {
		return nil, nil, pgErrorf(opCompute, ErrFlatSignal)
	}

	// shift the time origin so the phases keep their precision at JD ~ 2.4e6
	t0 := times[0]
	shifted := make([]float64, n)
	for i, t := range times {
		shifted[i] = t - t0
	}

	// Stage 3-4: Fit every frequency
	power = make([]float64, len(freqs))
	normal, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, nil, pgErrorf(opCompute, err)
	}
	var (
		xtx  = make([]float64, m*m) // upper triangle accumulator
		xty  = make([]float64, m)
		row  = make([]float64, m)
		beta []float64
	)
	for fi, f := range freqs {
		clear(xtx)
		clear(xty)
		for i, t := range shifted {
			row[0] = 1
			for k := 1; k <= opts.NTerms; k++ {
				s, c := math.Sincos(2 * math.Pi * float64(k) * f * t)
				row[2*k-1], row[2*k] = s, c
			}
			for a := 0; a < m; a++ {
				xty[a] += row[a] * y[i]
				for b := a; b < m; b++ {
					xtx[a*m+b] += row[a] * row[b]
				}
			}
		}
		if err = fillSymmetric(normal, xtx); err != nil {
			return nil, nil, pgErrorf(opCompute, err)
		}

		if beta, err = matrix.Solve(normal, xty); err != nil {
			if errors.Is(err, matrix.ErrSingular) {
				continue
			}
			return nil, nil, pgErrorf(opCompute, fmt.Errorf("frequency %g: %w", f, err))
		}
		var explained float64
		for a := 0; a < m; a++ {
			explained += xty[a] * beta[a]
		}
		power[fi] = explained / chi2Ref
	}

	return freqs, power, nil
}

// fillSymmetric copies the upper triangle of the row-major upper into both
// triangles of dst.
func fillSymmetric(dst *matrix.Dense, upper []float64) error {
	m := dst.Rows()
	for a := 0; a < m; a++ {
		for b := a; b < m; b++ {
			v := upper[a*m+b]
			if err := dst.Set(a, b, v); err != nil {
				return err
			}
			if err := dst.Set(b, a, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// TopK returns the k highest-power entries in descending order of power.
// Ties keep ascending frequency order.
func TopK(freqs, power []float64, k int) []Peak {
	idx := make([]int, len(power))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return power[idx[a]] > power[idx[b]] })
	if k > len(idx) {
		k = len(idx)
	}

	peaks := make([]Peak, k)
	for i := 0; i < k; i++ {
		peaks[i] = Peak{Frequency: freqs[idx[i]], Power: power[idx[i]]}
	}

	return peaks
}

// Decompose runs Compute on the concatenated points of bin and returns the
// TopK candidates.
func Decompose(bin *lightcurve.Bin, opts Options) ([]Peak, error) {
	freqs, power, err := Compute(bin.Times(), bin.Brightnesses(), opts)
	if err != nil {
		return nil, pgErrorf(opDecompose, err)
	}

	return TopK(freqs, power, opts.TopK), nil
}

// DecomposeAll decomposes every bin; result i belongs to bins[i]. The first
// failing bin aborts the call.
func DecomposeAll(bins []*lightcurve.Bin, opts Options) ([][]Peak, error) {
	out := make([][]Peak, len(bins))
	for i, b := range bins {
		peaks, err := Decompose(b, opts)
		if err != nil {
			return nil, pgErrorf(opDecomposeAll, fmt.Errorf("bin %d: %w", i, err))
		}
		out[i] = peaks
	}

	return out, nil
}
