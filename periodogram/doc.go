// Package periodogram extracts periodicity candidates from irregularly
// sampled lightcurves with a multi-harmonic Lomb-Scargle periodogram.
//
// 🚀 Method (generalized chi-squared):
//
//	For every trial frequency f the centered brightness y is fitted by
//	least squares with an offset plus nterms harmonics,
//
//	  y(t) ≈ c + Σ_{k=1..nterms} a_k·sin(2πkft) + b_k·cos(2πkft),
//
//	by solving the normal equations XᵀX·β = Xᵀy. The normalized power is
//	the fraction of variance explained: P(f) = yᵀXβ / Σ(y-ȳ)², in [0, 1].
//
// ⚙️ Frequency grid:
//
//	df   = 1 / (baseline · SamplesPerPeak)
//	fmin = df / 2
//	fmax = MaxFreq, or NyquistFactor · n / (2 · baseline) when unset
//	grid = fmin + k·df for k = 0 .. round((fmax-fmin)/df)
//
// Times are in days, so frequencies are in cycles per day.
//
// Top-K candidates are ordered by descending power; ties keep grid order.
//
// Complexity:
//
//	Time   = O(F · n · m² + F · m³) for F frequencies, n points, m = 2·nterms+1
//	Memory = O(F + m²)
package periodogram
