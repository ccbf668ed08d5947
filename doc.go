// Package astrofit estimates asteroid rotation periods from archived,
// irregularly sampled photometry.
//
// 🚀 Pipeline:
//
//	asteroid lightcurves
//	  → lightcurve.Canonicalize  merge overlapping observation runs
//	  → splitter.SplitAll        cut at observation gaps, drop outliers and short pieces
//	  → binner.Bin               group pieces into apparitions
//	  → periodogram.Decompose    multi-harmonic Lomb-Scargle, top-K peaks per bin
//
// Everything is organized under these subpackages:
//
//	lightcurve/  — Point, Lightcurve, Bin, Asteroid, record decoding, phase folding
//	splitter/    — gap splitting and modified z-score outlier rejection
//	binner/      — anchor-based temporal binning and plot grid layout
//	periodogram/ — frequency grid, chi-squared periodogram, peak ranking
//	matrix/      — dense matrix and pivoted LU solve for the normal equations
//
// The core packages are pure: they never mutate their inputs, never log and
// hold no shared state, so bins and asteroids may be processed in parallel.
// cmd/astrofit wires them to a data directory (internal/loader) and a YAML
// configuration (internal/config).
package astrofit
