// Package binner groups time-ordered lightcurves into observation epochs.
//
// A new bin starts whenever curve.FirstJD - anchor > MaxGap. The anchor
// policy decides what the gap is measured from:
//
//	FirstToFirst — the FirstJD of the curve that opened the current bin.
//	               A bin may grow past MaxGap pairwise as long as every
//	               member starts within MaxGap of the opener.
//	LastToFirst  — the LastJD of the previously admitted curve. The anchor
//	               moves after every curve, so each curve must start within
//	               MaxGap of its predecessor's end.
//
// The first curve seeds the anchor and always opens bin 0. Bins with fewer
// than MinBinSize members are dropped, never merged into neighbours.
//
// The package also carries the grid layout rules used when bins are shown
// side by side (at most MaxGridColumns per row).
package binner
