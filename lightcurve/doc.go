// SPDX-License-Identifier: MIT

// Package lightcurve models asteroid photometry: calibrated points, continuous
// observation runs (lightcurves), observation epochs (bins) and the asteroid
// aggregate that owns them.
//
// What & Why:
//
//	A lightcurve is one continuous run of brightness measurements. Runs from
//	different nights or instruments are frequently overlapping, so the
//	aggregate canonicalizes them (sort by first JD, merge overlapping spans)
//	before the splitter and binner re-partition them on time gaps.
//
// Guarantees:
//   - Every constructed Lightcurve is non-empty, sorted ascending by JD and
//     has PointsCount() == len(Points()).
//   - Values are never mutated after construction; derived arrays (times,
//     brightnesses, id map) are computed once and cached on the instance.
//   - Invalid input is rejected by the factories (New, NewBin, FromRecord,
//     NewAsteroid) with sentinel errors matchable via errors.Is.
//
// Complexity:
//
//	New / Merge:  O(n log n) for the sort.
//	Canonicalize: O(k log k + n log n) for k curves with n points in total.
//	Times / Brightnesses: O(n) on first call, O(1) afterwards.
package lightcurve
