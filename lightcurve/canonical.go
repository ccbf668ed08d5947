// SPDX-License-Identifier: MIT

package lightcurve

import "sort"

// Canonicalize orders curves by FirstJD and merges every run of overlapping
// spans (curr.LastJD >= next.FirstJD) into one curve, scanning left to
// right. The merged curve takes the metadata of the earliest member.
//
// The result is time ordered and no two elements overlap. The input slice
// is not modified.
//
// Complexity: O(k log k) for the sort plus O(n log n) per merge.
func Canonicalize(curves []*Lightcurve) []*Lightcurve {
	if len(curves) == 0 {
		return nil
	}

	sorted := make([]*Lightcurve, len(curves))
	copy(sorted, curves)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FirstJD() < sorted[j].FirstJD() })

	out := make([]*Lightcurve, 0, len(sorted))
	curr := sorted[0]
	for _, next := range sorted[1:] {
		if curr.Overlaps(next) {
			curr = curr.Merge(next)
			continue
		}
		out = append(out, curr)
		curr = next
	}

	return append(out, curr)
}
