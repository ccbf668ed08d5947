// Package matrix provides the small dense linear-algebra kernel used by the
// periodogram: a row-major Dense matrix and a pivoted LU solver for the
// normal equations of least-squares fits.
//
// What & Why:
//
//	Every trial frequency of a multi-harmonic periodogram needs one solve of
//	an m×m symmetric system (m = 2·nterms + 1, usually below 15). A compact,
//	dependency-free kernel keeps that inner loop allocation-light and
//	deterministic.
//
// Complexity:
//
//	At / Set:  O(1) with bounds checking.
//	Solve:     O(n³) time, O(n²) memory for the LU workspace.
package matrix
