// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opSolve = "Solve"

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve returns x with A·x = b using Doolittle LU with partial pivoting.
// Neither a nor b is modified.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square) and b (length, finite).
//   - Stage 2: copy a into a flat row-major workspace (Dense fast path).
//   - Stage 3: for each column k pick the row with the largest |pivot|,
//     swap it up, and eliminate below it (L is stored in place).
//   - Stage 4: forward substitution L·y = P·b, then back substitution U·x = y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular (no
//     non-zero pivot left in some column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64) ([]float64, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Stage 2: Prepare workspace
	lu := make([]float64, n*n)
	if d, ok := a.(*Dense); ok {
		copy(lu, d.data)
	} else {
		var (
			i, j int
			v    float64
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, matrixErrorf(opSolve, err)
				}
				lu[i*n+j] = v
			}
		}
	}
	if err := ValidateFinite(lu); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 3: Factorize with partial pivoting
	var (
		i, j, k, p int
		maxAbs     float64
		pivot, f   float64
	)
	for k = 0; k < n; k++ {
		p, maxAbs = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs == 0 {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		pivot = lu[k*n+k]
		for i = k + 1; i < n; i++ {
			f = lu[i*n+k] / pivot
			lu[i*n+k] = f // L below the diagonal
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= f * lu[k*n+j]
			}
		}
	}

	// Stage 4: Substitute
	x := make([]float64, n)
	var sum float64
	for i = 0; i < n; i++ {
		sum = b[perm[i]]
		for k = 0; k < i; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum / lu[i*n+i]
	}

	return x, nil
}
