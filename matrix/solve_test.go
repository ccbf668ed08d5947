package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrofit/matrix"
)

func dense(t *testing.T, rows, cols int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for k, v := range data {
		require.NoError(t, m.Set(k/cols, k%cols, v))
	}

	return m
}

// TestSolve_NeedsPivoting uses a zero leading entry that a non-pivoting
// Doolittle factorization would reject.
func TestSolve_NeedsPivoting(t *testing.T) {
	a := dense(t, 3, 3,
		0, 2, 1,
		1, 1, 1,
		2, 1, 3,
	)
	want := []float64{1, -2, 3}

	x, err := matrix.Solve(a, []float64{-1, 2, 9})
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, 1e-12)

	// inputs untouched
	v, _ := a.At(0, 0)
	assert.Equal(t, 0.0, v)
}

// TestSolve_SymmetricNormalEquations mirrors the periodogram use: XᵀX·β = Xᵀy.
func TestSolve_SymmetricNormalEquations(t *testing.T) {
	a := dense(t, 3, 3,
		4, 1, 2,
		1, 5, 1,
		2, 1, 6,
	)
	x, err := matrix.Solve(a, []float64{7, 7, 9})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, x, 1e-12)
}

func TestSolve_Errors(t *testing.T) {
	_, err := matrix.Solve(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(dense(t, 2, 3, 1, 2, 3, 4, 5, 6), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(dense(t, 2, 2, 1, 0, 0, 1), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(dense(t, 2, 2, 1, 2, 2, 4), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(dense(t, 2, 2, 1, 0, 0, 1), []float64{math.NaN(), 2})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense(t *testing.T) {
	_, err := matrix.NewDense(0, 1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 3))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	assert.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
