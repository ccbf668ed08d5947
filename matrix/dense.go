// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Dense is a row-major r×c matrix backed by one flat slice. Solve reads it
// directly without going through At.
type Dense struct {
	r, c int
	data []float64 // len == r*c
}

// NewDense returns a zeroed rows×cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// offset maps (row, col) into data or fails with ErrOutOfRange.
func (m *Dense) offset(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d) on %dx%d: %w", op, row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	k, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[k], nil
}

// Set stores v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	k, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	m.data[k] = v

	return nil
}
