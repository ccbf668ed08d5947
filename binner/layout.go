package binner

import "fmt"

// MaxGridColumns caps the number of bins shown per grid row.
const MaxGridColumns = 4

// GridSize returns the rows and columns needed to show n bins, using at
// most MaxGridColumns columns.
func GridSize(n int) (rows, cols int, err error) {
	if n <= 0 {
		return 0, 0, fmt.Errorf("GridSize: %w", ErrEmptyInput)
	}
	cols = min(MaxGridColumns, n)
	rows = (n + cols - 1) / cols

	return rows, cols, nil
}

// CheckGrid verifies that an explicit rows×cols grid holds exactly n bins.
func CheckGrid(n, rows, cols int) error {
	if n <= 0 {
		return fmt.Errorf("CheckGrid: %w", ErrEmptyInput)
	}
	if rows*cols != n {
		return fmt.Errorf("CheckGrid: %dx%d for %d bins: %w", rows, cols, n, ErrGridMismatch)
	}

	return nil
}
