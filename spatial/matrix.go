package spatial

import (
	"gonum.org/v1/gonum/floats"
)

// Matrix is a rectangular matrix of pairwise distances, rows holding
// examples from set A and columns examples from set B. Entries are
// expected to be non-negative.
type Matrix [][]float64

// Dims returns the row and column counts. Cols is taken from the first
// row; call Validate first on untrusted input.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Validate checks that m is a non-empty rectangular 2-D matrix.
func (m Matrix) Validate() error {
	if len(m) == 0 || len(m[0]) == 0 {
		return &ErrInvalidShape{Row: -1}
	}

	want := len(m[0])
	for i, row := range m[1:] {
		if len(row) != want {
			return &ErrInvalidShape{Row: i + 1, Want: want, Got: len(row)}
		}
	}

	return nil
}

// IsValidDistanceMatrix reports whether m is a self-comparison distance
// matrix: square, symmetric, zero diagonal and non-negative. Symmetry is
// compared exactly; callers holding matrices with asymmetric rounding
// noise should clean them up first.
//
// Spread uses this to decide whether diagonal entries must be ignored, so
// a point is never counted as its own nearest neighbor.
func IsValidDistanceMatrix(m Matrix) bool {
	n := len(m)
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}

	for i := 0; i < n; i++ {
		if m[i][i] != 0 {
			return false
		}
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] || m[i][j] < 0 {
				return false
			}
		}
	}

	return n > 0
}

// Distances returns the pairwise Euclidean distance matrix between two
// vector sets, rows of a against rows of b. Both sets must be rectangular
// and share the same dimensionality.
func Distances(a, b [][]float64) (Matrix, error) {
	if err := Matrix(a).Validate(); err != nil {
		return nil, err
	}
	if err := Matrix(b).Validate(); err != nil {
		return nil, err
	}
	if len(a[0]) != len(b[0]) {
		return nil, &ErrDimensionMismatch{Expected: len(a[0]), Actual: len(b[0])}
	}

	d := make(Matrix, len(a))
	for i, row := range a {
		d[i] = make([]float64, len(b))
		for j, col := range b {
			d[i][j] = floats.Distance(row, col, 2)
		}
	}

	return d, nil
}
