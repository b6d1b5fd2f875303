package spatial

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStep is returned when an explicit sweep step is not positive.
	ErrInvalidStep = errors.New("step must be positive")
)

// ErrInvalidShape indicates an empty or ragged matrix where a rectangular
// 2-D matrix is required.
type ErrInvalidShape struct {
	Row  int // first offending row, -1 when the matrix itself is empty
	Want int // expected column count
	Got  int
}

func (e *ErrInvalidShape) Error() string {
	if e.Row < 0 {
		return "invalid matrix shape: empty matrix"
	}
	return fmt.Sprintf("invalid matrix shape: row %d has %d columns, want %d", e.Row, e.Got, e.Want)
}

// ErrDimensionMismatch indicates two vector sets with different
// dimensionality passed to Distances.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
