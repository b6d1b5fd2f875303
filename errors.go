package moldiv

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStructures is returned when Describe is called with an empty set.
	ErrNoStructures = errors.New("no structures to describe")
)

// ErrStructure ties a descriptor-computation failure to the offending
// structure by its position in the input set.
//
// The original toolkit error can be accessed via errors.Unwrap.
type ErrStructure struct {
	Index int
	cause error
}

func (e *ErrStructure) Error() string {
	return fmt.Sprintf("structure %d: %v", e.Index, e.cause)
}

func (e *ErrStructure) Unwrap() error { return e.cause }
