package vector

import (
	"errors"
	"fmt"
)

// Errors returned by vector operations.
var (
	ErrAllocation           = errors.New("vector: allocation failed")
	ErrUndefined            = errors.New("vector: undefined or released vector")
	ErrDimensionMismatch    = errors.New("vector: dimension mismatch")
	ErrUnsupportedDimension = errors.New("vector: operation not supported for this dimensionality")
	ErrIndexOutOfRange      = errors.New("vector: index out of range")
	ErrZeroMagnitude        = errors.New("vector: zero magnitude")
	ErrEmpty                = errors.New("vector: empty input")
)

// DimensionMismatchError reports two operands of different sizes.
// It matches ErrDimensionMismatch with errors.Is.
type DimensionMismatchError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector: %s: dimension mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
