package vector

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fastvec/fastmath"
)

// MaxLen is the largest element count a vector may hold.
//
// It caps the count, not memory: a size within MaxLen that the runtime cannot
// back (MaxLen float64 elements need 16 GiB) aborts the process with an
// out-of-memory error. Only sizes outside [0, MaxLen] return ErrAllocation.
const MaxLen = math.MaxInt32

// Vector is a fixed-size sequence of floats that exclusively owns its buffer.
//
// The zero value is the undefined vector: no buffer, size 0. It is returned
// in place of results that do not exist and is what Release leaves behind.
type Vector[T fastmath.Float] struct {
	data []T
}

// Vec32 is a single-precision vector.
type Vec32 = Vector[float32]

// Vec64 is a double-precision vector.
type Vec64 = Vector[float64]

// Undefined sentinels. They hold no buffer, so no operation can mutate them.
var (
	Undefined32 Vec32
	Undefined64 Vec64
)

// New allocates a vector of n elements. Go zeroes fresh memory, but callers
// should not rely on the initial contents; use Zeros for that.
//
// Returns ErrAllocation if n is negative or exceeds MaxLen. Running out of
// memory below MaxLen is not reported; see MaxLen.
func New[T fastmath.Float](n int) (*Vector[T], error) {
	if n < 0 || n > MaxLen {
		return nil, fmt.Errorf("%w: size %d", ErrAllocation, n)
	}
	return &Vector[T]{data: make([]T, n)}, nil
}

// Zeros returns a vector of n zero elements.
func Zeros[T fastmath.Float](n int) (*Vector[T], error) {
	v, err := New[T](n)
	if err != nil {
		return nil, err
	}
	clear(v.data)
	return v, nil
}

// Filled returns a vector of n elements all set to value.
func Filled[T fastmath.Float](n int, value T) (*Vector[T], error) {
	v, err := New[T](n)
	if err != nil {
		return nil, err
	}
	fill(v.data, value)
	return v, nil
}

// FromSlice returns a vector holding a copy of data. Later changes to data do
// not affect the vector.
func FromSlice[T fastmath.Float](data []T) (*Vector[T], error) {
	v, err := New[T](len(data))
	if err != nil {
		return nil, err
	}
	copy(v.data, data)
	return v, nil
}

// Of returns a vector holding the given values.
func Of[T fastmath.Float](values ...T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Vector[T]{data: data}
}

// Copy returns a deep copy of v with an independent buffer.
func (v *Vector[T]) Copy() (*Vector[T], error) {
	if v.IsUndefined() {
		return nil, fmt.Errorf("vector: copy: %w", ErrUndefined)
	}
	return FromSlice(v.data)
}

// Release drops the buffer. The vector becomes undefined and every later
// operation on it fails with ErrUndefined. Releasing twice is a no-op.
func (v *Vector[T]) Release() {
	if v != nil {
		v.data = nil
	}
}

// IsUndefined reports whether v has no buffer (nil, the undefined sentinel,
// or released).
func (v *Vector[T]) IsUndefined() bool {
	return v == nil || v.data == nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}
	return v.data[i], nil
}

// Set assigns element i.
func (v *Vector[T]) Set(i int, value T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.data[i] = value
	return nil
}

// Data returns a copy of the elements, or nil for an undefined vector.
func (v *Vector[T]) Data() []T {
	if v.IsUndefined() {
		return nil
	}
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Raw returns the backing buffer without copying. Writes through it modify v.
func (v *Vector[T]) Raw() []T {
	if v == nil {
		return nil
	}
	return v.data
}

func (v *Vector[T]) checkIndex(i int) error {
	if v.IsUndefined() {
		return ErrUndefined
	}
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(v.data))
	}
	return nil
}

// checkPair validates the operands of a binary element-wise operation.
func (v *Vector[T]) checkPair(op string, o *Vector[T]) error {
	if v.IsUndefined() || o.IsUndefined() {
		return fmt.Errorf("vector: %s: %w", op, ErrUndefined)
	}
	if len(v.data) != len(o.data) {
		return &DimensionMismatchError{Op: op, Expected: len(v.data), Actual: len(o.data)}
	}
	return nil
}

func (v *Vector[T]) checkDefined(op string) error {
	if v.IsUndefined() {
		return fmt.Errorf("vector: %s: %w", op, ErrUndefined)
	}
	return nil
}

func fill[T fastmath.Float](dst []T, value T) {
	for i := range dst {
		dst[i] = value
	}
}
