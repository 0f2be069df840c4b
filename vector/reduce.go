package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/cwbudde/algo-fastvec/fastmath"
)

// Equal reports whether v and o have the same size and identical elements.
// Two undefined vectors are equal; an undefined vector never equals a defined
// one, even an empty one.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v.IsUndefined() || o.IsUndefined() {
		return v.IsUndefined() && o.IsUndefined()
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox is Equal with each element pair compared within tol, either
// absolute or relative.
func (v *Vector[T]) EqualApprox(o *Vector[T], tol float64) bool {
	if v.IsUndefined() || o.IsUndefined() {
		return v.IsUndefined() && o.IsUndefined()
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if !scalar.EqualWithinAbsOrRel(float64(v.data[i]), float64(o.data[i]), tol, tol) {
			return false
		}
	}
	return true
}

// Dot returns sum(v[i] * o[i]).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if err := v.checkPair("dot", o); err != nil {
		return 0, err
	}
	return dot(v.data, o.data), nil
}

// Cross returns the 3D cross product v x o. Both operands must have exactly
// three elements; any other size fails with ErrUnsupportedDimension.
func (v *Vector[T]) Cross(o *Vector[T]) (*Vector[T], error) {
	if v.IsUndefined() || o.IsUndefined() {
		return nil, fmt.Errorf("vector: cross: %w", ErrUndefined)
	}
	if len(v.data) != 3 || len(o.data) != 3 {
		return nil, fmt.Errorf("%w: cross product of sizes %d and %d",
			ErrUnsupportedDimension, len(v.data), len(o.data))
	}

	a, b := v.data, o.data
	return &Vector[T]{data: []T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Magnitude returns the Euclidean length of v via fastmath.Sqrt.
//
// A zero-length, all-zero or undefined vector yields NaN, the kernel's signal
// for degenerate geometry.
func (v *Vector[T]) Magnitude() T {
	if v.IsUndefined() {
		return T(math.NaN())
	}
	return fastmath.Sqrt(dot(v.data, v.data))
}

// Normalize returns v scaled to unit length using fastmath.InvSqrt.
// Returns ErrZeroMagnitude for an all-zero or empty vector.
func (v *Vector[T]) Normalize() (*Vector[T], error) {
	inv, err := v.invNorm("normalize")
	if err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	scaleBlock(out.data, v.data, inv)
	return out, nil
}

// NormalizeInPlace scales v to unit length.
func (v *Vector[T]) NormalizeInPlace() error {
	inv, err := v.invNorm("normalize")
	if err != nil {
		return err
	}
	scaleBlock(v.data, v.data, inv)
	return nil
}

func (v *Vector[T]) invNorm(op string) (T, error) {
	if err := v.checkDefined(op); err != nil {
		return 0, err
	}
	sq := dot(v.data, v.data)
	if sq == 0 {
		return 0, fmt.Errorf("vector: %s: %w", op, ErrZeroMagnitude)
	}
	return fastmath.InvSqrt(sq), nil
}

// Pow returns v with every element raised to p via fastmath.Pow. Negative
// elements produce NaN, following the kernel's domain policy.
func (v *Vector[T]) Pow(p T) (*Vector[T], error) {
	if err := v.checkDefined("pow"); err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	fastmath.PowBlock(out.data, v.data, p)
	return out, nil
}

// PowInPlace raises every element of v to p.
func (v *Vector[T]) PowInPlace(p T) error {
	if err := v.checkDefined("pow"); err != nil {
		return err
	}
	fastmath.PowBlock(v.data, v.data, p)
	return nil
}
