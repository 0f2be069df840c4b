package vector

import "github.com/cwbudde/algo-fastvec/fastmath"

type (
	binaryKernel[T fastmath.Float]        func(dst, a, b []T)
	binaryInPlaceKernel[T fastmath.Float] func(dst, src []T)
	scalarKernel[T fastmath.Float]        func(dst, src []T, s T)
)

func (v *Vector[T]) binary(op string, o *Vector[T], k binaryKernel[T]) (*Vector[T], error) {
	if err := v.checkPair(op, o); err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	k(out.data, v.data, o.data)
	return out, nil
}

func (v *Vector[T]) binaryInPlace(op string, o *Vector[T], k binaryInPlaceKernel[T]) error {
	if err := v.checkPair(op, o); err != nil {
		return err
	}
	k(v.data, o.data)
	return nil
}

func (v *Vector[T]) scalar(op string, s T, k scalarKernel[T]) (*Vector[T], error) {
	if err := v.checkDefined(op); err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	k(out.data, v.data, s)
	return out, nil
}

func (v *Vector[T]) scalarInPlace(op string, s T, k scalarKernel[T]) error {
	if err := v.checkDefined(op); err != nil {
		return err
	}
	k(v.data, v.data, s)
	return nil
}

// Add returns v + o element-wise.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	return v.binary("add", o, addBlock[T])
}

// AddInPlace sets v = v + o element-wise.
func (v *Vector[T]) AddInPlace(o *Vector[T]) error {
	return v.binaryInPlace("add", o, addBlockInPlace[T])
}

// Sub returns v - o element-wise.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return v.binary("sub", o, subBlock[T])
}

// SubInPlace sets v = v - o element-wise.
func (v *Vector[T]) SubInPlace(o *Vector[T]) error {
	return v.binaryInPlace("sub", o, subBlockInPlace[T])
}

// Mul returns the element-wise product v * o.
func (v *Vector[T]) Mul(o *Vector[T]) (*Vector[T], error) {
	return v.binary("mul", o, mulBlock[T])
}

// MulInPlace sets v = v * o element-wise.
func (v *Vector[T]) MulInPlace(o *Vector[T]) error {
	return v.binaryInPlace("mul", o, mulBlockInPlace[T])
}

// Div returns the element-wise quotient v / o. Zero divisors follow IEEE-754
// (±Inf, or NaN for 0/0).
func (v *Vector[T]) Div(o *Vector[T]) (*Vector[T], error) {
	return v.binary("div", o, divBlock[T])
}

// DivInPlace sets v = v / o element-wise.
func (v *Vector[T]) DivInPlace(o *Vector[T]) error {
	return v.binaryInPlace("div", o, divBlockInPlace[T])
}

// AddScalar returns v + s.
func (v *Vector[T]) AddScalar(s T) (*Vector[T], error) {
	return v.scalar("add scalar", s, addScalarBlock[T])
}

// AddScalarInPlace sets v = v + s.
func (v *Vector[T]) AddScalarInPlace(s T) error {
	return v.scalarInPlace("add scalar", s, addScalarBlock[T])
}

// SubScalar returns v - s.
func (v *Vector[T]) SubScalar(s T) (*Vector[T], error) {
	return v.scalar("sub scalar", s, subScalarBlock[T])
}

// SubScalarInPlace sets v = v - s.
func (v *Vector[T]) SubScalarInPlace(s T) error {
	return v.scalarInPlace("sub scalar", s, subScalarBlock[T])
}

// MulScalar returns v * s.
func (v *Vector[T]) MulScalar(s T) (*Vector[T], error) {
	return v.scalar("mul scalar", s, scaleBlock[T])
}

// MulScalarInPlace sets v = v * s.
func (v *Vector[T]) MulScalarInPlace(s T) error {
	return v.scalarInPlace("mul scalar", s, scaleBlock[T])
}

// DivScalar returns v / s. Dividing by zero yields a vector filled with +Inf.
func (v *Vector[T]) DivScalar(s T) (*Vector[T], error) {
	return v.scalar("div scalar", s, divScalarBlock[T])
}

// DivScalarInPlace sets v = v / s. Dividing by zero fills v with +Inf, the
// same policy as DivScalar.
func (v *Vector[T]) DivScalarInPlace(s T) error {
	return v.scalarInPlace("div scalar", s, divScalarBlock[T])
}
