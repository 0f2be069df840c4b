package fastmath

import "github.com/cwbudde/algo-vecmath"

// InvSqrtBlock computes dst[i] = InvSqrt(src[i]).
// Slices must have equal length. Panics if lengths differ.
func InvSqrtBlock[T Float](dst, src []T) {
	mustSameLen(len(dst), len(src))
	for i, x := range src {
		dst[i] = InvSqrt(x)
	}
}

// SqrtBlock computes dst[i] = Sqrt(src[i]).
// Slices must have equal length. Panics if lengths differ.
func SqrtBlock[T Float](dst, src []T) {
	mustSameLen(len(dst), len(src))
	for i, x := range src {
		dst[i] = Sqrt(x)
	}
}

// Log2Block computes dst[i] = Log2(src[i]).
// Slices must have equal length. Panics if lengths differ.
func Log2Block[T Float](dst, src []T) {
	mustSameLen(len(dst), len(src))
	for i, x := range src {
		dst[i] = Log2(x)
	}
}

// Exp2Block computes dst[i] = Exp2(src[i]).
// Slices must have equal length. Panics if lengths differ.
func Exp2Block[T Float](dst, src []T) {
	mustSameLen(len(dst), len(src))
	for i, p := range src {
		dst[i] = Exp2(p)
	}
}

// PowBlock computes dst[i] = Pow(src[i], y).
// Slices must have equal length. Panics if lengths differ.
func PowBlock[T Float](dst, src []T, y T) {
	mustSameLen(len(dst), len(src))
	for i, x := range src {
		dst[i] = Pow(x, y)
	}
}

// HypotBlock computes dst[i] = Hypot(x[i], y[i]).
// All slices must have equal length. Panics if lengths differ.
//
// For float64 the squared sums come from the vectorized vecmath.Power kernel
// and only the square root runs through this package.
func HypotBlock[T Float](dst, x, y []T) {
	mustSameLen(len(x), len(y))
	mustSameLen(len(dst), len(x))

	if d, ok := any(dst).([]float64); ok {
		vecmath.Power(d, any(x).([]float64), any(y).([]float64))
		for i, s := range d {
			d[i] = Sqrt(s)
		}
		return
	}

	for i := range dst {
		dst[i] = Hypot(x[i], y[i])
	}
}

func mustSameLen(a, b int) {
	if a != b {
		panic("fastmath: slice length mismatch")
	}
}
