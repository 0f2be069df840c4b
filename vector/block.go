package vector

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fastvec/fastmath"
)

// Element-wise kernels. Callers validate lengths; float64 buffers go through
// the vectorized algo-vecmath implementations where one exists.

func addBlock[T fastmath.Float](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		copy(d, any(a).([]float64))
		vecmath.AddBlockInPlace(d, any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func addBlockInPlace[T fastmath.Float](dst, src []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.AddBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// subBlock computes a + (-1 * b), which is exactly a - b in IEEE arithmetic.
func subBlock[T fastmath.Float](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, any(b).([]float64), -1)
		vecmath.AddBlockInPlace(d, any(a).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func subBlockInPlace[T fastmath.Float](dst, src []T) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

func mulBlock[T fastmath.Float](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlock(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func mulBlockInPlace[T fastmath.Float](dst, src []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

func divBlock[T fastmath.Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func divBlockInPlace[T fastmath.Float](dst, src []T) {
	for i := range dst {
		dst[i] /= src[i]
	}
}

// dst may alias src in the scalar kernels.

func addScalarBlock[T fastmath.Float](dst, src []T, s T) {
	for i := range dst {
		dst[i] = src[i] + s
	}
}

func subScalarBlock[T fastmath.Float](dst, src []T, s T) {
	for i := range dst {
		dst[i] = src[i] - s
	}
}

func scaleBlock[T fastmath.Float](dst, src []T, s T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, any(src).([]float64), float64(s))
		return
	}
	for i := range dst {
		dst[i] = src[i] * s
	}
}

// divScalarBlock fills dst with +Inf when s is zero, in both the allocating
// and the in-place path.
func divScalarBlock[T fastmath.Float](dst, src []T, s T) {
	if s == 0 {
		fill(dst, T(math.Inf(1)))
		return
	}
	for i := range dst {
		dst[i] = src[i] / s
	}
}

func dot[T fastmath.Float](a, b []T) T {
	if x, ok := any(a).([]float64); ok {
		return T(vecmath.DotProduct(x, any(b).([]float64)))
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
