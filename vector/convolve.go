package vector

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-fastvec/fastmath"
)

// directConvolveMax is the shorter-operand length up to which Convolve uses
// the O(N*M) time-domain loop instead of an FFT.
const directConvolveMax = 32

// Convolve returns the full linear convolution of v and kernel, with
// v.Len() + kernel.Len() - 1 elements. Long operands are convolved in the
// frequency domain; the FFT path rounds through float64 and complex128, so
// float32 results may differ from direct convolution in the last bits.
func (v *Vector[T]) Convolve(kernel *Vector[T]) (*Vector[T], error) {
	if v.IsUndefined() || kernel.IsUndefined() {
		return nil, fmt.Errorf("vector: convolve: %w", ErrUndefined)
	}
	if len(v.data) == 0 || len(kernel.data) == 0 {
		return nil, fmt.Errorf("vector: convolve: %w", ErrEmpty)
	}

	out := &Vector[T]{data: make([]T, len(v.data)+len(kernel.data)-1)}
	if min(len(v.data), len(kernel.data)) <= directConvolveMax {
		convolveDirect(out.data, v.data, kernel.data)
		return out, nil
	}
	if err := convolveFFT(out.data, v.data, kernel.data); err != nil {
		return nil, err
	}
	return out, nil
}

func convolveDirect[T fastmath.Float](dst, a, b []T) {
	clear(dst)
	for i, x := range a {
		for j, y := range b {
			dst[i+j] += x * y
		}
	}
}

func convolveFFT[T fastmath.Float](dst, a, b []T) error {
	fftSize := nextPowerOf2(len(dst))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("vector: convolve: failed to create FFT plan: %w", err)
	}

	fa := make([]complex128, fftSize)
	fb := make([]complex128, fftSize)
	for i, x := range a {
		fa[i] = complex(float64(x), 0)
	}
	for i, x := range b {
		fb[i] = complex(float64(x), 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return fmt.Errorf("vector: convolve: forward FFT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return fmt.Errorf("vector: convolve: forward FFT failed: %w", err)
	}
	for i := range fa {
		fa[i] *= fb[i]
	}
	if err := plan.Inverse(fa, fa); err != nil {
		return fmt.Errorf("vector: convolve: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = T(real(fa[i]))
	}
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
