// Package vector provides dynamically sized single- and double-precision
// vectors backed by an exclusively owned buffer.
//
// Vector[T] is generic over float32 and float64; Vec32 and Vec64 name the two
// instantiations. Every arithmetic operation comes in two forms:
//
//   - a new-allocation form (Add, MulScalar, ...) that leaves its receiver
//     untouched and returns a fresh vector
//   - an in-place form (AddInPlace, MulScalarInPlace, ...) that writes into
//     the receiver's buffer
//
// Magnitude, Normalize and Pow evaluate through the approximate kernels of
// package fastmath, so their results carry the kernels' error bounds.
// Float64 vectors route add, multiply, scale and the dot product behind
// Dot, Magnitude and Normalize through the vectorized algo-vecmath kernels.
//
// # Errors
//
// Structural problems are reported as errors: size mismatches
// (ErrDimensionMismatch), cross products outside three dimensions
// (ErrUnsupportedDimension), use of an undefined or released vector
// (ErrUndefined) and sizes that cannot be allocated (ErrAllocation).
// Numeric domain problems follow fastmath and surface as NaN or Inf values.
//
// A Vector is not safe for concurrent mutation. Callers that share one across
// goroutines must serialize every in-place operation on it.
//
// # Usage
//
//	a := vector.Of[float32](1, 2, 3)
//	b, _ := vector.Filled[float32](3, 2)
//	c, err := a.Cross(b)      // [-2, 4, -2]
//	d, _ := a.Dot(b)          // 12
//	m := a.Magnitude()        // ~sqrt(14)
//	c.Print("cross")          // cross [-2.000000, 4.000000, -2.000000]
package vector
