// Package fastmath provides fast approximate elementary functions built on
// bit-level reinterpretation of IEEE-754 floats.
//
// Every function trades accuracy for speed. The kernels never call the
// standard math library for the approximation itself; they treat the bit
// pattern of a positive float as a piecewise-linear estimate of its base-2
// logarithm and derive everything else from that observation:
//
//   - InvSqrt, Sqrt: magic-constant seed plus one Newton-Raphson step
//     (max relative error about 0.18%)
//   - Log2, Exp2: mantissa scaling with a biased exponent offset
//     (absolute error below 0.09 for Log2, relative error below 6.2% for Exp2)
//   - Pow, Cbrt: Exp2(y * Log2(x)); errors compound, see Pow
//   - Hypot, HypotScaled: Sqrt(x*x + y*y), unscaled and scaled
//
// All functions are generic over float32 and float64. Each width uses its own
// constants (mantissa width, magic constant, exponent bias); float32 is never
// emulated through float64 or vice versa.
//
// # Domain policy
//
// Domain errors are reported through sentinel values, never panics:
//
//	InvSqrt(x <= 0)  NaN
//	Sqrt(x <= 0)     NaN
//	Log2(x <= 0)     -Inf
//	Pow(x < 0, y)    NaN
//	Pow(0, y > 0)    0
//	Pow(x >= 0, 0)   1
//	Pow(1, y)        1
//	Pow(0, y < 0)    +Inf
//
// Callers check results with math.IsNaN / math.IsInf.
//
// The block variants (SqrtBlock, PowBlock, HypotBlock, ...) apply a kernel to
// whole slices using the dst/src convention and panic on length mismatch.
package fastmath
