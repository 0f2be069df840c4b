package fastmath

// Log2 approximates log2(x) for x > 0.
//
// The raw encoding of x, read as an unsigned integer and scaled by the
// mantissa width (2^-23 or 2^-52), equals the biased exponent plus the
// mantissa fraction. Subtracting the bias leaves e + m where x = 2^e * (1+m),
// a chord under log2(1+m) with absolute error below 0.09.
//
// Returns -Inf for x <= 0, +Inf for +Inf and NaN for NaN.
func Log2[T Float](x T) T {
	switch {
	case isNaN(x):
		return x
	case x <= 0:
		return inf[T](-1)
	case isPosInf(x):
		return x
	}

	l := layoutOf[T]()
	return T(toBits(x))*T(l.mantissaScale) - T(l.log2Bias)
}

// Exp2 approximates 2^p. It is the exact inverse of the Log2 mapping: p is
// shifted by the bias, clamped into the biased exponent range, scaled by the
// mantissa width and reinterpreted as float bits.
//
// Clamping saturates instead of failing: very negative p yields 0 and very
// large p yields the all-ones exponent pattern, which is +Inf. NaN propagates.
func Exp2[T Float](p T) T {
	if isNaN(p) {
		return p
	}

	l := layoutOf[T]()
	t := p + T(l.log2Bias)
	t = min(max(t, 0), T(l.expCeil))
	return fromBits[T](uint64(t * T(l.mantissaSize)))
}
