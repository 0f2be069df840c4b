package fastmath

// InvSqrt approximates 1/sqrt(x).
//
// The seed comes from the magic-constant transform magic - (bits >> 1) on the
// raw encoding of x and is refined with exactly one Newton-Raphson step,
// giving a maximum relative error of about 0.18% for positive normal inputs.
//
// Returns NaN for x <= 0 and for NaN, and 0 for +Inf.
func InvSqrt[T Float](x T) T {
	if x <= 0 || isNaN(x) {
		return nan[T]()
	}
	if isPosInf(x) {
		return 0
	}

	l := layoutOf[T]()
	half := 0.5 * x
	y := fromBits[T](l.invSqrtMagic - toBits(x)>>1)
	y *= 1.5 - half*y*y
	return y
}

// Sqrt approximates sqrt(x) as x * InvSqrt(x).
//
// Zero and negative inputs return NaN; +Inf returns +Inf.
func Sqrt[T Float](x T) T {
	if x < 0 {
		return nan[T]()
	}
	if isPosInf(x) {
		return x
	}
	return x * InvSqrt(x)
}
