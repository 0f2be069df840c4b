package fastmath

// PowInt returns base^exp computed exactly by exponentiation by squaring.
// Negative exponents return 0. Overflow wraps like ordinary int arithmetic.
func PowInt(base, exp int) int {
	switch {
	case exp < 0:
		return 0
	case exp == 0:
		return 1
	case exp == 1:
		return base
	}

	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// PowFloatInt returns base^exp by exponentiation by squaring.
// A negative exponent yields the reciprocal of base^|exp|; base 0 with a
// negative exponent returns +Inf. Any exponent, math.MinInt included, takes
// at most 64 squaring steps.
func PowFloatInt[T Float](base T, exp int) T {
	if exp < 0 && base == 0 {
		return inf[T](1)
	}

	n := uint(exp)
	if exp < 0 {
		n = -n
	}

	result := T(1)
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}

	if exp < 0 {
		return 1 / result
	}
	return result
}
