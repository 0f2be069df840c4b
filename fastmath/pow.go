package fastmath

// Pow approximates x^y as Exp2(y * Log2(x)).
//
// Errors of the two approximations compound. For |y| <= 2 and positive
// normal x the relative error stays below 20% in float64 and 12% in float32;
// larger exponents scale the Log2 error proportionally.
//
// Domain policy, applied before the approximation:
//
//	x < 0 or NaN      NaN (no integer-exponent special case)
//	y is NaN          NaN
//	y == 0            1
//	x == 1            1, for every non-NaN y including ±Inf
//	x == 0, y > 0     0
//	x == 0, y < 0     +Inf
func Pow[T Float](x, y T) T {
	switch {
	case x < 0 || isNaN(x) || isNaN(y):
		return nan[T]()
	case y == 0 || x == 1:
		return 1
	case x == 0:
		if y > 0 {
			return 0
		}
		return inf[T](1)
	}
	return Exp2(y * Log2(x))
}

// Cbrt approximates the cube root of x via Pow(x, 1/3). Negative inputs use
// the odd continuation -Pow(-x, 1/3).
func Cbrt[T Float](x T) T {
	const third = 1.0 / 3
	if x < 0 {
		return -Pow(-x, third)
	}
	return Pow(x, third)
}

// Hypot approximates sqrt(x*x + y*y) with Sqrt.
//
// The squares are formed directly, so large operands overflow to +Inf and
// tiny ones underflow to 0 (and Sqrt(0) is NaN). Use HypotScaled when the
// operands can approach the limits of T.
func Hypot[T Float](x, y T) T {
	return Sqrt(x*x + y*y)
}

// HypotScaled is Hypot with the operands divided by max(|x|, |y|) before
// squaring, which keeps the intermediate sum in [1, 2].
//
// HypotScaled(0, 0) returns 0 and an infinite operand returns +Inf.
func HypotScaled[T Float](x, y T) T {
	x, y = abs(x), abs(y)
	m := max(x, y)
	switch {
	case isNaN(x) || isNaN(y):
		return nan[T]()
	case isPosInf(m):
		return m
	case m == 0:
		return 0
	}
	rx, ry := x/m, y/m
	return m * Sqrt(rx*rx+ry*ry)
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
