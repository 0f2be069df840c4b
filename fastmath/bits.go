package fastmath

import "math"

// Float is the set of IEEE-754 binary formats supported by the kernels.
type Float interface {
	float32 | float64
}

const (
	// InvSqrtMagic32 is the single-precision seed constant for InvSqrt.
	InvSqrtMagic32 = 0x5f3759df

	// InvSqrtMagic64 is the double-precision seed constant for InvSqrt.
	InvSqrtMagic64 = 0x5fe6ec85e7de30da

	// Log2Bias32 is the tuned single-precision exponent bias used by Log2 and Exp2.
	// It is slightly below 127 to balance the error of the linear mantissa term.
	Log2Bias32 = 126.94269504

	// Log2Bias64 is the double-precision exponent bias used by Log2 and Exp2.
	Log2Bias64 = 1023.0
)

// layout describes the bit geometry of one float width.
type layout struct {
	mantissaBits  uint
	invSqrtMagic  uint64
	log2Bias      float64
	expCeil       float64 // largest biased exponent, all-ones field
	mantissaScale float64 // 1 / 2^mantissaBits
	mantissaSize  float64 // 2^mantissaBits
}

func newLayout(mantissaBits, exponentBits uint, magic uint64, bias float64) layout {
	size := float64(uint64(1) << mantissaBits)
	return layout{
		mantissaBits:  mantissaBits,
		invSqrtMagic:  magic,
		log2Bias:      bias,
		expCeil:       float64(uint64(1)<<exponentBits - 1),
		mantissaScale: 1 / size,
		mantissaSize:  size,
	}
}

var (
	layout32 = newLayout(23, 8, InvSqrtMagic32, Log2Bias32)
	layout64 = newLayout(52, 11, InvSqrtMagic64, Log2Bias64)
)

func layoutOf[T Float]() *layout {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return &layout32
	}
	return &layout64
}

// toBits returns the raw IEEE-754 encoding of x, zero-extended to 64 bits.
func toBits[T Float](x T) uint64 {
	switch v := any(x).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	}
	panic("fastmath: unsupported float type")
}

// fromBits reinterprets the low bits of b as a float of type T.
func fromBits[T Float](b uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(b)).(T)
	}
	panic("fastmath: unsupported float type")
}

func nan[T Float]() T {
	return T(math.NaN())
}

func inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

func isNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

func isPosInf[T Float](x T) bool {
	return math.IsInf(float64(x), 1)
}
