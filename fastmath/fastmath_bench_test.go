package fastmath

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-fastvec/internal/sampling"
)

var (
	benchInputs = sampling.Uniform(3, 0.01, 1000, 1024)
	benchSink   float64
)

func BenchmarkInvSqrt(b *testing.B) {
	b.Run("fast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = InvSqrt(benchInputs[i&1023])
		}
	})
	b.Run("math", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = 1 / math.Sqrt(benchInputs[i&1023])
		}
	})
}

func BenchmarkLog2(b *testing.B) {
	b.Run("fast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = Log2(benchInputs[i&1023])
		}
	})
	b.Run("math", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = math.Log2(benchInputs[i&1023])
		}
	})
}

func BenchmarkPow(b *testing.B) {
	b.Run("fast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = Pow(benchInputs[i&1023], 1.5)
		}
	})
	b.Run("math", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = math.Pow(benchInputs[i&1023], 1.5)
		}
	})
}

func BenchmarkCbrt(b *testing.B) {
	b.Run("fast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = Cbrt(benchInputs[i&1023])
		}
	})
	b.Run("math", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			benchSink = math.Cbrt(benchInputs[i&1023])
		}
	})
}

func BenchmarkHypotBlock(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		x := sampling.Uniform(4, -10, 10, n)
		y := sampling.Uniform(5, -10, 10, n)
		dst := make([]float64, n)

		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n * 8 * 3))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HypotBlock(dst, x, y)
			}
		})
	}
}
