// Package sampling generates the deterministic input sets used to measure
// the kernels, both by tests and by the fastinfo report.
package sampling

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// LogSpaced returns n logarithmically spaced values covering [lo, hi].
// lo and hi must be positive and n at least 2.
func LogSpaced(n int, lo, hi float64) []float64 {
	return floats.LogSpan(make([]float64, n), lo, hi)
}

// Linear returns n evenly spaced values covering [lo, hi]. n must be at least 2.
func Linear(n int, lo, hi float64) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Uniform returns n uniformly distributed values in [lo, hi) drawn from a
// source seeded with seed, so equal arguments give equal slices.
func Uniform(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// Float32s converts a float64 slice to float32.
func Float32s(src []float64) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}
