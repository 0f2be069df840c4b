package sampling

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestLogSpaced(t *testing.T) {
	s := LogSpaced(7, 1e-3, 1e3)
	if len(s) != 7 {
		t.Fatalf("len = %d, want 7", len(s))
	}
	for i, want := range []float64{1e-3, 1e-2, 1e-1, 1, 1e1, 1e2, 1e3} {
		if !scalar.EqualWithinRel(s[i], want, 1e-12) {
			t.Fatalf("s[%d] = %v, want %v", i, s[i], want)
		}
	}
}

func TestLinear(t *testing.T) {
	s := Linear(5, -10, 10)
	for i, want := range []float64{-10, -5, 0, 5, 10} {
		if !scalar.EqualWithinAbs(s[i], want, 1e-12) {
			t.Fatalf("s[%d] = %v, want %v", i, s[i], want)
		}
	}
}

func TestUniform(t *testing.T) {
	a := Uniform(42, 0.5, 2, 64)
	b := Uniform(42, 0.5, 2, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < 0.5 || a[i] >= 2 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
	if c := Uniform(43, 0.5, 2, 64); c[0] == a[0] && c[1] == a[1] {
		t.Fatal("different seeds produced the same sequence")
	}
}

func TestFloat32s(t *testing.T) {
	got := Float32s([]float64{1.5, math.Inf(1)})
	if got[0] != 1.5 || !math.IsInf(float64(got[1]), 1) {
		t.Fatalf("Float32s = %v", got)
	}
}
