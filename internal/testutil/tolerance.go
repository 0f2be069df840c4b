package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Number is the element type accepted by the slice helpers.
type Number interface {
	float32 | float64
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T Number](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !scalar.EqualWithinAbs(float64(got[i]), float64(want[i]), eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)",
				i, got[i], want[i], math.Abs(float64(got[i])-float64(want[i])), eps)
		}
	}
}

// RequireRelNearlyEqual fails t if got differs from want by more than tol
// relative to the larger magnitude of the two.
func RequireRelNearlyEqual(t *testing.T, got, want, tol float64, context string) {
	t.Helper()
	if !scalar.EqualWithinRel(got, want, tol) {
		t.Fatalf("%s: got %v, want %v (rel err %.3g > tol %.3g)", context, got, want, RelErr(got, want), tol)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T Number](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RelErr returns |got-want| / |want|, or |got| when want is zero.
func RelErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T Number](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
