package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fastvec/fastmath"
	"github.com/cwbudde/algo-fastvec/internal/sampling"
	"github.com/cwbudde/algo-fastvec/internal/testutil"
)

func TestElementWise(t *testing.T) {
	t.Run("float32", testElementWise[float32])
	t.Run("float64", testElementWise[float64])
}

func testElementWise[T fastmath.Float](t *testing.T) {
	a := Of[T](2, 2, 2)
	b := Of[T](1, 2, 3)

	tests := []struct {
		name    string
		op      func(*Vector[T], *Vector[T]) (*Vector[T], error)
		inPlace func(*Vector[T], *Vector[T]) error
		want    []T
	}{
		{"add", (*Vector[T]).Add, (*Vector[T]).AddInPlace, []T{3, 4, 5}},
		{"sub", (*Vector[T]).Sub, (*Vector[T]).SubInPlace, []T{1, 0, -1}},
		{"mul", (*Vector[T]).Mul, (*Vector[T]).MulInPlace, []T{2, 4, 6}},
		{"div", (*Vector[T]).Div, (*Vector[T]).DivInPlace, []T{2, 1, T(2.0 / 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Data())
			assert.Equal(t, []T{2, 2, 2}, a.Data(), "receiver must be unchanged")

			dst, err := a.Copy()
			require.NoError(t, err)
			require.NoError(t, tt.inPlace(dst, b))
			assert.Equal(t, tt.want, dst.Data())
		})
	}
}

func TestScalarOps(t *testing.T) {
	t.Run("float32", testScalarOps[float32])
	t.Run("float64", testScalarOps[float64])
}

func testScalarOps[T fastmath.Float](t *testing.T) {
	v := Of[T](1, 2, 4)

	tests := []struct {
		name    string
		op      func(*Vector[T], T) (*Vector[T], error)
		inPlace func(*Vector[T], T) error
		s       T
		want    []T
	}{
		{"add", (*Vector[T]).AddScalar, (*Vector[T]).AddScalarInPlace, 10, []T{11, 12, 14}},
		{"sub", (*Vector[T]).SubScalar, (*Vector[T]).SubScalarInPlace, 1, []T{0, 1, 3}},
		{"mul", (*Vector[T]).MulScalar, (*Vector[T]).MulScalarInPlace, -2, []T{-2, -4, -8}},
		{"div", (*Vector[T]).DivScalar, (*Vector[T]).DivScalarInPlace, 4, []T{0.25, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(v, tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Data())
			assert.Equal(t, []T{1, 2, 4}, v.Data())

			dst, err := v.Copy()
			require.NoError(t, err)
			require.NoError(t, tt.inPlace(dst, tt.s))
			assert.Equal(t, tt.want, dst.Data())
		})
	}
}

func TestDivScalarByZeroFillsInf(t *testing.T) {
	v := Of[float32](1, -2, 0)

	got, err := v.DivScalar(0)
	require.NoError(t, err)
	for i, x := range got.Data() {
		assert.True(t, math.IsInf(float64(x), 1), "element %d = %v, want +Inf", i, x)
	}
	assert.Equal(t, []float32{1, -2, 0}, v.Data())

	require.NoError(t, v.DivScalarInPlace(0))
	for i, x := range v.Data() {
		assert.True(t, math.IsInf(float64(x), 1), "in-place element %d = %v, want +Inf", i, x)
	}
}

func TestAddThenSubRoundTrip(t *testing.T) {
	a64 := sampling.Uniform(11, -100, 100, 257)
	b64 := sampling.Uniform(12, -100, 100, 257)

	a, err := FromSlice(a64)
	require.NoError(t, err)
	b, err := FromSlice(b64)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, back.Data(), a.Data(), 1e-12)

	a32 := Of(sampling.Float32s(a64)...)
	b32 := Of(sampling.Float32s(b64)...)
	require.NoError(t, a32.AddInPlace(b32))
	require.NoError(t, a32.SubInPlace(b32))
	testutil.RequireSliceNearlyEqual(t, a32.Data(), sampling.Float32s(a64), 1e-4)
}

func TestDimensionMismatch(t *testing.T) {
	a := Of[float64](1, 2, 3)
	b := Of[float64](1, 2)

	_, err := a.Add(b)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	var dm *DimensionMismatchError
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, "add", dm.Op)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)

	assert.ErrorIs(t, a.MulInPlace(b), ErrDimensionMismatch)
	assert.ErrorIs(t, b.SubInPlace(a), ErrDimensionMismatch)
	_, err = a.Dot(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, []float64{1, 2, 3}, a.Data(), "failed in-place op must not mutate")
}
