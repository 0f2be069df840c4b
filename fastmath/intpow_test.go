package fastmath

import (
	"math"
	"testing"
)

func TestPowInt(t *testing.T) {
	tests := []struct {
		base, exp, want int
	}{
		{2, 5, 32},
		{3, 0, 1},
		{0, 0, 1},
		{5, 1, 5},
		{7, 2, 49},
		{-2, 3, -8},
		{-2, 4, 16},
		{10, 9, 1000000000},
		{2, -1, 0},
		{0, 3, 0},
	}

	for _, tt := range tests {
		if got := PowInt(tt.base, tt.exp); got != tt.want {
			t.Errorf("PowInt(%d, %d) = %d, want %d", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestPowFloatInt(t *testing.T) {
	tests := []struct {
		name string
		base float64
		exp  int
		want float64
	}{
		{"2^3", 2, 3, 8},
		{"2^-2", 2, -2, 0.25},
		{"1.5^2", 1.5, 2, 2.25},
		{"-2^3", -2, 3, -8},
		{"x^0", 42, 0, 1},
		{"0^0", 0, 0, 1},
		{"0^2", 0, 2, 0},
		{"0^-1", 0, -1, math.Inf(1)},
		{"2^MinInt", 2, math.MinInt, 0},
		{"1^MaxInt", 1, math.MaxInt, 1},
		{"-1^MaxInt", -1, math.MaxInt, -1},
		{"-1^MinInt", -1, math.MinInt, 1},
		{"2^MaxInt", 2, math.MaxInt, math.Inf(1)},
		{"0.5^MaxInt", 0.5, math.MaxInt, 0},
		{"2^40", 2, 40, 1 << 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PowFloatInt(tt.base, tt.exp); got != tt.want {
				t.Errorf("PowFloatInt(%v, %d) = %v, want %v", tt.base, tt.exp, got, tt.want)
			}
			if got := PowFloatInt(float32(tt.base), tt.exp); float64(got) != tt.want {
				t.Errorf("PowFloatInt(float32 %v, %d) = %v, want %v", tt.base, tt.exp, got, tt.want)
			}
		})
	}
}
