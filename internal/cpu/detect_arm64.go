//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// Fused multiply-add is part of Advanced SIMD on ARMv8.
func detectExtras() extras {
	return extras{fma: cpu.ARM64.HasASIMD}
}
