//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

func detectExtras() extras {
	return extras{avx: cpu.X86.HasAVX, fma: cpu.X86.HasFMA}
}
