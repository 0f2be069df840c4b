// Package cpu reports the SIMD state that drives the float64 block kernels.
//
// The approximation kernels are pure scalar code, but the float64 paths of
// package vector and fastmath.HypotBlock delegate to algo-vecmath, which
// selects an implementation from algo-vecmath/cpu. DetectFeatures reads that
// package, so forcing features here forces them for the dispatcher too. AVX
// and FMA, which algo-vecmath does not track, are read from x/sys/cpu.
package cpu

import (
	"strings"
	"sync"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

// SIMDLevel is the dispatch level used by algo-vecmath.
type SIMDLevel = vcpu.SIMDLevel

// Features describes the host CPU.
type Features struct {
	Architecture string

	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasFMA    bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric pins the dispatcher to the pure Go kernels.
	ForceGeneric bool
}

// dispatchOrder lists the levels from widest to narrowest.
var dispatchOrder = []SIMDLevel{vcpu.SIMDAVX512, vcpu.SIMDAVX2, vcpu.SIMDSSE2, vcpu.SIMDNEON}

// Level returns the widest level algo-vecmath would dispatch to.
func (f Features) Level() SIMDLevel {
	vf := f.vecmath()
	for _, l := range dispatchOrder {
		if vcpu.Supports(vf, l) {
			return l
		}
	}
	return vcpu.SIMDNone
}

// Flags lists the detected extensions in ascending order of width.
func (f Features) Flags() []string {
	var flags []string
	add := func(ok bool, name string) {
		if ok {
			flags = append(flags, name)
		}
	}
	add(f.HasSSE2, "sse2")
	add(f.HasAVX, "avx")
	add(f.HasAVX2, "avx2")
	add(f.HasFMA, "fma")
	add(f.HasAVX512, "avx512f")
	add(f.HasNEON, "neon")
	return flags
}

// String renders the features as "<arch> <level> [flags]".
func (f Features) String() string {
	var b strings.Builder
	b.WriteString(f.Architecture)
	b.WriteByte(' ')
	b.WriteString(f.Level().String())
	if flags := f.Flags(); len(flags) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(flags, " "))
		b.WriteByte(']')
	}
	return b.String()
}

func (f Features) vecmath() vcpu.Features {
	return vcpu.Features{
		HasSSE2:      f.HasSSE2,
		HasAVX2:      f.HasAVX2,
		HasAVX512:    f.HasAVX512,
		HasNEON:      f.HasNEON,
		ForceGeneric: f.ForceGeneric,
		Architecture: f.Architecture,
	}
}

type extras struct {
	avx, fma bool
}

var (
	extrasOnce sync.Once
	detected   extras

	forcedMu sync.RWMutex
	forced   *extras
)

// DetectFeatures returns the features algo-vecmath dispatches on, plus AVX
// and FMA. It is safe for concurrent use.
func DetectFeatures() Features {
	vf := vcpu.DetectFeatures()

	forcedMu.RLock()
	ex := forced
	forcedMu.RUnlock()
	if ex == nil {
		extrasOnce.Do(func() { detected = detectExtras() })
		ex = &detected
	}

	return Features{
		Architecture: vf.Architecture,
		HasSSE2:      vf.HasSSE2,
		HasAVX:       ex.avx,
		HasAVX2:      vf.HasAVX2,
		HasFMA:       ex.fma,
		HasAVX512:    vf.HasAVX512,
		HasNEON:      vf.HasNEON,
		ForceGeneric: vf.ForceGeneric,
	}
}

// SetForcedFeatures overrides detection here and in algo-vecmath/cpu.
// algo-vecmath resolves each kernel once, so force features before the first
// block call. Intended for tests.
func SetForcedFeatures(f Features) {
	vcpu.SetForcedFeatures(f.vecmath())

	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced = &extras{avx: f.HasAVX, fma: f.HasFMA}
}

// ResetDetection clears any override set by SetForcedFeatures.
func ResetDetection() {
	vcpu.ResetDetection()

	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced = nil
}
