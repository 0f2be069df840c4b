package cpu

import (
	"runtime"
	"testing"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if f2 := DetectFeatures(); f2 != f {
		t.Fatalf("detection not stable: %+v vs %+v", f, f2)
	}
}

func TestDetectFeaturesMatchesDispatcher(t *testing.T) {
	ResetDetection()
	f := DetectFeatures()
	vf := vcpu.DetectFeatures()
	if f.HasSSE2 != vf.HasSSE2 || f.HasAVX2 != vf.HasAVX2 || f.HasAVX512 != vf.HasAVX512 || f.HasNEON != vf.HasNEON {
		t.Fatalf("features %+v disagree with algo-vecmath %+v", f, vf)
	}
}

func TestForceGenericReachesDispatcher(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{Architecture: runtime.GOARCH, HasSSE2: true, HasAVX2: true, ForceGeneric: true})

	vf := vcpu.DetectFeatures()
	if !vf.ForceGeneric {
		t.Fatalf("algo-vecmath features = %+v, want ForceGeneric", vf)
	}
	if !vcpu.Supports(vf, vcpu.SIMDNone) || vcpu.Supports(vf, vcpu.SIMDAVX2) {
		t.Fatal("forced generic must restrict the dispatcher to SIMDNone")
	}
	if got := DetectFeatures().Level(); got != vcpu.SIMDNone {
		t.Fatalf("Level() = %v, want %v", got, vcpu.SIMDNone)
	}

	ResetDetection()
	if vcpu.DetectFeatures().ForceGeneric {
		t.Fatal("ResetDetection did not clear the algo-vecmath override")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		f    Features
		want SIMDLevel
	}{
		{"none", Features{}, vcpu.SIMDNone},
		{"sse2", Features{HasSSE2: true}, vcpu.SIMDSSE2},
		{"avx2", Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, vcpu.SIMDAVX2},
		{"avx512", Features{HasSSE2: true, HasAVX2: true, HasAVX512: true}, vcpu.SIMDAVX512},
		{"neon", Features{HasNEON: true}, vcpu.SIMDNEON},
		{"forced generic", Features{HasAVX2: true, ForceGeneric: true}, vcpu.SIMDNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Level(); got != tt.want {
				t.Fatalf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{Architecture: "test", HasAVX2: true, HasFMA: true})
	f := DetectFeatures()
	if !f.HasFMA || f.HasAVX || !f.HasAVX2 {
		t.Fatalf("forced features not applied: %+v", f)
	}
	if got, want := f.String(), "test "+vcpu.SIMDAVX2.String()+" [avx2 fma]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	ResetDetection()
	if DetectFeatures().Architecture != runtime.GOARCH {
		t.Fatal("ResetDetection did not restore host detection")
	}
}

func TestStringWithoutFlags(t *testing.T) {
	f := Features{Architecture: "wasm"}
	if got, want := f.String(), "wasm "+vcpu.SIMDNone.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
