package cpu

import (
	"runtime"
	"testing"
)

func TestSIMDLevel_String(t *testing.T) {
	tests := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "None"},
		{SIMDSSE2, "SSE2"},
		{SIMDAVX, "AVX"},
		{SIMDAVX2, "AVX2"},
		{SIMDAVX512, "AVX-512"},
		{SIMDNEON, "NEON"},
		{SIMDLevel(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.level.String()
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{
			name:     "Generic always supported",
			features: Features{},
			level:    SIMDNone,
			want:     true,
		},
		{
			name: "SSE2 supported when HasSSE2",
			features: Features{
				HasSSE2: true,
			},
			level: SIMDSSE2,
			want:  true,
		},
		{
			name: "SSE2 not supported without HasSSE2",
			features: Features{
				HasSSE2: false,
			},
			level: SIMDSSE2,
			want:  false,
		},
		{
			name: "AVX supported when HasAVX",
			features: Features{
				HasAVX: true,
			},
			level: SIMDAVX,
			want:  true,
		},
		{
			name: "AVX2 supported when HasAVX2",
			features: Features{
				HasAVX2: true,
			},
			level: SIMDAVX2,
			want:  true,
		},
		{
			name: "AVX-512 supported when HasAVX512",
			features: Features{
				HasAVX512: true,
			},
			level: SIMDAVX512,
			want:  true,
		},
		{
			name: "NEON supported when HasNEON",
			features: Features{
				HasNEON: true,
			},
			level: SIMDNEON,
			want:  true,
		},
		{
			name: "ForceGeneric blocks all SIMD",
			features: Features{
				HasSSE2:      true,
				HasAVX2:      true,
				ForceGeneric: true,
			},
			level: SIMDAVX2,
			want:  false,
		},
		{
			name: "ForceGeneric allows Generic",
			features: Features{
				ForceGeneric: true,
			},
			level: SIMDNone,
			want:  true,
		},
		{
			name:     "Unknown level unsupported",
			features: Features{HasSSE2: true, HasAVX2: true, HasNEON: true},
			level:    SIMDLevel(999),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Supports(tt.features, tt.level)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDetectFeatures_Stable(t *testing.T) {
	first := DetectFeatures()
	second := DetectFeatures()
	if first != second {
		t.Fatalf("detection not stable: %+v vs %+v", first, second)
	}
	if first.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", first.Architecture, runtime.GOARCH)
	}
}

func TestDetectFeatures_Baseline(t *testing.T) {
	features := DetectFeatures()
	switch runtime.GOARCH {
	case "amd64":
		// SSE2 is part of the x86-64 baseline.
		if !features.HasSSE2 {
			t.Error("HasSSE2 = false on amd64")
		}
	case "arm64":
		// NEON is mandatory on ARMv8.
		if !features.HasNEON {
			t.Error("HasNEON = false on arm64")
		}
	}
}

func TestSetForcedFeatures(t *testing.T) {
	defer ResetDetection()

	forced := Features{
		HasNEON:      true,
		Architecture: "arm64",
	}
	SetForcedFeatures(forced)

	got := DetectFeatures()
	if got != forced {
		t.Fatalf("DetectFeatures() = %+v, want forced %+v", got, forced)
	}
	if !HasNEON() {
		t.Error("HasNEON() = false with forced NEON features")
	}
}

func TestResetDetection(t *testing.T) {
	SetForcedFeatures(Features{ForceGeneric: true, Architecture: "forced"})
	ResetDetection()

	got := DetectFeatures()
	if got.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q after reset, want %q", got.Architecture, runtime.GOARCH)
	}
	if got.ForceGeneric {
		t.Error("ForceGeneric survived ResetDetection")
	}
}

func TestHelperConsistency(t *testing.T) {
	features := DetectFeatures()
	if HasSSE2() != features.HasSSE2 {
		t.Error("HasSSE2() disagrees with DetectFeatures().HasSSE2")
	}
	if HasAVX2() != features.HasAVX2 {
		t.Error("HasAVX2() disagrees with DetectFeatures().HasAVX2")
	}
	if HasNEON() != features.HasNEON {
		t.Error("HasNEON() disagrees with DetectFeatures().HasNEON")
	}
}
