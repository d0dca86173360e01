package simd

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-simd/cpu"
)

// Family identifies an instruction-set family providing the 4-lane vector
// operations. The zero value FamilyNone means "not yet selected" and is
// never observable through the public accessors.
type Family int

const (
	// FamilyNone is the unselected sentinel. ActiveFamily never returns it.
	FamilyNone Family = iota

	// FamilyScalar is the portable reference implementation, available on
	// every platform and build configuration.
	FamilyScalar

	// FamilySSE2 is the x86-64 baseline 128-bit backend (amd64 builds).
	FamilySSE2

	// FamilyAVX2 is the AVX2 backend (amd64 builds).
	FamilyAVX2

	// FamilyNEON is the Advanced SIMD backend (arm64 builds).
	FamilyNEON
)

// String returns the canonical lowercase name of the family.
func (f Family) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyScalar:
		return "scalar"
	case FamilySSE2:
		return "sse2"
	case FamilyAVX2:
		return "avx2"
	case FamilyNEON:
		return "neon"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ParseFamily maps a canonical family name to its Family value. Matching is
// case-insensitive and ignores surrounding whitespace. The sentinel name
// "none" is not accepted; only selectable families parse.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return FamilyScalar, nil
	case "sse2":
		return FamilySSE2, nil
	case "avx2":
		return FamilyAVX2, nil
	case "neon":
		return FamilyNEON, nil
	}
	return FamilyNone, fmt.Errorf("simd: unknown family %q", s)
}

// level returns the SIMD level a family's backend requires at runtime.
func (f Family) level() cpu.SIMDLevel {
	switch f {
	case FamilySSE2:
		return cpu.SIMDSSE2
	case FamilyAVX2:
		return cpu.SIMDAVX2
	case FamilyNEON:
		return cpu.SIMDNEON
	default:
		return cpu.SIMDNone
	}
}

// familyForLevel maps a registered backend's SIMD level back to its family.
func familyForLevel(level cpu.SIMDLevel) Family {
	switch level {
	case cpu.SIMDSSE2:
		return FamilySSE2
	case cpu.SIMDAVX2:
		return FamilyAVX2
	case cpu.SIMDNEON:
		return FamilyNEON
	default:
		return FamilyScalar
	}
}
