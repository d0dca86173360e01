package simd

import (
	"os"
	"sync"

	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/arch/registry"
)

// ForceEnv names the environment variable consulted once, at first use, to
// prefer a specific family (e.g. ALGOSIMD_FORCE=scalar). Unknown names and
// families that are not available on the running process are ignored.
const ForceEnv = "ALGOSIMD_FORCE"

var (
	active    Family
	activeOps Ops

	dispatchOnce sync.Once
)

// ActiveFamily returns the instruction-set family serving this process. The
// first call performs backend selection; every later call returns the same
// value. The result is never FamilyNone.
func ActiveFamily() Family {
	dispatchOnce.Do(initDispatch)
	return active
}

// Operations returns the operation table of the active family, triggering
// backend selection on first use. The table is returned by value with every
// field non-nil; callers cannot affect later calls through it.
func Operations() Ops {
	dispatchOnce.Do(initDispatch)
	return activeOps
}

// Available reports whether the named family could serve this process: its
// backend is compiled into the binary and the CPU confirms the required
// instructions at runtime. FamilyScalar is always available, FamilyNone
// never. Available is a pure query and does not trigger backend selection.
func Available(f Family) bool {
	switch f {
	case FamilyScalar:
		return true
	case FamilyNone:
		return false
	}
	entry := registry.Global.ByLevel(f.level())
	return entry != nil && cpu.Supports(cpu.DetectFeatures(), entry.SIMDLevel)
}

// CompiledFamilies returns the families whose backends are linked into this
// binary, most preferred first. The scalar backend is always present, so the
// result is never empty. Like Available, this does not trigger selection.
func CompiledFamilies() []Family {
	entries := registry.Global.Entries()
	families := make([]Family, len(entries))
	for i := range entries {
		families[i] = familyForLevel(entries[i].SIMDLevel)
	}
	return families
}

// initDispatch runs exactly once, inside dispatchOnce, and publishes the
// (family, table) pair read by all accessors.
func initDispatch() {
	prefer := FamilyNone
	if v := os.Getenv(ForceEnv); v != "" {
		if f, err := ParseFamily(v); err == nil {
			prefer = f
		}
	}
	active, activeOps = selectFamily(cpu.DetectFeatures(), prefer)
}

// selectFamily picks the backend for the given features and materializes its
// complete operation table. prefer names a family to use instead of the
// highest-priority confirmed one; it is ignored when its backend is not
// compiled in or the features do not support it.
func selectFamily(features cpu.Features, prefer Family) (Family, Ops) {
	scalar := registry.Global.ByLevel(cpu.SIMDNone)
	if scalar == nil {
		panic("simd: no scalar backend registered (missing init import?)")
	}
	if scalar.AddFloat4 == nil || scalar.MulFloat4 == nil || scalar.SubFloat4 == nil ||
		scalar.AddInt4 == nil || scalar.ShuffleInt4 == nil {
		panic("simd: scalar backend is incomplete")
	}

	// Supports is always true for SIMDNone, so with the scalar entry present
	// Lookup cannot come back empty.
	entry := registry.Global.Lookup(features)

	if prefer != FamilyNone {
		if e := registry.Global.ByLevel(prefer.level()); e != nil && cpu.Supports(features, e.SIMDLevel) {
			entry = e
		}
	}

	return familyForLevel(entry.SIMDLevel), buildOps(entry, scalar)
}

// buildOps assembles the published table from the selected entry, filling
// every slot the backend does not accelerate from the scalar bodies.
func buildOps(entry, scalar *registry.OpEntry) Ops {
	ops := Ops{
		AddFloat4:   scalar.AddFloat4,
		MulFloat4:   scalar.MulFloat4,
		SubFloat4:   scalar.SubFloat4,
		AddInt4:     scalar.AddInt4,
		ShuffleInt4: scalar.ShuffleInt4,
	}

	if entry.AddFloat4 != nil {
		ops.AddFloat4 = entry.AddFloat4
	}
	if entry.MulFloat4 != nil {
		ops.MulFloat4 = entry.MulFloat4
	}
	if entry.SubFloat4 != nil {
		ops.SubFloat4 = entry.SubFloat4
	}
	if entry.AddInt4 != nil {
		ops.AddInt4 = entry.AddInt4
	}
	if entry.ShuffleInt4 != nil {
		ops.ShuffleInt4 = entry.ShuffleInt4
	}

	return ops
}
