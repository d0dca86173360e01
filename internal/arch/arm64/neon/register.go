//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/arch/registry"
)

// init registers the NEON backend with the registry.
//
// NEON is mandatory on ARMv8, so this backend is effectively always selected
// on arm64 unless detection is overridden. All five operations are
// registered; the lane shuffle maps onto a table lookup (TBL), which takes
// its indices from a register.
//
// Priority: 15 (only accelerated backend on arm64)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		AddFloat4:   addFloat4,
		MulFloat4:   mulFloat4,
		SubFloat4:   subFloat4,
		AddInt4:     addInt4,
		ShuffleInt4: shuffleInt4,
	})
}
