package generic

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/arch/registry"
)

// init registers the portable reference implementations with the registry.
//
// The generic entry is the only one that must implement every operation:
// dispatch backfills the unset slots of partial accelerated entries from it,
// and it serves as the final fallback when no SIMD backend is available or
// when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no accelerated alternative matches)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AddFloat4:   AddFloat4,
		MulFloat4:   MulFloat4,
		SubFloat4:   SubFloat4,
		AddInt4:     AddInt4,
		ShuffleInt4: ShuffleInt4,
	})
}
