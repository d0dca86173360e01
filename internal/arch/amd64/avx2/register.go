//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/arch/registry"
)

// init registers the AVX2 backend with the registry.
//
// AVX2 implements all five operations. Unlike SSE2, its permute family
// (VPERMILPS and friends) accepts a runtime selector operand, so the lane
// shuffle is registered here as well.
//
// Priority: 20 (highest on amd64 - preferred over SSE2 and generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		AddFloat4:   addFloat4,
		MulFloat4:   mulFloat4,
		SubFloat4:   subFloat4,
		AddInt4:     addInt4,
		ShuffleInt4: shuffleInt4,
	})
}
