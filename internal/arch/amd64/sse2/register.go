//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/arch/registry"
)

// init registers the SSE2 backend with the registry.
//
// SSE2 provides 128-bit SIMD operations and is part of the x86-64 baseline,
// so this backend is available on all amd64 CPUs.
//
// The lane shuffle is deliberately not registered: PSHUFD takes its selector
// as an instruction immediate, so a mask known only at runtime cannot be
// lowered to a single SSE2 permute. Dispatch fills the shuffle slot from the
// generic body instead.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		AddFloat4: addFloat4,
		MulFloat4: mulFloat4,
		SubFloat4: subFloat4,
		AddInt4:   addInt4,
	})
}
