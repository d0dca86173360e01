//go:build arm64 && !purego

package simd

import (
	_ "github.com/cwbudde/algo-simd/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-simd/internal/arch/generic"    // register scalar backend
)
