//go:build amd64 && !purego

package simd

import (
	_ "github.com/cwbudde/algo-simd/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-simd/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-simd/internal/arch/generic"    // register scalar backend
)
