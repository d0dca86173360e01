//go:build purego

package simd

import (
	_ "github.com/cwbudde/algo-simd/internal/arch/generic" // register scalar backend
)
