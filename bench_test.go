package simd_test

import (
	"testing"

	"github.com/cwbudde/algo-simd"
)

func BenchmarkAddFloat4(b *testing.B) {
	ops := simd.Operations()
	x := [4]float32{1, 2, 3, 4}
	y := [4]float32{5, 6, 7, 8}
	var dst [4]float32

	b.SetBytes(3 * 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ops.AddFloat4(&dst, &x, &y)
	}
}

func BenchmarkMulFloat4(b *testing.B) {
	ops := simd.Operations()
	x := [4]float32{1, 2, 3, 4}
	y := [4]float32{5, 6, 7, 8}
	var dst [4]float32

	b.SetBytes(3 * 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ops.MulFloat4(&dst, &x, &y)
	}
}

func BenchmarkSubFloat4(b *testing.B) {
	ops := simd.Operations()
	x := [4]float32{1, 2, 3, 4}
	y := [4]float32{5, 6, 7, 8}
	var dst [4]float32

	b.SetBytes(3 * 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ops.SubFloat4(&dst, &x, &y)
	}
}

func BenchmarkAddInt4(b *testing.B) {
	ops := simd.Operations()
	x := [4]int32{1, 2, 3, 4}
	y := [4]int32{5, 6, 7, 8}
	var dst [4]int32

	b.SetBytes(3 * 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ops.AddInt4(&dst, &x, &y)
	}
}

func BenchmarkShuffleInt4(b *testing.B) {
	ops := simd.Operations()
	x := [4]int32{1, 2, 3, 4}
	var dst [4]int32

	b.SetBytes(2 * 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ops.ShuffleInt4(&dst, &x, uint8(i))
	}
}

// BenchmarkAddFloat4Wrapper measures the package-level wrapper, which pays
// for a sync.Once check on every call compared to a held table.
func BenchmarkAddFloat4Wrapper(b *testing.B) {
	x := [4]float32{1, 2, 3, 4}
	y := [4]float32{5, 6, 7, 8}
	var dst [4]float32

	b.SetBytes(3 * 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		simd.AddFloat4(&dst, &x, &y)
	}
}

func BenchmarkActiveFamily(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = simd.ActiveFamily()
	}
}

func BenchmarkOperations(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = simd.Operations()
	}
}
