// Package testutil provides shared helpers for exercising the 4-lane vector
// kernels in tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// SpecialFloats returns the single-precision edge cases every kernel must
// handle: signed zeros, subnormals, extremes, infinities, and NaN.
func SpecialFloats() []float32 {
	return []float32{
		0,
		float32(math.Copysign(0, -1)),
		1,
		-1,
		0.5,
		-2.5,
		math.MaxFloat32,
		-math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		-math.SmallestNonzeroFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		float32(math.NaN()),
	}
}

// SpecialInts returns 32-bit integer edge cases, including both values whose
// sum wraps around and the extremes themselves.
func SpecialInts() []int32 {
	return []int32{
		0,
		1,
		-1,
		math.MaxInt32,
		math.MinInt32,
		0x40000000,
		-0x40000000,
		123456789,
		-987654321,
	}
}

// RandFloat4 generates a vector with lanes drawn uniformly from (-1000, 1000).
func RandFloat4(rng *rand.Rand) [4]float32 {
	var v [4]float32
	for i := range v {
		v[i] = (rng.Float32()*2 - 1) * 1000
	}
	return v
}

// RandInt4 generates a vector with lanes drawn from all 32-bit patterns.
func RandInt4(rng *rand.Rand) [4]int32 {
	var v [4]int32
	for i := range v {
		v[i] = int32(rng.Uint32())
	}
	return v
}

// RequireFloat4Bits fails t unless got and want are bit-identical in every
// lane. Bitwise comparison distinguishes NaN patterns and signed zeros,
// which value comparison would conflate.
func RequireFloat4Bits(t *testing.T, got, want [4]float32) {
	t.Helper()
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("lane %d: got %v (0x%08x), want %v (0x%08x)",
				i, got[i], math.Float32bits(got[i]), want[i], math.Float32bits(want[i]))
		}
	}
}

// RequireInt4 fails t unless got and want match in every lane.
func RequireInt4(t *testing.T, got, want [4]int32) {
	t.Helper()
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("lane %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
