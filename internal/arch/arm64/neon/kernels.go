//go:build arm64 && !purego

// Package neon provides the NEON (Advanced SIMD) backend for the 4-lane
// vector operations.
package neon

// The kernels below are straight-line lane code selected for NEON-capable
// CPUs; array pointers keep them free of bounds checks.
// TODO: replace with FADD/FMUL/FSUB/ADD/TBL asm kernels.

func addFloat4(dst, a, b *[4]float32) {
	dst[0] = a[0] + b[0]
	dst[1] = a[1] + b[1]
	dst[2] = a[2] + b[2]
	dst[3] = a[3] + b[3]
}

func mulFloat4(dst, a, b *[4]float32) {
	dst[0] = a[0] * b[0]
	dst[1] = a[1] * b[1]
	dst[2] = a[2] * b[2]
	dst[3] = a[3] * b[3]
}

func subFloat4(dst, a, b *[4]float32) {
	dst[0] = a[0] - b[0]
	dst[1] = a[1] - b[1]
	dst[2] = a[2] - b[2]
	dst[3] = a[3] - b[3]
}

func addInt4(dst, a, b *[4]int32) {
	dst[0] = a[0] + b[0]
	dst[1] = a[1] + b[1]
	dst[2] = a[2] + b[2]
	dst[3] = a[3] + b[3]
}

// shuffleInt4 reads the source in full before writing, matching the register
// semantics of a hardware permute, so dst may alias a.
func shuffleInt4(dst, a *[4]int32, mask uint8) {
	src := *a
	dst[0] = src[mask&0x3]
	dst[1] = src[(mask>>2)&0x3]
	dst[2] = src[(mask>>4)&0x3]
	dst[3] = src[(mask>>6)&0x3]
}
