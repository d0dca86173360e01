//go:build amd64 && !purego

// Package sse2 provides the SSE2 backend for the 4-lane vector operations.
package sse2

// The kernels below are straight-line lane code selected for SSE2-capable
// CPUs; array pointers keep them free of bounds checks.
// TODO: replace with ADDPS/MULPS/SUBPS/PADDD asm kernels.

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
