// Package generic provides the portable reference implementations of the
// 4-lane vector operations.
//
// These bodies define the numeric contract every accelerated backend must
// match bit for bit. The package carries no build constraints and is always
// registered, so dispatch can fall back to it on any CPU.
package generic

// AddFloat4 performs lanewise single-precision addition: dst[i] = a[i] + b[i].
func AddFloat4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// MulFloat4 performs lanewise single-precision multiplication: dst[i] = a[i] * b[i].
func MulFloat4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// SubFloat4 performs lanewise single-precision subtraction: dst[i] = a[i] - b[i].
func SubFloat4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// AddInt4 performs lanewise 32-bit integer addition: dst[i] = a[i] + b[i].
// Overflow wraps around two's-complement, matching hardware vector adds.
func AddInt4(dst, a, b *[4]int32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ShuffleInt4 permutes the lanes of a by a 2-bit-per-lane selector mask:
// dst[i] = a[(mask>>(2*i))&3]. The source is read in full before any lane is
// written, so dst may alias a.
func ShuffleInt4(dst, a *[4]int32, mask uint8) {
	src := *a
	for i := range dst {
		dst[i] = src[(mask>>(2*uint(i)))&0x3]
	}
}
