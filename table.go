package simd

// Ops is the operation table of the active family: one function reference
// per 4-lane operation. Tables obtained from Operations are complete - every
// field is non-nil - because dispatch backfills slots a backend does not
// accelerate with the scalar bodies before publishing.
type Ops struct {
	// AddFloat4 performs lanewise single-precision addition: dst[i] = a[i] + b[i].
	AddFloat4 func(dst, a, b *[4]float32)

	// MulFloat4 performs lanewise single-precision multiplication: dst[i] = a[i] * b[i].
	MulFloat4 func(dst, a, b *[4]float32)

	// SubFloat4 performs lanewise single-precision subtraction: dst[i] = a[i] - b[i].
	SubFloat4 func(dst, a, b *[4]float32)

	// AddInt4 performs lanewise 32-bit integer addition with two's-complement
	// wraparound: dst[i] = a[i] + b[i].
	AddInt4 func(dst, a, b *[4]int32)

	// ShuffleInt4 permutes lanes by a 2-bit-per-lane selector mask:
	// dst[i] = a[(mask>>(2*i))&3]. dst may alias a.
	ShuffleInt4 func(dst, a *[4]int32, mask uint8)
}
