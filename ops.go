package simd

// Package-level wrappers dispatching through the published operation table,
// for callers that do not want to hold an Ops value. The first call of any
// wrapper selects the backend.

// AddFloat4 performs lanewise single-precision addition using the active
// family's kernel: dst[i] = a[i] + b[i]. NaN and Inf lanes propagate with
// IEEE-754 semantics identically under every family.
func AddFloat4(dst, a, b *[4]float32) {
	dispatchOnce.Do(initDispatch)
	activeOps.AddFloat4(dst, a, b)
}

// MulFloat4 performs lanewise single-precision multiplication using the
// active family's kernel: dst[i] = a[i] * b[i].
func MulFloat4(dst, a, b *[4]float32) {
	dispatchOnce.Do(initDispatch)
	activeOps.MulFloat4(dst, a, b)
}

// SubFloat4 performs lanewise single-precision subtraction using the active
// family's kernel: dst[i] = a[i] - b[i].
func SubFloat4(dst, a, b *[4]float32) {
	dispatchOnce.Do(initDispatch)
	activeOps.SubFloat4(dst, a, b)
}

// AddInt4 performs lanewise 32-bit integer addition using the active
// family's kernel: dst[i] = a[i] + b[i]. Overflow wraps around
// two's-complement; there is no trap.
func AddInt4(dst, a, b *[4]int32) {
	dispatchOnce.Do(initDispatch)
	activeOps.AddInt4(dst, a, b)
}

// ShuffleInt4 permutes the lanes of a into dst using a 2-bit-per-lane
// selector mask: dst[i] = a[(mask>>(2*i))&3]. Mask 0b11100100 is the
// identity permutation and mask 0 broadcasts lane 0. The source is read in
// full before any lane is written, so dst may alias a.
func ShuffleInt4(dst, a *[4]int32, mask uint8) {
	dispatchOnce.Do(initDispatch)
	activeOps.ShuffleInt4(dst, a, mask)
}
