// Package simd provides 4-lane vector arithmetic dispatched at runtime to
// the best instruction-set backend the executing CPU supports.
//
// The package exposes exactly five operations over fixed 4-wide operands:
//
// Single-precision float lanes:
//   - AddFloat4: dst[i] = a[i] + b[i]
//   - MulFloat4: dst[i] = a[i] * b[i]
//   - SubFloat4: dst[i] = a[i] - b[i]
//
// 32-bit integer lanes:
//   - AddInt4: dst[i] = a[i] + b[i] (two's-complement wraparound)
//   - ShuffleInt4: dst[i] = a[(mask>>(2*i))&3] (2-bit-per-lane permute)
//
// # Backend selection
//
// Backends exist for SSE2 and AVX2 (amd64), NEON (arm64), and a portable
// scalar reference that is always compiled in. The first call to any
// operation or to ActiveFamily/Operations selects a backend exactly once per
// process: candidates are restricted at build time by architecture and the
// purego tag, then confirmed at runtime against detected CPU features, and
// the most capable confirmed backend wins. When no accelerated backend is
// both compiled in and confirmed, selection silently falls back to scalar;
// there is no error path.
//
// Every backend produces results bit-identical to the scalar reference for
// all inputs, including NaN and Inf float patterns, so switching hardware
// never changes observable output.
//
// # Overriding selection
//
// Setting the ALGOSIMD_FORCE environment variable to a family name (scalar,
// sse2, avx2, neon) before first use prefers that family; an unavailable
// name is ignored. Building with the purego tag removes all accelerated
// backends. Both knobs only narrow the choice - the numeric results do not
// change.
//
// All entry points are safe for concurrent use from multiple goroutines.
package simd
