// Package registry provides the backend registry for the 4-lane vector
// operations.
//
// The registry-based dispatch system allows multiple backend variants
// (generic, SSE2, AVX2, NEON) to coexist in one binary. Architecture-specific
// backends register themselves via init() functions, and the root package
// selects the best backend at runtime based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-simd/cpu"
)

// OpEntry represents a registered backend for the 4-lane vector operations.
//
// Each entry contains typed function references for the operations the
// backend accelerates at a specific SIMD level. Entries may be partial;
// dispatch fills unset slots from the generic entry, which must implement
// every operation.
type OpEntry struct {
	// Name is a human-readable identifier for this backend (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required by this backend.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible backends exist.
	// Higher priority backends are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

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

// OpRegistry manages the registration and lookup of backend variants.
//
// Backends register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority backend compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the dispatch core.
var Global = &OpRegistry{}

// Register adds a backend to the registry.
//
// This function is typically called from init() functions in
// architecture-specific backend packages. It is safe to call concurrently,
// but all registrations should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best backend for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no
// compatible backend is found, returns nil (which should never happen if a
// generic fallback is registered).
//
// This function is thread-safe and performs lazy sorting of entries on first call.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil // Should never happen if generic fallback is registered
}

// ByLevel returns the registered entry requiring the given SIMD level, or
// nil if no such backend was compiled into the binary.
func (r *OpRegistry) ByLevel(level cpu.SIMDLevel) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].SIMDLevel == level {
			return &r.entries[i]
		}
	}

	return nil
}

// Entries returns a copy of all registered entries, sorted by priority in
// descending order. This function is primarily intended for introspection,
// testing, and debugging.
func (r *OpRegistry) Entries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	r.sortByPriority()
	r.sorted = true
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~2-3 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
