// Package builder provides helper types for configuring vertex ID schemes in
// graph constructors.
package builder

import "fmt"

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure and deterministic, and must return IDs ≥ 1 (core rejects
// smaller IDs).
type IDFn func(idx int) int

// DefaultIDFn returns the one-based ID for idx, e.g. 0→1, 41→42.
// Complexity: O(1). Never panics.
func DefaultIDFn(idx int) int {
	return idx + 1
}

// OffsetIDFn returns an IDFn yielding base+idx. Panics if base < 1.
func OffsetIDFn(base int) IDFn {
	if base < 1 {
		panic(fmt.Sprintf("OffsetIDFn: base must be ≥ 1, got %d", base))
	}

	return func(idx int) int {
		return base + idx
	}
}

// StrideIDFn returns an IDFn yielding start+idx·step, useful for fixtures
// whose IDs are not contiguous. Panics if start < 1 or step < 1.
func StrideIDFn(start, step int) IDFn {
	if start < 1 || step < 1 {
		panic(fmt.Sprintf("StrideIDFn: require start ≥ 1 and step ≥ 1, got start=%d, step=%d", start, step))
	}

	return func(idx int) int {
		return start + idx*step
	}
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithOffsetIDs sets the ID scheme to OffsetIDFn(base).
func WithOffsetIDs(base int) BuilderOption {
	return WithIDScheme(OffsetIDFn(base))
}

// WithStrideIDs sets the ID scheme to StrideIDFn(start, step).
func WithStrideIDs(start, step int) BuilderOption {
	return WithIDScheme(StrideIDFn(start, step))
}
