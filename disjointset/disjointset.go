package disjointset

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a Set was requested for n ≤ 0 elements.
var ErrInvalidSize = errors.New("disjointset: size must be positive")

// Set is a partition of {0, …, n-1} into disjoint components.
//
// parent[x] == x marks a representative. rank[r] bounds the height of the
// tree rooted at r and is only meaningful for representatives.
type Set struct {
	parent     []int
	rank       []uint8
	components int
}

// New returns a Set of n singleton components.
//
// Errors: ErrInvalidSize if n ≤ 0.
// Complexity: O(n).
func New(n int) (*Set, error) {
	if n <= 0 {
		return nil, fmt.Errorf("disjointset: New(%d): %w", n, ErrInvalidSize)
	}
	s := &Set{
		parent:     make([]int, n),
		rank:       make([]uint8, n),
		components: n,
	}
	for i := range s.parent {
		s.parent[i] = i
	}

	return s, nil
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.parent) }

// Components returns the current number of disjoint components.
func (s *Set) Components() int { return s.components }

// Find returns the representative of x's component.
// x must lie in [0, Len()); out-of-range indices panic like any slice access.
// Complexity: amortized O(α(n)).
func (s *Set) Find(x int) int {
	for s.parent[x] != x {
		// Path halving: point x at its grandparent, then step there.
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}

	return x
}

// Unite merges the components of x and y. It reports false, and changes
// nothing, when both already share a representative.
// Complexity: amortized O(α(n)).
func (s *Set) Unite(x, y int) bool {
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}
	s.components--

	return true
}

// Same reports whether x and y are in the same component.
// Complexity: amortized O(α(n)).
func (s *Set) Same(x, y int) bool {
	return s.Find(x) == s.Find(y)
}
