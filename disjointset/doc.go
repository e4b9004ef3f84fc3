// Package disjointset implements a union-find structure over the dense
// element range [0, n).
//
// Find uses path halving (every visited node is re-pointed to its
// grandparent) and Unite links by rank, so a sequence of m operations costs
// O(m·α(n)), where α is the inverse Ackermann function.
//
// Elements are zero-based. Callers that work with one-based vertex IDs must
// translate at a single boundary before calling into this package; the MST
// engines do this through their vertex index adapter.
//
// A Set is owned by one algorithm run and is not safe for concurrent use.
package disjointset
