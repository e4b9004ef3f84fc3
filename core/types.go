// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/Edge/Graph declarations, sentinel errors and the NewGraph constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates a vertex ID below 1.
	ErrInvalidVertex = errors.New("core: vertex ID must be positive")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is one traversal direction of an undirected edge: From→To with an
// integer Weight (the edge cost).
type Edge struct {
	// From is the vertex the arc leaves.
	From int

	// To is the vertex the arc enters.
	To int

	// Weight is the cost of the edge.
	Weight int64
}

// Endpoints returns the edge's endpoints as an ordered pair (lo ≤ hi).
// Two arcs of the same undirected edge share the same Endpoints.
func (e Edge) Endpoints() (lo, hi int) {
	if e.From <= e.To {
		return e.From, e.To
	}

	return e.To, e.From
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal storage for about n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[int][]Edge, n)
			g.order = make([]int, 0, n)
		}
	}
}

// Graph is a weighted, undirected multigraph over positive integer vertices.
//
// adjacency maps each vertex to its outgoing arcs in insertion order.
// order lists every vertex once; it is sorted lazily on the first read after
// a new vertex appears (sorted tracks that state).
type Graph struct {
	adjacency map[int][]Edge
	order     []int
	sorted    bool
	arcs      int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int][]Edge),
		sorted:    true,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
