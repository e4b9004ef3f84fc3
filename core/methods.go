// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and arc lifecycle plus read-only queries.
// Determinism:
//   - Vertices() ascending; Neighbors() insertion order; Edges() = Vertices() × Neighbors().

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts v if it is not present yet. Re-adding is a no-op.
//
// Errors: ErrInvalidVertex if v < 1.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v int) error {
	if v < 1 {
		return fmt.Errorf("core: AddVertex(%d): %w", v, ErrInvalidVertex)
	}
	g.ensureVertex(v)

	return nil
}

// ensureVertex registers v without validation and marks the order dirty
// when v is new and breaks the ascending sequence.
func (g *Graph) ensureVertex(v int) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = nil
	if n := len(g.order); n > 0 && g.order[n-1] > v {
		g.sorted = false
	}
	g.order = append(g.order, v)
}

// AddArc inserts the single arc from→to with the given cost, creating both
// endpoints on demand. The mirror arc is NOT inserted.
//
// Errors: ErrInvalidVertex if either endpoint < 1.
// Complexity: O(1) amortized.
func (g *Graph) AddArc(from, to int, weight int64) error {
	if from < 1 || to < 1 {
		return fmt.Errorf("core: AddArc(%d→%d): %w", from, to, ErrInvalidVertex)
	}
	g.ensureVertex(from)
	g.ensureVertex(to)
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.arcs++

	return nil
}

// AddEdge inserts the undirected edge {u,v}: arc u→v and arc v→u.
// A self-loop (u == v) is stored as a single arc.
//
// Errors: ErrInvalidVertex if either endpoint < 1.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if err := g.AddArc(u, v, weight); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	return g.AddArc(v, u, weight)
}

// HasVertex reports whether v exists.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adjacency[v]

	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.order) }

// ArcCount returns the number of stored arcs. For a symmetric graph without
// self-loops this is 2·|E|.
func (g *Graph) ArcCount() int { return g.arcs }

// Vertices returns all vertex IDs in ascending order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(V) plus a one-off O(V log V) sort after out-of-order inserts.
func (g *Graph) Vertices() []int {
	if !g.sorted {
		sort.Ints(g.order)
		g.sorted = true
	}
	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the arcs leaving v in insertion order.
//
// The returned slice is the graph's own storage: callers must treat it as
// read-only. This keeps engine inner loops allocation-free.
//
// Errors: ErrVertexNotFound if v is absent.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	arcs, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", v, ErrVertexNotFound)
	}

	return arcs, nil
}

// Degree returns the number of arcs leaving v (0 for unknown vertices).
func (g *Graph) Degree(v int) int { return len(g.adjacency[v]) }

// Edges returns every stored arc, ordered by From ascending and then by
// insertion order. Each undirected edge therefore appears twice.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.arcs)
	for _, v := range g.Vertices() {
		out = append(out, g.adjacency[v]...)
	}

	return out
}

// UndirectedEdges returns one arc per undirected edge: the arcs with
// From ≤ To, in the same order as Edges().
// Complexity: O(V + E).
func (g *Graph) UndirectedEdges() []Edge {
	out := make([]Edge, 0, g.arcs/2+1)
	for _, v := range g.Vertices() {
		for _, e := range g.adjacency[v] {
			if e.From <= e.To {
				out = append(out, e)
			}
		}
	}

	return out
}

// Symmetric reports whether every arc u→v (cost c) is matched by an arc
// v→u with the same cost, counting parallel arcs as a multiset.
// Self-loops are trivially symmetric.
// Complexity: O(V + E) time and space.
func (g *Graph) Symmetric() bool {
	type key struct {
		lo, hi int
		w      int64
	}
	balance := make(map[key]int, g.arcs/2+1)
	for _, arcs := range g.adjacency {
		for _, e := range arcs {
			if e.From == e.To {
				continue
			}
			lo, hi := e.Endpoints()
			k := key{lo: lo, hi: hi, w: e.Weight}
			if e.From < e.To {
				balance[k]++
			} else {
				balance[k]--
			}
		}
	}
	for _, b := range balance {
		if b != 0 {
			return false
		}
	}

	return true
}
