// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a spanning tree or forest.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/disjointset"
	"github.com/katalvlaran/mstbench/frontier"
)

// Kruskal computes a minimum spanning forest of graph.
//
// Error Conditions:
//   - ErrNilGraph: graph is nil.
//
// A disconnected graph is NOT an error: the result spans each component and
// holds fewer than |V|−1 edges.
//
// Steps:
//  1. Validate graph != nil; |V| ≤ 1 → empty tree.
//  2. Heapify every arc (both directions of each edge) into a frontier.
//  3. Create a disjoint set of |V| singletons, addressed through vertexIndex.
//  4. Pop arcs in frontier order; accept an arc iff its endpoints are in different
//     components, then unite them. Arcs inside one component are discarded.
//  5. Stop when the frontier is exhausted or |V|−1 edges are accepted.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) (Tree, error) {
	// 1. Validate input and handle degenerate graphs.
	if graph == nil {
		return Tree{}, ErrNilGraph
	}
	vertices := graph.Vertices()
	n := len(vertices)
	if n <= 1 {
		return Tree{Edges: []core.Edge{}}, nil
	}

	// 2. All arcs, heap-ordered. The mirror arc of an accepted edge is later
	//    rejected by the component check, so no de-duplication is needed.
	pq := frontier.FromEdges(graph.Edges())

	// 3. Union-find over dense slots.
	ix := newVertexIndex(vertices)
	components, err := disjointset.New(n)
	if err != nil {
		return Tree{}, fmt.Errorf("prim_kruskal: kruskal: %w", err)
	}

	// 4. Greedy acceptance in ascending cost.
	tree := Tree{Edges: make([]core.Edge, 0, n-1)}
	for !pq.Empty() && len(tree.Edges) < n-1 {
		e, err := pq.PopMin()
		if err != nil {
			return Tree{}, fmt.Errorf("prim_kruskal: kruskal: %w", err)
		}
		u, v := ix.of(e.From), ix.of(e.To)
		if components.Same(u, v) {
			// Closing a cycle (or a self-loop); drop it.
			tree.Discarded++
			continue
		}
		components.Unite(u, v)
		tree.Edges = append(tree.Edges, e)
		tree.Total += e.Weight
	}

	// 5. Forest or tree, both are valid results.
	tree.FrontierPeak = pq.Peak()

	return tree, nil
}
