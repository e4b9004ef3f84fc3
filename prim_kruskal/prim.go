// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a seed vertex using a min-heap frontier with lazy invalidation.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/frontier"
)

// Prim computes the Minimum Spanning Tree of a connected graph by growing
// outwards from a seed vertex.
//
// Error Conditions:
//   - ErrNilGraph            : graph is nil.
//   - core.ErrVertexNotFound : the requested root is not a vertex of graph.
//   - ErrIncompleteTree      : the frontier emptied before every vertex was visited.
//
// Steps:
//  1. Validate graph != nil; |V| == 0 → empty tree.
//  2. Resolve the root: WithRoot value, or the smallest vertex ID by default; validate it.
//     |V| == 1 → empty tree.
//  3. Mark root visited and push its arcs towards unvisited vertices.
//  4. While some vertex is unvisited:
//     a. Frontier empty → ErrIncompleteTree.
//     b. Pop the cheapest arc u→v. If v is visited the arc is stale: discard it.
//     c. Otherwise accept it, mark v visited and push v's arcs towards unvisited vertices.
//  5. Return the tree.
//
// Complexity: O(E log E) time, O(V + E) memory (stale arcs stay queued until popped).
func Prim(graph *core.Graph, opts ...Option) (Tree, error) {
	// 1. Validate input.
	if graph == nil {
		return Tree{}, ErrNilGraph
	}
	o := DefaultOptions()
	o.Method = MethodPrim
	for _, opt := range opts {
		opt(&o)
	}
	vertices := graph.Vertices()
	n := len(vertices)
	if n == 0 {
		return Tree{Edges: []core.Edge{}}, nil
	}

	// 2. Resolve and validate the seed vertex.
	root := o.Root
	if root == 0 {
		root = vertices[0]
	}
	if !graph.HasVertex(root) {
		return Tree{}, fmt.Errorf("prim_kruskal: prim root %d: %w", root, core.ErrVertexNotFound)
	}
	if n == 1 {
		return Tree{Edges: []core.Edge{}}, nil
	}

	// 3. Seed the frontier.
	ix := newVertexIndex(vertices)
	visited := make([]bool, n)
	visited[ix.of(root)] = true
	seen := 1

	pq := frontier.New(graph.Degree(root))
	if err := pushUnvisited(graph, pq, root, visited, ix); err != nil {
		return Tree{}, err
	}

	// 4. Grow one vertex per accepted arc.
	tree := Tree{Edges: make([]core.Edge, 0, n-1)}
	for seen < n {
		if pq.Empty() {
			return Tree{}, fmt.Errorf("%w: reached %d of %d vertices from root %d",
				ErrIncompleteTree, seen, n, root)
		}
		e, err := pq.PopMin()
		if err != nil {
			return Tree{}, fmt.Errorf("prim_kruskal: prim: %w", err)
		}
		to := ix.of(e.To)
		if visited[to] {
			// Stale entry: both endpoints settled after it was pushed.
			tree.Discarded++
			continue
		}
		visited[to] = true
		seen++
		tree.Edges = append(tree.Edges, e)
		tree.Total += e.Weight

		if err := pushUnvisited(graph, pq, e.To, visited, ix); err != nil {
			return Tree{}, err
		}
	}

	// 5. Spanning tree complete.
	tree.FrontierPeak = pq.Peak()

	return tree, nil
}

// pushUnvisited pushes every arc leaving v whose head is not yet visited.
func pushUnvisited(graph *core.Graph, pq *frontier.Frontier, v int, visited []bool, ix vertexIndex) error {
	arcs, err := graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("prim_kruskal: prim: %w", err)
	}
	for _, a := range arcs {
		if !visited[ix.of(a.To)] {
			pq.Push(a)
		}
	}

	return nil
}
