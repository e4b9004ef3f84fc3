// Package prim_kruskal computes Minimum Spanning Trees of an undirected,
// weighted *core.Graph with Kruskal's and Prim's algorithms.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V and minimizes the sum of the costs of its edges.
//
//   - Why two algorithms?
//     Both reach the same total cost (the MST cost is unique even when the edge set is not),
//     but they scale differently; the bench package times them side by side.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (Tree, error)
//
//   - Strategy: heapify every arc into a frontier.Frontier, pop arcs in ascending cost and accept
//     an arc when its endpoints are in different disjointset components. Each undirected edge
//     is present twice (once per direction); the second copy is rejected as a cycle.
//
//   - Disconnected input is not an error: the result is a spanning forest with fewer
//     than |V|−1 edges and the partial total.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, opts ...Option) (Tree, error)
//
//   - Strategy: start from a seed vertex (WithRoot, default: smallest vertex ID), push its arcs,
//     then repeatedly pop the cheapest arc. Arcs that lead to an already visited vertex are
//     stale and discarded on pop (lazy invalidation); nothing is removed from the heap eagerly.
//
//   - Disconnected input is an error: when the frontier empties before every vertex is
//     visited, Prim returns ErrIncompleteTree and no tree.
//
//   - Complexity: O(E log E) time; the frontier may hold O(E) entries including stale ones.
//
// Determinism
//
//	Equal costs are ordered by the endpoint pair (min, max) and then by From (frontier.Less).
//	Running either engine twice on the same graph yields the same edges in the same order.
//
// Indexing
//
//	Vertex IDs are one-based and may be sparse; union-find and visited bitmaps are zero-based
//	and dense. The translation happens in one place (vertexIndex) at the engine boundary.
//
// Error Conditions
//
//   - ErrNilGraph       — graph is nil.
//   - ErrIncompleteTree — Prim could not reach every vertex from the root.
//   - core.ErrVertexNotFound — Prim root does not exist.
//   - ErrUnknownMethod  — Compute was asked for an unsupported method.
//
// Graphs with zero or one vertex produce an empty Tree with total 0 from both engines.
package prim_kruskal
