// Package core provides the in-memory weighted, undirected graph consumed by
// the MST engines.
//
// A Graph G = (V,E) is stored as an adjacency list:
//
//	adjacency[v] = [(v→u₁, c₁), (v→u₂, c₂), …]
//
// Vertices are positive integers (1, 2, 3, …). Every undirected edge {u,v}
// is kept as two arcs, u→v in u's list and v→u in v's list, which is exactly
// the shape of the adjacency text files produced by the graph generator.
//
// Two insertion primitives mirror the two ways graphs are built:
//
//	AddEdge(u, v, c) // O(1) amortized; inserts both arcs (builders, tests)
//	AddArc(u, v, c)  // O(1) amortized; inserts one arc (file loader)
//
// The loader relies on the file listing every edge from both endpoints and
// does not re-derive the mirror arcs; Symmetric() can be used to check it.
//
// Determinism:
//
//   - Vertices() returns IDs in ascending order.
//   - Neighbors(v) returns arcs in insertion order.
//   - Edges() walks Vertices() then Neighbors(), so it is fully deterministic
//     for a given insertion sequence.
//
// Concurrency:
//
//	A Graph is built once and then lent read-only to the engines. Mutating
//	methods are not safe for concurrent use; any number of readers may share
//	a Graph that is no longer being mutated.
//
// Errors:
//
//	ErrInvalidVertex  - vertex ID is not a positive integer.
//	ErrVertexNotFound - requested vertex does not exist.
package core
