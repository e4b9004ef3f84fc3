// Package bfs provides breadth-first search over a core.Graph and
// connected-component discovery built on the same walker.
//
// BFS visits vertices in non-decreasing hop distance from a start vertex;
// edge costs are ignored. The Result holds the visit Order and each reached
// vertex's Depth. Eccentricity on the walk of a spanning tree from its root
// gives the tree height, which the mst command reports.
//
// Components partitions the whole graph. Prim's engine fails on a
// disconnected graph, and Kruskal's forest has exactly |V| − components edges,
// so callers use the count to explain both outcomes.
//
// Determinism: Neighbors returns arcs in insertion order and Components seeds
// from vertices in ascending order.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for a negative WithMaxDepth.
//   - ctx.Err() when the WithContext context is done.
package bfs
