// Package mstbench computes minimum spanning trees of weighted undirected
// graphs and measures how Kruskal's and Prim's algorithms scale with size.
//
// What is inside:
//
//	core/         — Graph, Edge: integer vertex IDs, symmetric adjacency lists
//	disjointset/  — union-find with path compression and union by rank
//	frontier/     — min-heap of candidate arcs with lazy invalidation
//	prim_kruskal/ — Kruskal and Prim engines plus Compute dispatch
//	graphio/      — adjacency-file reader/writer and visualization edge list
//	builder/      — deterministic fixtures and the random connected generator
//	bfs/          — breadth-first search and connected components
//	bench/        — timing harness, cost cross-check, growth fit
//	report/       — YAML report and comparison table
//	cmd/mstbench  — generate, mst and bench commands
//
// Both engines share one tie-break (cost, then the sorted endpoint pair), so
// on any connected graph they return trees of identical total cost.
//
// Quick start:
//
//	mstbench generate --vertices 1000 --output MST_Graph1000.txt
//	mstbench mst --input MST_Graph1000.txt --algorithm prim
//	mstbench bench --sizes 1000 --report mst_report.yaml
package mstbench
