package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000, 42) // pre-build graph once
	b.ResetTimer()                       // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, growing from vertex 1.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, prim_kruskal.WithRoot(1))
	}
}
