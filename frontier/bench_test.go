package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/frontier"
)

// BenchmarkPushPop pushes 10k random arcs and drains them.
func BenchmarkPushPop(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, 10_000)
	for i := range edges {
		edges[i] = core.Edge{From: r.Intn(1000) + 1, To: r.Intn(1000) + 1, Weight: r.Int63n(1_000_000)}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := frontier.New(len(edges))
		for _, e := range edges {
			f.Push(e)
		}
		for !f.Empty() {
			_, _ = f.PopMin()
		}
	}
}
