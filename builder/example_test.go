package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mstbench/builder"
)

// ExampleBuildGraph builds a 4-cycle with distinct ascending costs.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithDistinctCosts(1)},
		builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.UndirectedEdges() {
		fmt.Printf("%d—%d cost=%d\n", e.From, e.To, e.Weight)
	}
	// Output:
	// 1—2 cost=1
	// 1—4 cost=4
	// 2—3 cost=2
	// 3—4 cost=3
}

// ExampleRandomConnected generates a reproducible benchmark input.
func ExampleRandomConnected() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(2024), builder.WithMaxFanout(3)},
		builder.RandomConnected(20))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.VertexCount(), "symmetric:", g.Symmetric())
	// Output:
	// vertices: 20 symmetric: true
}
