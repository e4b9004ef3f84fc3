package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/mstbench/graphio"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// ExampleLoad parses a four-line adjacency file (two undirected edges) and
// writes the MST in the visualization format.
func ExampleLoad() {
	in := `1 2 300
2 1 300
2 3 150
3 2 150
`
	g, err := graphio.Load(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tree, _ := prim_kruskal.Kruskal(g)
	_ = graphio.WriteEdgeList(os.Stdout, tree.Edges)
	fmt.Println("total:", tree.Total)
	// Output:
	// 2 3 {'cost': 150}
	// 1 2 {'cost': 300}
	// total: 450
}
