package commands

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/graphio"
	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

func (a *app) mstCmd() *cobra.Command {
	var (
		input  string
		method string
	)
	d := config.Default()
	cmd := &cobra.Command{
		Use:     "mst",
		Short:   "Compute the minimum spanning tree of one adjacency file",
		Example: "  mstbench mst --input MST_Graph200.txt --algorithm prim --edgelist edgelist.txt",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := graphio.LoadFile(input)
			if err != nil {
				return err
			}
			components, err := bfs.Components(g)
			if err != nil {
				return err
			}

			tree, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: method, Root: a.cfg.Root})
			if err != nil {
				return fmt.Errorf("%s (graph has %d components): %w", input, len(components), err)
			}
			if err = graphio.WriteEdgeListFile(a.cfg.EdgeListPath, tree.Edges); err != nil {
				return err
			}
			root, height, err := treeHeight(cmd.Context(), g, tree, a.cfg.Root)
			if err != nil {
				return err
			}

			a.logger.Info("mst computed",
				"input", input, "algorithm", method, "total", tree.Total, "edges", len(tree.Edges),
				"discarded", tree.Discarded, "frontier_peak", tree.FrontierPeak, "height", height)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "algorithm:  %s\n", method)
			fmt.Fprintf(out, "vertices:   %s\n", humanize.Comma(int64(g.VertexCount())))
			fmt.Fprintf(out, "total cost: %s\n", humanize.Comma(tree.Total))
			fmt.Fprintf(out, "edges:      %s\n", humanize.Comma(int64(len(tree.Edges))))
			fmt.Fprintf(out, "components: %d\n", len(components))
			fmt.Fprintf(out, "height:     %d (root %d)\n", height, root)
			fmt.Fprintf(out, "edge list:  %s\n", a.cfg.EdgeListPath)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "adjacency file to read")
	f.StringVarP(&method, "algorithm", "a", prim_kruskal.MethodKruskal, "kruskal or prim")
	f.Int("root", d.Root, "Prim seed vertex; 0 selects the smallest vertex ID")
	f.String("edgelist", d.EdgeListPath, "edge list file to write")
	_ = cmd.MarkFlagRequired("input")
	bindFlags(a.v, f, map[string]string{
		"root":     "root",
		"edgelist": "edgelist",
	})

	return cmd
}

// treeHeight returns the hop height of the tree hung from root (the smallest
// vertex ID when root is 0). For a forest only root's own tree is measured.
func treeHeight(ctx context.Context, g *core.Graph, tree prim_kruskal.Tree, root int) (int, int, error) {
	if g.VertexCount() == 0 {
		return 0, 0, nil
	}
	if root == 0 {
		root = g.Vertices()[0]
	}
	if !g.HasVertex(root) {
		return 0, 0, fmt.Errorf("root %d: %w", root, core.ErrVertexNotFound)
	}

	t := core.NewGraph(core.WithCapacity(len(tree.Edges) + 1))
	if err := t.AddVertex(root); err != nil {
		return 0, 0, err
	}
	for _, e := range tree.Edges {
		if err := t.AddEdge(e.From, e.To, e.Weight); err != nil {
			return 0, 0, err
		}
	}
	res, err := bfs.BFS(t, root, bfs.WithContext(ctx))
	if err != nil {
		return 0, 0, err
	}

	return root, res.Eccentricity(), nil
}
