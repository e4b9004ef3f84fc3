package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/graphio"
	"github.com/katalvlaran/mstbench/internal/config"
)

func (a *app) generateCmd() *cobra.Command {
	d := config.Default().Generate
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Write a random connected graph as an adjacency file",
		Example: "  mstbench generate --vertices 1000 --output MST_Graph1000.txt --seed 7",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gc := a.cfg.Generate
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(gc.Seed), builder.WithMaxFanout(gc.MaxFanout)},
				builder.RandomConnected(gc.Vertices),
			)
			if err != nil {
				return err
			}
			if err = graphio.WriteAdjacencyFile(gc.Output, g); err != nil {
				return err
			}

			a.logger.Debug("graph generated",
				"vertices", g.VertexCount(), "arcs", g.ArcCount(), "seed", gc.Seed, "output", gc.Output)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s vertices, %s edges to %s\n",
				humanize.Comma(int64(g.VertexCount())), humanize.Comma(int64(g.ArcCount()/2)), gc.Output)

			return nil
		},
	}

	f := cmd.Flags()
	f.Int("vertices", d.Vertices, "number of vertices")
	f.String("output", d.Output, "adjacency file to write")
	f.Int64("seed", d.Seed, "random seed")
	f.Int("max-fanout", d.MaxFanout, "most fresh vertices attached per step")
	bindFlags(a.v, f, map[string]string{
		"vertices":   "generate.vertices",
		"output":     "generate.output",
		"seed":       "generate.seed",
		"max-fanout": "generate.max_fanout",
	})

	return cmd
}
