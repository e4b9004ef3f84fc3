package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/report"
)

func (a *app) benchCmd() *cobra.Command {
	d := config.Default()
	cmd := &cobra.Command{
		Use:     "bench",
		Short:   "Time Kruskal and Prim over a series of graph files",
		Example: "  mstbench bench --sizes 1000,5000,10000 --dir graphs --report mst_report.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			h := bench.New(
				bench.FileLoader(cfg.GraphPath),
				bench.WithLogger(a.logger),
				bench.WithRoot(cfg.Root),
			)

			// 1) Run; load failures come back alongside a usable report.
			rep, runErr := h.Run(cmd.Context(), cfg.Sizes)
			if runErr != nil && !errors.Is(runErr, bench.ErrLoadFailed) {
				return runErr
			}

			// 2) Persist and print what was measured.
			if err := writeReport(cfg.ReportPath, rep); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := report.WriteTable(out, rep); err != nil {
				return err
			}
			printGrowth(out, rep)
			fmt.Fprintf(out, "report: %s\n", cfg.ReportPath)

			// 3) Any failed size fails the command.
			return runErr
		},
	}

	f := cmd.Flags()
	f.IntSlice("sizes", d.Sizes, "graph sizes to run, in order")
	f.String("dir", d.GraphDir, "directory holding the graph files")
	f.String("pattern", d.FilePattern, "file name pattern with one %d for the size")
	f.String("report", d.ReportPath, "YAML report to write")
	bindFlags(a.v, f, map[string]string{
		"sizes":   "sizes",
		"dir":     "graph_dir",
		"pattern": "file_pattern",
		"report":  "report",
	})

	return cmd
}

func writeReport(path string, rep *bench.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.WriteYAML(f, rep)
}

func printGrowth(w io.Writer, rep *bench.Report) {
	g, err := rep.Growth()
	if err != nil {
		fmt.Fprintf(w, "growth: n/a (%v)\n", err)
		return
	}
	fmt.Fprintf(w, "growth exponent: kruskal=%.2f prim=%.2f\n", g.Kruskal, g.Prim)
}
