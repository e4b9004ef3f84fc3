// Package commands holds the cobra command tree of the mstbench binary.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/internal/logging"
	"github.com/katalvlaran/mstbench/internal/telemetry"
)

// app carries the state shared by the root command and its subcommands.
// It is resolved once in the root's PersistentPreRunE.
type app struct {
	v       *viper.Viper
	cfgFile string
	stderr  io.Writer

	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

// Execute runs the command tree against os.Args and returns the exit status.
func Execute(ctx context.Context) int {
	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}

// Run builds a fresh command tree, executes it with args and flushes
// telemetry. Output goes to stdout; logs and spans go to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{v: viper.New(), stderr: stderr}
	config.SetDefaults(a.v)

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.shutdown != nil {
		if serr := a.shutdown(context.WithoutCancel(ctx)); serr != nil {
			err = errors.Join(err, fmt.Errorf("telemetry shutdown: %w", serr))
		}
	}

	return err
}

func (a *app) rootCmd() *cobra.Command {
	d := config.Default()
	cmd := &cobra.Command{
		Use:   "mstbench",
		Short: "Minimum spanning tree benchmark: Kruskal vs Prim",
		Long: `mstbench computes minimum spanning trees of weighted undirected graphs
with Kruskal's and Prim's algorithms and compares their running times.

Settings resolve from flags, then MSTBENCH_* environment variables,
then the --config file, then built-in defaults.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.String("log-level", d.Log.Level, "log level: debug, info, warn or error")
	pf.String("log-format", d.Log.Format, "log format: text or json")
	pf.Bool("trace", d.Trace, "export spans to stderr")
	bindFlags(a.v, pf, map[string]string{
		"log-level":  "log.level",
		"log-format": "log.format",
		"trace":      "trace",
	})

	cmd.AddCommand(a.generateCmd(), a.mstCmd(), a.benchCmd())

	return cmd
}

// setup reads the config file, resolves Config and installs logging and tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, err := logging.New(a.stderr, logging.Options{Level: level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	a.logger = logger
	slog.SetDefault(logger)

	traceOut := io.Discard
	if cfg.Trace {
		traceOut = a.stderr
	}
	shutdown, err := telemetry.Init(cmd.Context(), traceOut)
	if err != nil {
		return err
	}
	a.shutdown = shutdown

	return nil
}

// bindFlags binds each flag in fs named in keys to its viper key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	fs.VisitAll(func(f *pflag.Flag) {
		if key, ok := keys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})
}
