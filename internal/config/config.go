// Package config defines the runtime configuration of the mstbench command,
// its defaults, and how it is resolved from flags, environment and file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load
// (e.g. MSTBENCH_SIZES, MSTBENCH_LOG_LEVEL).
const EnvPrefix = "MSTBENCH"

var (
	// ErrInvalidSizes indicates an empty size list or a size below 1.
	ErrInvalidSizes = errors.New("config: sizes must be a non-empty list of positive integers")

	// ErrInvalidPattern indicates a file pattern without exactly one %d verb.
	ErrInvalidPattern = errors.New("config: file pattern must contain exactly one %d verb")

	// ErrInvalidGenerate indicates a non-positive generator vertex count or fan-out.
	ErrInvalidGenerate = errors.New("config: generator vertices and max fan-out must be positive")
)

// Config is the resolved configuration.
type Config struct {
	// Sizes lists the graph sizes the bench command runs, in order.
	Sizes []int `mapstructure:"sizes"`
	// GraphDir is the directory holding the input files.
	GraphDir string `mapstructure:"graph_dir"`
	// FilePattern maps a size to a file name, e.g. "MST_Graph%d.txt".
	FilePattern string `mapstructure:"file_pattern"`
	// EdgeListPath is where the mst command writes the tree edge list.
	EdgeListPath string `mapstructure:"edgelist"`
	// ReportPath is where the bench command writes its YAML report.
	ReportPath string `mapstructure:"report"`
	// Root is Prim's seed vertex; 0 selects the smallest vertex ID.
	Root int `mapstructure:"root"`
	// Trace enables span export to stderr.
	Trace bool `mapstructure:"trace"`

	Log      LogConfig      `mapstructure:"log"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GenerateConfig drives the generate command.
type GenerateConfig struct {
	Vertices  int    `mapstructure:"vertices"`
	Output    string `mapstructure:"output"`
	Seed      int64  `mapstructure:"seed"`
	MaxFanout int    `mapstructure:"max_fanout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sizes:        []int{1000, 5000, 10000, 30000, 50000, 100000, 200000},
		GraphDir:     ".",
		FilePattern:  "MST_Graph%d.txt",
		EdgeListPath: "edgelist.txt",
		ReportPath:   "mst_report.yaml",
		Log:          LogConfig{Level: "info", Format: "text"},
		Generate: GenerateConfig{
			Vertices:  200,
			Output:    "MST_Graph200.txt",
			Seed:      1,
			MaxFanout: 5,
		},
	}
}

// SetDefaults registers Default() on v and wires the MSTBENCH_* environment.
// Nested keys map to underscores: generate.max_fanout ← MSTBENCH_GENERATE_MAX_FANOUT.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("sizes", d.Sizes)
	v.SetDefault("graph_dir", d.GraphDir)
	v.SetDefault("file_pattern", d.FilePattern)
	v.SetDefault("edgelist", d.EdgeListPath)
	v.SetDefault("report", d.ReportPath)
	v.SetDefault("root", d.Root)
	v.SetDefault("trace", d.Trace)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("generate.vertices", d.Generate.Vertices)
	v.SetDefault("generate.output", d.Generate.Output)
	v.SetDefault("generate.seed", d.Generate.Seed)
	v.SetDefault("generate.max_fanout", d.Generate.MaxFanout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the fields every command relies on.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrInvalidSizes
	}
	for _, s := range c.Sizes {
		if s < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidSizes, s)
		}
	}
	if strings.Count(c.FilePattern, "%d") != 1 || strings.Count(c.FilePattern, "%") != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, c.FilePattern)
	}
	if c.Generate.Vertices < 1 || c.Generate.MaxFanout < 1 {
		return fmt.Errorf("%w: vertices=%d max_fanout=%d", ErrInvalidGenerate, c.Generate.Vertices, c.Generate.MaxFanout)
	}

	return nil
}

// GraphPath returns the input file for size.
func (c Config) GraphPath(size int) string {
	return filepath.Join(c.GraphDir, fmt.Sprintf(c.FilePattern, size))
}
