package bench

import (
	"context"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/graphio"
)

// Loader produces the input graph for one benchmark size.
type Loader interface {
	Load(ctx context.Context, size int) (*core.Graph, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, size int) (*core.Graph, error)

// Load calls f(ctx, size).
func (f LoaderFunc) Load(ctx context.Context, size int) (*core.Graph, error) {
	return f(ctx, size)
}

// FileLoader reads the adjacency file path(size), e.g. with
// config.Config.GraphPath as path, data/MST_Graph1000.txt for size 1000.
func FileLoader(path func(size int) string) Loader {
	return LoaderFunc(func(ctx context.Context, size int) (*core.Graph, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return graphio.LoadFile(path(size))
	})
}
