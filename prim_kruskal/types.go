// Package prim_kruskal defines the result type, configuration options and
// sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to an engine.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrIncompleteTree indicates that Prim's frontier emptied before every
// vertex was visited: the graph is disconnected and no spanning tree exists.
var ErrIncompleteTree = errors.New("prim_kruskal: incomplete spanning tree")

// ErrUnknownMethod indicates Compute was asked for an unsupported method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (global edge order and union-find).
const MethodKruskal = "kruskal"

// Tree is the result of one engine run.
//
// Edges are listed in acceptance order; each keeps the orientation in which
// it was popped (Prim: From is the vertex already in the tree).
type Tree struct {
	// Edges accepted into the tree (or forest, for Kruskal on a disconnected graph).
	Edges []core.Edge

	// Total is the sum of the accepted edges' costs.
	Total int64

	// Discarded counts popped arcs rejected because they would close a cycle
	// (Kruskal) or lead to an already visited vertex (Prim).
	Discarded int

	// FrontierPeak is the largest number of arcs the frontier held at once.
	FrontierPeak int
}

// Spanning reports whether the tree connects n vertices (len(Edges) == n-1).
// Zero- and one-vertex graphs are trivially spanned by the empty tree.
func (t Tree) Spanning(n int) bool {
	if n <= 1 {
		return len(t.Edges) == 0
	}

	return len(t.Edges) == n-1
}

// MSTOptions configures which MST algorithm to run and, for Prim, which
// vertex to grow from.
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — seed vertex for Prim; 0 means "smallest vertex ID". Ignored by Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the seed vertex for Prim's algorithm.
// It is ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with the default root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm named by opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, WithRoot(opts.Root)).
//	– otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (Tree, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, WithRoot(opts.Root))
	default:
		return Tree{}, fmt.Errorf("prim_kruskal: Compute(%q): %w", opts.Method, ErrUnknownMethod)
	}
}
