package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// walker holds the mutable state of one traversal; Components reuses one
// walker across its seeds so the visited set is shared.
type walker struct {
	graph    *core.Graph
	ctx      context.Context
	maxDepth int
	queue    []int
	res      *Result
}

// BFS performs a breadth-first traversal of g from start. Costs are ignored.
//
// Steps:
//  1. Validate graph and options.
//  2. Enqueue the start vertex at depth 0.
//  3. Dequeue and enqueue unvisited neighbors until the queue empties or the
//     context is done.
//
// On cancellation the partial result is returned together with ctx.Err().
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validation.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 2. Seed.
	w := newWalker(g, o, g.VertexCount())
	w.enqueue(start, 0)

	// 3. Main loop.
	return w.res, w.loop()
}

// Components returns the connected components of g. Each component lists
// its vertices in BFS order from its smallest vertex; components are ordered
// by that smallest vertex. An empty graph has no components.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, defaultOptions(), g.VertexCount())

	var out [][]int
	for _, v := range g.Vertices() {
		if _, seen := w.res.Depth[v]; seen {
			continue
		}
		start := len(w.res.Order)
		w.enqueue(v, 0)
		if err := w.loop(); err != nil {
			return nil, err
		}
		end := len(w.res.Order)
		out = append(out, w.res.Order[start:end:end])
	}

	return out, nil
}

func newWalker(g *core.Graph, o options, n int) *walker {
	return &walker{
		graph:    g,
		ctx:      o.ctx,
		maxDepth: o.maxDepth,
		queue:    make([]int, 0, n),
		res: &Result{
			Order: make([]int, 0, n),
			Depth: make(map[int]int, n),
		},
	}
}

// enqueue marks v reached at depth d; Order is filled at dequeue time.
func (w *walker) enqueue(v, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, v)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)

		next := w.res.Depth[v] + 1
		if w.maxDepth > 0 && next > w.maxDepth {
			continue
		}
		arcs, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", v, err)
		}
		for _, a := range arcs {
			if _, seen := w.res.Depth[a.To]; !seen {
				w.enqueue(a.To, next)
			}
		}
	}

	return nil
}
