package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures one BFS call.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxDepth int // 0 = unlimited
	err      error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth stops the walk at hop distance d (d == 0: unlimited).
// A negative d yields ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// Result is the outcome of one traversal.
type Result struct {
	// Order lists vertices in visit sequence.
	Order []int
	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[int]int
}

// Reached returns the number of visited vertices.
func (r *Result) Reached() int { return len(r.Order) }

// Eccentricity returns the largest hop distance from the start among the
// reached vertices. On a spanning tree rooted at the start this is the
// tree height.
func (r *Result) Eccentricity() int {
	ecc := 0
	for _, d := range r.Depth {
		if d > ecc {
			ecc = d
		}
	}

	return ecc
}
