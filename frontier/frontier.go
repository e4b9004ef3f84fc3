package frontier

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/mstbench/core"
)

// ErrEmptyFrontier is returned by PopMin on an empty frontier.
// A correctly driven engine never triggers it; treat it as a logic error.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// Less reports whether arc a must leave the frontier before arc b.
func Less(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	alo, ahi := a.Endpoints()
	blo, bhi := b.Endpoints()
	if alo != blo {
		return alo < blo
	}
	if ahi != bhi {
		return ahi < bhi
	}

	return a.From < b.From
}

// Frontier is a min-heap of arcs. The zero value is an empty, usable frontier.
type Frontier struct {
	items edgeHeap
	peak  int
}

// New returns an empty frontier with room for capacity arcs.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{items: make(edgeHeap, 0, capacity)}
}

// FromEdges builds a frontier holding a copy of edges in O(len(edges)).
func FromEdges(edges []core.Edge) *Frontier {
	items := make(edgeHeap, len(edges))
	copy(items, edges)
	heap.Init(&items)

	return &Frontier{items: items, peak: len(items)}
}

// Push inserts e.
func (f *Frontier) Push(e core.Edge) {
	heap.Push(&f.items, e)
	if len(f.items) > f.peak {
		f.peak = len(f.items)
	}
}

// PopMin removes and returns the lowest-ordered arc.
//
// Errors: ErrEmptyFrontier if the frontier holds no arcs.
func (f *Frontier) PopMin() (core.Edge, error) {
	if len(f.items) == 0 {
		return core.Edge{}, ErrEmptyFrontier
	}

	return heap.Pop(&f.items).(core.Edge), nil
}

// Len returns the number of arcs currently held, stale ones included.
func (f *Frontier) Len() int { return len(f.items) }

// Empty reports whether Len() == 0.
func (f *Frontier) Empty() bool { return len(f.items) == 0 }

// Peak returns the largest Len() observed since construction.
func (f *Frontier) Peak() int { return f.peak }

// edgeHeap implements heap.Interface ordered by Less.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int           { return len(h) }
func (h edgeHeap) Less(i, j int) bool { return Less(h[i], h[j]) }
func (h edgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }

// Pop removes the last element; called by heap.Pop after moving the minimum there.
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
