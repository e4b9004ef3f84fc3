// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_random_connected.go - implementation of RandomConnected(n) constructor,
// the generator of the benchmark's MST_Graph<n> input files.
//
// Canonical model:
//   - Pick a random start vertex; it becomes the "current" vertex.
//   - Repeat n-1 steps:
//     1) Draw k ∈ {0,1,2}. If at least k cycle candidates exist, add k edges
//        current—candidate (candidates picked at random; self-pairs skipped).
//     2) Draw f ∈ [1, cfg.maxFanout] and attach up to f random unused vertices
//        to current. Each attached vertex joins the cycle candidates with
//        probability 1/2.
//     3) The last attached vertex becomes current.
//   - Every edge gets a distinct cost drawn without replacement from
//     [MinGeneratedCost, max(3001, 4n+100)).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - cfg.weightFn is NOT consulted: costs always come from the distinct pool.
//   - The result is connected: every vertex but the start is attached to an
//     already attached vertex exactly once by a step-2 edge.
//
// Complexity:
//   - Time: O(n + E) with E ≤ 3(n-1) undirected edges.
//   - Space: O(n + E) (unused/candidate sets, sparse cost permutation).
//
// Determinism:
//   - Fixed seed and maxFanout ⇒ identical graph, arc order included.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mstbench/core"
)

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 1
	maxCycleEdgesPerStep       = 2

	// MinGeneratedCost is the smallest cost RandomConnected assigns.
	MinGeneratedCost int64 = 100
	// minCostPoolEnd is the exclusive upper bound of the pool for small graphs.
	minCostPoolEnd int64 = 3001
	// costPoolPerVertex scales the pool with n; E ≤ 3(n-1) keeps it ample.
	costPoolPerVertex int64 = 4
)

// RandomConnected returns a Constructor that builds a random connected graph
// with optional cycles and pairwise distinct edge costs.
func RandomConnected(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		// 2) Register every vertex up front so isolated IDs never appear out of order.
		if err := addVertices(g, cfg, methodRandomConnected, n); err != nil {
			return err
		}

		rng := cfg.rng
		costs := newCostPool(MinGeneratedCost, costPoolEnd(n))
		link := func(u, v int) error {
			w, ok := costs.draw(rng)
			if !ok {
				return fmt.Errorf("%s: %d costs used: %w", methodRandomConnected, costs.size, ErrCostPoolExhausted)
			}
			a, b := cfg.idFn(u), cfg.idFn(v)
			if err := g.AddEdge(a, b, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d, w=%d): %w", methodRandomConnected, a, b, w, err)
			}

			return nil
		}

		// 3) Start vertex.
		unused := make([]int, n)
		for i := range unused {
			unused[i] = i
		}
		current := takeRandom(rng, &unused)
		var candidates []int

		// 4) Grow.
		for step := 0; step < n-1; step++ {
			// 4a) Optional cycle edges back into the attached part.
			k := rng.Intn(maxCycleEdgesPerStep + 1)
			for j := 0; j < k && len(candidates) >= k; j++ {
				c := candidates[rng.Intn(len(candidates))]
				if c == current {
					continue
				}
				if err := link(current, c); err != nil {
					return err
				}
			}

			// 4b) Fresh vertices.
			next := current
			fan := 1 + rng.Intn(cfg.maxFanout)
			for j := 0; j < fan && len(unused) > 0; j++ {
				v := takeRandom(rng, &unused)
				if err := link(current, v); err != nil {
					return err
				}
				if rng.Intn(2) == 0 {
					candidates = append(candidates, v)
				}
				next = v
			}

			// 4c) Move on.
			current = next
		}

		return nil
	}
}

// costPoolEnd returns the exclusive upper bound of the cost pool for n vertices.
func costPoolEnd(n int) int64 {
	end := costPoolPerVertex*int64(n) + MinGeneratedCost
	if end < minCostPoolEnd {
		return minCostPoolEnd
	}

	return end
}

// takeRandom removes and returns a uniformly chosen element of *s
// (swap-with-last, O(1)).
func takeRandom(rng *rand.Rand, s *[]int) int {
	items := *s
	i := rng.Intn(len(items))
	v := items[i]
	last := len(items) - 1
	items[i] = items[last]
	*s = items[:last]

	return v
}

// costPool draws distinct values from [lo, hi) without replacement using a
// sparse Fisher–Yates shuffle: only displaced slots are stored.
type costPool struct {
	lo        int64
	remaining int64
	size      int64
	moved     map[int64]int64
}

func newCostPool(lo, hi int64) *costPool {
	return &costPool{lo: lo, remaining: hi - lo, size: hi - lo, moved: make(map[int64]int64)}
}

func (p *costPool) slot(i int64) int64 {
	if v, ok := p.moved[i]; ok {
		return v
	}

	return i
}

// draw returns the next distinct cost, or false when the pool is empty.
func (p *costPool) draw(rng *rand.Rand) (int64, bool) {
	if p.remaining == 0 {
		return 0, false
	}
	k := rng.Int63n(p.remaining)
	last := p.remaining - 1
	v := p.slot(k)
	p.moved[k] = p.slot(last)
	delete(p.moved, last)
	p.remaining--

	return p.lo + v, true
}
