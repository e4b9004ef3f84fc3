package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/frontier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPopMin_Empty fails loudly instead of returning a sentinel edge.
func TestPopMin_Empty(t *testing.T) {
	var f frontier.Frontier
	_, err := f.PopMin()
	assert.ErrorIs(t, err, frontier.ErrEmptyFrontier)
	assert.True(t, f.Empty())
}

// TestPopMin_AscendingCost pops arcs in non-decreasing cost order.
func TestPopMin_AscendingCost(t *testing.T) {
	f := frontier.New(4)
	for _, w := range []int64{30, 10, 20, 40, 5} {
		f.Push(core.Edge{From: 1, To: 2, Weight: w})
	}
	assert.Equal(t, 5, f.Peak())

	var got []int64
	for !f.Empty() {
		e, err := f.PopMin()
		require.NoError(t, err)
		got = append(got, e.Weight)
	}
	assert.Equal(t, []int64{5, 10, 20, 30, 40}, got)
	assert.Equal(t, 5, f.Peak(), "peak survives draining")
}

// TestLess_TieBreak orders equal costs by endpoint pair and then by From.
func TestLess_TieBreak(t *testing.T) {
	a := core.Edge{From: 3, To: 1, Weight: 7} // pair (1,3)
	b := core.Edge{From: 2, To: 4, Weight: 7} // pair (2,4)
	c := core.Edge{From: 1, To: 3, Weight: 7} // pair (1,3), From=1

	assert.True(t, frontier.Less(a, b))
	assert.True(t, frontier.Less(c, a))
	assert.False(t, frontier.Less(a, c))
	assert.False(t, frontier.Less(a, a))
	assert.True(t, frontier.Less(core.Edge{From: 9, To: 8, Weight: 1}, c))
}

// TestFromEdges_Deterministic drains a shuffled input in the same order as a
// sort by Less, for every shuffle.
func TestFromEdges_Deterministic(t *testing.T) {
	var edges []core.Edge
	for u := 1; u <= 6; u++ {
		for v := 1; v <= 6; v++ {
			if u != v {
				edges = append(edges, core.Edge{From: u, To: v, Weight: int64((u * v) % 4)})
			}
		}
	}
	want := make([]core.Edge, len(edges))
	copy(want, edges)
	sort.Slice(want, func(i, j int) bool { return frontier.Less(want[i], want[j]) })

	r := rand.New(rand.NewSource(1))
	for round := 0; round < 5; round++ {
		r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
		f := frontier.FromEdges(edges)
		require.Equal(t, len(edges), f.Len())

		got := make([]core.Edge, 0, len(edges))
		for !f.Empty() {
			e, err := f.PopMin()
			require.NoError(t, err)
			got = append(got, e)
		}
		assert.Equal(t, want, got, "round %d", round)
	}
}

// TestFromEdges_CopiesInput leaves the caller's slice untouched.
func TestFromEdges_CopiesInput(t *testing.T) {
	in := []core.Edge{{From: 1, To: 2, Weight: 9}, {From: 2, To: 3, Weight: 1}}
	f := frontier.FromEdges(in)
	top, err := f.PopMin()
	require.NoError(t, err)
	assert.Equal(t, int64(1), top.Weight)
	assert.Equal(t, int64(9), in[0].Weight)
}
