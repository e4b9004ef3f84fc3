package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// TestFixtures_KnownTotals checks topologies whose MST cost is known in
// closed form when costs are 1, 2, 3, … in emission order.
func TestFixtures_KnownTotals(t *testing.T) {
	distinct := []builder.BuilderOption{builder.WithDistinctCosts(1)}
	cases := []struct {
		name  string
		ctor  builder.Constructor
		total int64
	}{
		// A path is its own tree: 1+2+…+9.
		{"Path(10)", builder.Path(10), 45},
		// A cycle drops its heaviest edge (the closing edge, cost 8).
		{"Cycle(8)", builder.Cycle(8), 28},
		// A star is its own tree: 1+2+…+6.
		{"Star(7)", builder.Star(7), 21},
		// Wheel(6): rim 1..5, spokes 6..10; keep rim 1..4 plus the cheapest spoke.
		{"Wheel(6)", builder.Wheel(6), 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, distinct, tc.ctor)
			require.NoError(t, err)

			tk, err := prim_kruskal.Kruskal(g)
			require.NoError(t, err)
			assert.Equal(t, tc.total, tk.Total)
			assert.True(t, tk.Spanning(g.VertexCount()))

			tp, err := prim_kruskal.Prim(g)
			require.NoError(t, err)
			assert.Equal(t, tc.total, tp.Total)
			assert.True(t, tp.Spanning(g.VertexCount()))
		})
	}
}

// TestFixtures_GeneratedGraphs compares both engines on generator output,
// including sparse vertex IDs and a dense complete graph.
func TestFixtures_GeneratedGraphs(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
	}{
		{"RandomConnected(500)", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(500)},
		{"RandomConnected(64) stride IDs",
			[]builder.BuilderOption{builder.WithSeed(2), builder.WithStrideIDs(7, 3)}, builder.RandomConnected(64)},
		{"Complete(40)", []builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(1, 20)}, builder.Complete(40)},
		{"Grid(12,9)", []builder.BuilderOption{builder.WithSeed(4), builder.WithUniformWeight(1, 5)}, builder.Grid(12, 9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.NoError(t, err)
			n := g.VertexCount()

			tk, err := prim_kruskal.Kruskal(g)
			require.NoError(t, err)
			tp, err := prim_kruskal.Prim(g)
			require.NoError(t, err)

			assert.Len(t, tk.Edges, n-1)
			assert.Len(t, tp.Edges, n-1)
			assert.Equal(t, tk.Total, tp.Total)
		})
	}
}

// TestFixtures_Forest: on a sparse random graph Kruskal returns one tree per
// component, and Prim fails exactly when there is more than one component.
func TestFixtures_Forest(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDistinctCosts(1)},
			builder.RandomSparse(40, 0.04))
		require.NoError(t, err)

		comps, err := bfs.Components(g)
		require.NoError(t, err)

		tk, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Len(t, tk.Edges, g.VertexCount()-len(comps), "seed %d", seed)

		_, err = prim_kruskal.Prim(g)
		if len(comps) > 1 {
			assert.ErrorIs(t, err, prim_kruskal.ErrIncompleteTree, "seed %d", seed)
		} else {
			assert.NoError(t, err, "seed %d", seed)
		}
	}
}
