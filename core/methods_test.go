// SPDX-License-Identifier: MIT
// Package core_test verifies vertex/arc lifecycle, deterministic ordering and
// the symmetry check of core.Graph.

package core_test

import (
	"testing"

	"github.com/katalvlaran/mstbench/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddVertex_Validation rejects non-positive IDs and treats re-adds as no-ops.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(0), core.ErrInvalidVertex)
	assert.ErrorIs(t, g.AddVertex(-3), core.ErrInvalidVertex)

	require.NoError(t, g.AddVertex(7))
	require.NoError(t, g.AddVertex(7))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(7))
	assert.False(t, g.HasVertex(8))
}

// TestAddEdge_InsertsBothArcs checks that an undirected edge lands in both
// adjacency lists and that a self-loop is stored once.
func TestAddEdge_InsertsBothArcs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(3, 3, 9))

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 5}}, n1)

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 2, To: 1, Weight: 5}}, n2)

	n3, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Len(t, n3, 1)
	assert.Equal(t, 3, g.ArcCount())

	assert.ErrorIs(t, g.AddEdge(0, 1, 1), core.ErrInvalidVertex)
}

// TestAddArc_OneDirection checks that AddArc never mirrors.
func TestAddArc_OneDirection(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddArc(4, 2, 11))

	assert.Equal(t, 1, g.Degree(4))
	assert.Equal(t, 0, g.Degree(2))
	assert.True(t, g.HasVertex(2), "target vertex is created on demand")
	assert.False(t, g.Symmetric())

	require.NoError(t, g.AddArc(2, 4, 11))
	assert.True(t, g.Symmetric())
}

// TestVertices_Ascending checks that out-of-order inserts are returned sorted
// and that the returned slice is a copy.
func TestVertices_Ascending(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(8))
	for _, v := range []int{5, 1, 4, 2, 3} {
		require.NoError(t, g.AddVertex(v))
	}

	vs := g.Vertices()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, vs)

	vs[0] = 99
	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.Vertices())
}

// TestNeighbors_Unknown reports ErrVertexNotFound.
func TestNeighbors_Unknown(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors(1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestEdges_Order checks Edges() walks vertices ascending and keeps insertion
// order inside each adjacency list; UndirectedEdges() keeps one arc per edge.
func TestEdges_Order(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(2, 3, 7))
	require.NoError(t, g.AddEdge(1, 3, 4))
	require.NoError(t, g.AddEdge(2, 1, 6))

	want := []core.Edge{
		{From: 1, To: 3, Weight: 4},
		{From: 1, To: 2, Weight: 6},
		{From: 2, To: 3, Weight: 7},
		{From: 2, To: 1, Weight: 6},
		{From: 3, To: 2, Weight: 7},
		{From: 3, To: 1, Weight: 4},
	}
	assert.Equal(t, want, g.Edges())

	assert.Equal(t, []core.Edge{
		{From: 1, To: 3, Weight: 4},
		{From: 1, To: 2, Weight: 6},
		{From: 2, To: 3, Weight: 7},
	}, g.UndirectedEdges())
}

// TestSymmetric_ParallelArcs counts parallel arcs as a multiset.
func TestSymmetric_ParallelArcs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddArc(1, 2, 5))
	assert.False(t, g.Symmetric(), "second 1→2 arc has no mirror")

	require.NoError(t, g.AddArc(2, 1, 5))
	assert.True(t, g.Symmetric())

	require.NoError(t, g.AddArc(2, 1, 6))
	assert.False(t, g.Symmetric(), "mirror must carry the same cost")
}

// TestEdge_Helpers covers Endpoints in both orientations.
func TestEdge_Helpers(t *testing.T) {
	e := core.Edge{From: 9, To: 4, Weight: 3}
	lo, hi := e.Endpoints()
	assert.Equal(t, 4, lo)
	assert.Equal(t, 9, hi)
	lo, hi = core.Edge{From: 4, To: 9, Weight: 3}.Endpoints()
	assert.Equal(t, []int{4, 9}, []int{lo, hi})
}
