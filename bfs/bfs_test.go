package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	_ = g.AddVertex(1)
	if _, err := bfs.BFS(g, 1, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("Components(nil): want ErrGraphNil, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex(1)
	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[1]; d != 0 {
		t.Errorf("Depth[1] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a 4-cycle 1–2–3–4–1 and checks depths.
func TestCycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 5)
	_ = g.AddEdge(2, 3, 5)
	_ = g.AddEdge(3, 4, 5)
	_ = g.AddEdge(4, 1, 5)

	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 4, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[int]int{1: 0, 2: 1, 4: 1, 3: 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	if got := res.Eccentricity(); got != 2 {
		t.Errorf("Eccentricity = %d; want 2", got)
	}
	if got := res.Reached(); got != 4 {
		t.Errorf("Reached = %d; want 4", got)
	}
}

// TestMaxDepth checks that a depth limit prunes the search.
func TestMaxDepth(t *testing.T) {
	g := core.NewGraph()
	for i := 1; i < 6; i++ {
		_ = g.AddEdge(i, i+1, 1) // path 1..6
	}

	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Eccentricity(); got != 3 {
		t.Errorf("Eccentricity from 3 = %d; want 3", got)
	}
}

// TestEccentricity_Forest only measures the start vertex's own component.
func TestEccentricity_Forest(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 9)
	_ = g.AddEdge(3, 4, 1)
	_ = g.AddEdge(4, 5, 1)
	_ = g.AddVertex(6)

	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached() != 2 || res.Eccentricity() != 1 {
		t.Errorf("from 1: reached %d ecc %d; want 2 and 1", res.Reached(), res.Eccentricity())
	}

	res, err = bfs.BFS(g, 6)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached() != 1 || res.Eccentricity() != 0 {
		t.Errorf("isolated: reached %d ecc %d; want 1 and 0", res.Reached(), res.Eccentricity())
	}
}

// TestContextCancel aborts immediately on a cancelled context.
func TestContextCancel(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 1, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestComponents partitions a graph with three pieces, one of them isolated.
func TestComponents(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge(5, 6, 1)
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(2, 4, 3)
	_ = g.AddVertex(3)

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{1, 2, 4}, {3}, {5, 6}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	empty, err := bfs.Components(core.NewGraph())
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Errorf("empty graph: got %d components; want 0", len(empty))
	}
}
