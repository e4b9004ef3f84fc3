// SPDX-License-Identifier: MIT
//
// File: writer.go
// Role: Adjacency-list and edge-list writers.
// Determinism:
//   - WriteAdjacency: vertices ascending, arcs in insertion order.
//   - WriteEdgeList: edges in the order given.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mstbench/core"
)

// WriteAdjacency writes every arc of g as "<from> <to> <cost>", grouped by
// source vertex in ascending order. Vertices without arcs produce no line.
// Load(WriteAdjacency(g)) reproduces g's arcs.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("graphio: write adjacency: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write adjacency: %w", err)
	}

	return nil
}

// WriteEdgeList writes edges as "<u> <v> {'cost': <c>}", one per line.
func WriteEdgeList(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d {'cost': %d}\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("graphio: write edge list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write edge list: %w", err)
	}

	return nil
}

// WriteAdjacencyFile creates (or truncates) path and writes g to it.
func WriteAdjacencyFile(path string, g *core.Graph) error {
	return writeFile(path, func(w io.Writer) error { return WriteAdjacency(w, g) })
}

// WriteEdgeListFile creates (or truncates) path and writes edges to it.
func WriteEdgeListFile(path string, edges []core.Edge) error {
	return writeFile(path, func(w io.Writer) error { return WriteEdgeList(w, edges) })
}

// writeFile runs fn against a freshly created file and reports the first of
// the write and close errors.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("graphio: close %s: %w", path, cerr)
		}
	}()

	return fn(f)
}
