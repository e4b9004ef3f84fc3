// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: Adjacency-list loader.

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mstbench/core"
)

// ErrMalformedLine is returned when a non-blank line is not exactly three
// whitespace-separated integers (or names a vertex below 1).
var ErrMalformedLine = errors.New("graphio: malformed line")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Load parses an adjacency list from r into a new graph.
//
// Vertices are created on first mention; arcs keep file order within each
// source vertex. The first malformed line aborts the load.
//
// Errors:
//   - ErrMalformedLine, wrapped with the 1-based line number.
//   - core.ErrInvalidVertex alongside ErrMalformedLine for IDs below 1.
//   - any read error from r.
func Load(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		from, to, cost, err := parseArc(text)
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d %q: %w", line, text, err)
		}
		if err = g.AddArc(from, to, cost); err != nil {
			return nil, fmt.Errorf("graphio: line %d %q: %w: %w", line, text, ErrMalformedLine, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read after line %d: %w", line, err)
	}

	return g, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open: %w", err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseArc splits one non-blank line into its three integer fields.
func parseArc(text string) (from, to int, cost int64, err error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedLine, len(fields))
	}
	if from, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: node1: %w", ErrMalformedLine, err)
	}
	if to, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: node2: %w", ErrMalformedLine, err)
	}
	if cost, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: cost: %w", ErrMalformedLine, err)
	}

	return from, to, cost, nil
}
