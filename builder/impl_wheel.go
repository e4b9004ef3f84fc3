// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): the rim C_{n-1} needs at least 3 vertices.
//   - Rim vertices are cfg.idFn(0..n-2), the hub is cfg.idFn(n-1).
//   - Emits the rim first (as Cycle), then spokes hub—rim in ascending rim order.
//
// Complexity:
//   - Time: O(n) vertices + O(2n-2) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		// 1) Rim.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		// 2) Hub and spokes.
		hub := cfg.idFn(n - 1)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", methodWheel, hub, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
