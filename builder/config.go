// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn      (1, 2, 3, ...)
//   • rng       = nil              (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn  (constant DefaultEdgeWeight)
//   • maxFanout = DefaultMaxFanout (RandomConnected only)

package builder

import "math/rand"

// DefaultMaxFanout is the largest number of fresh vertices RandomConnected
// attaches to the current vertex in one step.
const DefaultMaxFanout = 5

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic, IDs must be ≥ 1).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Cost generator for edges.
	weightFn WeightFn
	// Upper bound of new vertices per RandomConnected step (≥ 1).
	maxFanout int
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		rng:       nil,
		weightFn:  DefaultWeightFn,
		maxFanout: DefaultMaxFanout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
