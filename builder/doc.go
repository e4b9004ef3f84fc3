// Package builder provides deterministic and seeded graph constructors for
// benchmark inputs and test fixtures.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:       func(*core.Graph, builderConfig) error.
//     – BuildGraph:        creates a graph and applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme, weight function, fan-out.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       one-based IDs (0→1, 1→2, …).
//     – OffsetIDFn:        base+idx.
//     – StrideIDFn:        start+idx·step, for sparse ID fixtures.
//   - Edge-cost policies (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//     – WithDistinctCosts: ascending distinct costs from lo (per build).
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, Grid:  fixed shapes.
//     – RandomSparse:      Erdős–Rényi-like sampling.
//     – RandomConnected:   the benchmark's input generator (random spanning
//       tree with extra cycle edges and distinct costs).
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - No package-level RNG; randomness flows only through WithSeed/WithRand.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//   - Every undirected edge is stored as two arcs (core.Graph.AddEdge), so
//     built graphs are symmetric and match the adjacency file format.
package builder
