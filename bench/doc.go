// Package bench drives Kruskal's and Prim's engines across a series of graph
// sizes and records, per size and algorithm, the elapsed wall-clock time and
// the tree cost.
//
// Each size is processed sequentially: load, then Kruskal, then Prim. No
// state is shared between sizes besides the accumulated Report, and the two
// engines never share a frontier or disjoint set.
//
// Failure policy:
//
//   - A load failure (missing or malformed file) is recorded in
//     Report.Failures, logged at Warn, and the harness moves on to the next
//     size. Run returns all load failures joined, each matching ErrLoadFailed.
//   - An engine failure (including Prim's ErrIncompleteTree on a disconnected
//     input) or a Kruskal/Prim cost disagreement (ErrCostMismatch) aborts the
//     run: a missing data point inside a size would corrupt the comparison.
//     The partial Report is returned with the error.
//   - Context cancellation is checked between sizes.
//
// Observability: one slog record per (size, algorithm) and one OpenTelemetry
// span per size ("bench.size") with a child span per engine ("bench.kruskal",
// "bench.prim").
package bench
