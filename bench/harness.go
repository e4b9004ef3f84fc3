package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// ErrLoadFailed marks a size whose input graph could not be loaded.
var ErrLoadFailed = errors.New("bench: load failed")

// ErrCostMismatch is returned when Kruskal and Prim disagree on the total
// cost of the same connected graph.
var ErrCostMismatch = errors.New("bench: kruskal and prim totals differ")

// ErrNoSizes is returned by Run when the size list is empty.
var ErrNoSizes = errors.New("bench: no sizes to run")

// tracerName identifies spans emitted by the harness.
const tracerName = "github.com/katalvlaran/mstbench/bench"

// Harness runs both engines over a list of sizes.
type Harness struct {
	loader Loader
	logger *slog.Logger
	tracer trace.Tracer
	root   int
	now    func() time.Time
}

// Option defines a functional configuration override.
type Option func(*Harness)

// WithLogger sets the structured logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTracer sets the span tracer (default: the global provider's tracer).
func WithTracer(t trace.Tracer) Option {
	return func(h *Harness) {
		if t != nil {
			h.tracer = t
		}
	}
}

// WithRoot sets Prim's seed vertex; 0 keeps the smallest vertex ID.
func WithRoot(root int) Option {
	return func(h *Harness) {
		h.root = root
	}
}

// WithClock replaces time.Now for elapsed-time measurement.
func WithClock(now func() time.Time) Option {
	return func(h *Harness) {
		if now != nil {
			h.now = now
		}
	}
}

// New returns a Harness reading graphs through loader.
func New(loader Loader, opts ...Option) *Harness {
	h := &Harness{
		loader: loader,
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run measures every size in order.
//
// Steps, per size:
//  1. Load the graph; on failure record it and continue with the next size.
//  2. Time Kruskal, then Prim, on the same read-only graph.
//  3. Cross-check the totals and append one Sample to each series.
//
// The returned Report is never nil. The error is nil, the joined load
// failures (each matching ErrLoadFailed), or the first fatal error.
func (h *Harness) Run(ctx context.Context, sizes []int) (*Report, error) {
	report := &Report{}
	if len(sizes) == 0 {
		return report, ErrNoSizes
	}

	var loadErrs []error
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return report, errors.Join(append(loadErrs, err)...)
		}

		fatal, loadErr := h.runSize(ctx, size, report)
		if fatal != nil {
			return report, fatal
		}
		if loadErr != nil {
			loadErrs = append(loadErrs, loadErr)
		}
	}

	return report, errors.Join(loadErrs...)
}

// runSize processes one size. It returns either a fatal error that must stop
// the run, or a load error that must not.
func (h *Harness) runSize(ctx context.Context, size int, report *Report) (fatal, loadErr error) {
	ctx, span := h.tracer.Start(ctx, "bench.size", trace.WithAttributes(attribute.Int("size", size)))
	defer span.End()

	// 1. Load.
	g, err := h.loader.Load(ctx, size)
	if err == nil && g == nil {
		err = prim_kruskal.ErrNilGraph
	}
	if err != nil {
		loadErr = fmt.Errorf("%w: size %d: %w", ErrLoadFailed, size, err)
		report.Failures = append(report.Failures, Failure{Size: size, Err: err})
		h.logger.Warn("graph load failed", "size", size, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")

		return nil, loadErr
	}
	span.SetAttributes(
		attribute.Int("vertices", g.VertexCount()),
		attribute.Int("edges", g.ArcCount()/2),
	)

	// 2. Engines, Kruskal first.
	ks, err := h.measure(ctx, Kruskal, size, g, func() (prim_kruskal.Tree, error) {
		return prim_kruskal.Kruskal(g)
	})
	if err != nil {
		span.SetStatus(codes.Error, "kruskal failed")
		return fmt.Errorf("bench: size %d: %s: %w", size, Kruskal, err), nil
	}
	ps, err := h.measure(ctx, Prim, size, g, func() (prim_kruskal.Tree, error) {
		return prim_kruskal.Prim(g, prim_kruskal.WithRoot(h.root))
	})
	if err != nil {
		span.SetStatus(codes.Error, "prim failed")
		if errors.Is(err, prim_kruskal.ErrIncompleteTree) {
			if comps, cerr := bfs.Components(g); cerr == nil {
				err = fmt.Errorf("%w (graph has %d components)", err, len(comps))
			}
		}
		return fmt.Errorf("bench: size %d: %s: %w", size, Prim, err), nil
	}

	// 3. MST cost is unique on a connected graph.
	if ks.Total != ps.Total {
		span.SetStatus(codes.Error, "cost mismatch")
		h.logger.Error("cost mismatch", "size", size, "kruskal", ks.Total, "prim", ps.Total)
		return fmt.Errorf("%w: size %d: kruskal=%d prim=%d", ErrCostMismatch, size, ks.Total, ps.Total), nil
	}
	report.Kruskal = append(report.Kruskal, ks)
	report.Prim = append(report.Prim, ps)

	return nil, nil
}

// measure times one engine call inside its own span and logs the outcome.
func (h *Harness) measure(
	ctx context.Context,
	algorithm string,
	size int,
	g *core.Graph,
	run func() (prim_kruskal.Tree, error),
) (Sample, error) {
	_, span := h.tracer.Start(ctx, "bench."+algorithm)
	defer span.End()

	start := h.now()
	tree, err := run()
	elapsed := h.now().Sub(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.logger.Error("engine failed", "size", size, "algorithm", algorithm, "elapsed", elapsed, "error", err)

		return Sample{}, err
	}

	s := Sample{
		Size:         size,
		Vertices:     g.VertexCount(),
		Arcs:         g.ArcCount(),
		Elapsed:      elapsed,
		Total:        tree.Total,
		Edges:        len(tree.Edges),
		Discarded:    tree.Discarded,
		FrontierPeak: tree.FrontierPeak,
	}
	span.SetAttributes(
		attribute.Int("size", size),
		attribute.Int("vertices", s.Vertices),
		attribute.Int("edges", s.Edges),
		attribute.Int64("total", s.Total),
		attribute.Int64("duration_ms", elapsed.Milliseconds()),
	)
	h.logger.Info("mst computed",
		"size", size,
		"algorithm", algorithm,
		"elapsed", elapsed,
		"total", s.Total,
		"edges", s.Edges,
		"discarded", s.Discarded,
	)

	return s, nil
}
