package bench

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// ErrTooFewSamples is returned by Growth when fewer than two distinct sizes
// were measured for an algorithm.
var ErrTooFewSamples = errors.New("bench: too few samples for a growth fit")

// Algorithm names used in Samples, logs and spans.
const (
	Kruskal = "kruskal"
	Prim    = "prim"
)

// Sample is one (size, elapsed, cost) measurement of one engine.
type Sample struct {
	Size         int           // configured size (file index)
	Vertices     int           // |V| of the loaded graph
	Arcs         int           // stored arcs of the loaded graph (2·|E|)
	Elapsed      time.Duration // engine wall-clock time, load excluded
	Total        int64         // tree cost
	Edges        int           // accepted tree edges
	Discarded    int           // stale or cycle-closing pops
	FrontierPeak int           // largest frontier size
}

// Failure records a size whose graph could not be loaded.
type Failure struct {
	Size int
	Err  error
}

// Report holds the two ordered series, one per algorithm, in the order the
// sizes were run. Kruskal[i] and Prim[i] always describe the same size.
type Report struct {
	Kruskal  []Sample
	Prim     []Sample
	Failures []Failure
}

// Growth holds the fitted exponents b of elapsed ≈ a·size^b.
type Growth struct {
	Kruskal float64
	Prim    float64
}

// Growth fits log(elapsed) = a + b·log(size) by least squares for each
// algorithm and returns the slopes b. An exponent near 1 means linear growth;
// E log E engines on sparse inputs sit slightly above it.
//
// Errors: ErrTooFewSamples when an algorithm has fewer than two distinct sizes.
func (r *Report) Growth() (Growth, error) {
	kb, err := fitExponent(r.Kruskal)
	if err != nil {
		return Growth{}, fmt.Errorf("%s: %w", Kruskal, err)
	}
	pb, err := fitExponent(r.Prim)
	if err != nil {
		return Growth{}, fmt.Errorf("%s: %w", Prim, err)
	}

	return Growth{Kruskal: kb, Prim: pb}, nil
}

// fitExponent runs the log-log regression over samples. Elapsed times are
// floored at one nanosecond so the logarithm stays finite.
func fitExponent(samples []Sample) (float64, error) {
	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	distinct := make(map[int]struct{}, len(samples))
	for _, s := range samples {
		if s.Size <= 0 {
			continue
		}
		elapsed := s.Elapsed
		if elapsed < time.Nanosecond {
			elapsed = time.Nanosecond
		}
		xs = append(xs, math.Log(float64(s.Size)))
		ys = append(ys, math.Log(elapsed.Seconds()))
		distinct[s.Size] = struct{}{}
	}
	if len(distinct) < 2 {
		return 0, fmt.Errorf("%d distinct sizes: %w", len(distinct), ErrTooFewSamples)
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)

	return beta, nil
}
