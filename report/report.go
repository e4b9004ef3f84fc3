package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/bench"
)

// Point is one (size, elapsed) pair of a runtime curve.
type Point struct {
	Size    int           `yaml:"size"`
	Elapsed time.Duration `yaml:"-"`
	Seconds float64       `yaml:"seconds"`
	Total   int64         `yaml:"total"`
}

// Series is the runtime curve of one algorithm, ordered as the sizes ran.
type Series struct {
	Algorithm string  `yaml:"algorithm"`
	Points    []Point `yaml:"points"`
}

// Document is the YAML layout written by WriteYAML.
type Document struct {
	Series   []Series           `yaml:"series"`
	Growth   map[string]float64 `yaml:"growth,omitempty"`
	Failures []FailureEntry     `yaml:"failures,omitempty"`
}

// FailureEntry is a size that could not be loaded.
type FailureEntry struct {
	Size  int    `yaml:"size"`
	Error string `yaml:"error"`
}

// SeriesOf returns the Kruskal and Prim curves of r, in that order.
func SeriesOf(r *bench.Report) []Series {
	return []Series{
		toSeries(bench.Kruskal, r.Kruskal),
		toSeries(bench.Prim, r.Prim),
	}
}

func toSeries(algorithm string, samples []bench.Sample) Series {
	s := Series{Algorithm: algorithm, Points: make([]Point, 0, len(samples))}
	for _, x := range samples {
		s.Points = append(s.Points, Point{
			Size:    x.Size,
			Elapsed: x.Elapsed,
			Seconds: x.Elapsed.Seconds(),
			Total:   x.Total,
		})
	}

	return s
}

// NewDocument assembles the YAML document. Growth exponents are included
// only when the report has enough samples for a fit.
func NewDocument(r *bench.Report) Document {
	doc := Document{Series: SeriesOf(r)}
	if g, err := r.Growth(); err == nil {
		doc.Growth = map[string]float64{bench.Kruskal: g.Kruskal, bench.Prim: g.Prim}
	}
	for _, f := range r.Failures {
		doc.Failures = append(doc.Failures, FailureEntry{Size: f.Size, Error: f.Err.Error()})
	}

	return doc
}

// WriteYAML writes NewDocument(r) to w.
func WriteYAML(w io.Writer, r *bench.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(r)); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return nil
}

// WriteTable prints one row per measured size with both timings side by
// side, followed by one line per failed size.
func WriteTable(w io.Writer, r *bench.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "SIZE\tVERTICES\tEDGES\tKRUSKAL\tPRIM\tTOTAL\t")
	for i := range r.Kruskal {
		k := r.Kruskal[i]
		var p bench.Sample
		if i < len(r.Prim) {
			p = r.Prim[i]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			humanize.Comma(int64(k.Size)),
			humanize.Comma(int64(k.Vertices)),
			humanize.Comma(int64(k.Arcs/2)),
			k.Elapsed.Round(time.Microsecond),
			p.Elapsed.Round(time.Microsecond),
			humanize.Comma(k.Total),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: write table: %w", err)
	}
	for _, f := range r.Failures {
		if _, err := fmt.Fprintf(w, "size %s failed: %v\n", humanize.Comma(int64(f.Size)), f.Err); err != nil {
			return fmt.Errorf("report: write table: %w", err)
		}
	}

	return nil
}
