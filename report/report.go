package report

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/sorting"
)

// ErrEmptyReport is returned when a report with no entries is rendered
// or persisted.
var ErrEmptyReport = errors.New("report: no entries")

// Entry is one algorithm's measurement inside a Report.
type Entry struct {
	Algorithm   string  `yaml:"algorithm"`
	Seconds     float64 `yaml:"seconds"`
	Comparisons int64   `yaml:"comparisons"`
	Swaps       int64   `yaml:"swaps"`
	Moves       int64   `yaml:"moves"`
	Repeats     int     `yaml:"repeats"`
}

// Report is a complete, identified snapshot of one suite run.
type Report struct {
	ID          string    `yaml:"id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	DataKind    string    `yaml:"data_kind"`
	Size        int       `yaml:"size"`
	Strategy    string    `yaml:"strategy"`
	Entries     []Entry   `yaml:"entries"`
}

// New assembles a Report from raw benchmark results, assigning a fresh
// UUID and a UTC timestamp.
func New(strategy sorting.Strategy, results []bench.Result) Report {
	r := Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Strategy:    strategy.String(),
		Entries:     make([]Entry, 0, len(results)),
	}
	if len(results) > 0 {
		r.DataKind = results[0].DataKind
		r.Size = results[0].Size
	}

	for _, res := range results {
		r.Entries = append(r.Entries, Entry{
			Algorithm:   res.Algorithm,
			Seconds:     res.Seconds(),
			Comparisons: res.Comparisons,
			Swaps:       res.Swaps,
			Moves:       res.Moves,
			Repeats:     res.Repeats,
		})
	}

	return r
}

// WriteYAML encodes the report as YAML onto w.
func (r Report) WriteYAML(w io.Writer) error {
	if len(r.Entries) == 0 {
		return ErrEmptyReport
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

// RenderTable writes an aligned console table of the report onto w.
func (r Report) RenderTable(w io.Writer) error {
	if len(r.Entries) == 0 {
		return ErrEmptyReport
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ALGORITHM\tTIME (s)\tCOMPARISONS\tSWAPS\tMOVES\tREPEATS\n")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%s\t%.6f\t%d\t%d\t%d\t%d\n",
			e.Algorithm, e.Seconds, e.Comparisons, e.Swaps, e.Moves, e.Repeats)
	}

	return tw.Flush()
}

// RankByTime returns the entries sorted ascending by measured time.
// The receiver is not modified; ties keep their original order.
func (r Report) RankByTime() []Entry {
	ranked := slices.Clone(r.Entries)
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		switch {
		case a.Seconds < b.Seconds:
			return -1
		case a.Seconds > b.Seconds:
			return 1
		default:
			return 0
		}
	})

	return ranked
}

// RankByComparisons returns the entries sorted ascending by comparison
// count. The receiver is not modified; ties keep their original order.
func (r Report) RankByComparisons() []Entry {
	ranked := slices.Clone(r.Entries)
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		switch {
		case a.Comparisons < b.Comparisons:
			return -1
		case a.Comparisons > b.Comparisons:
			return 1
		default:
			return 0
		}
	})

	return ranked
}
