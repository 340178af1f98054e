package bench

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sortlab/sorting"
)

// RunAll measures every algorithm in the canonical suite against a
// private clone of data and returns one Result per algorithm, in suite
// order. kind labels the dataset shape in each Result (e.g. "random",
// "sorted"). The caller's slice is never mutated.
//
// When opts.Persist is non-nil it is invoked once per algorithm with
// the sorted outcome, after its measurement completes. A persist error
// aborts the run.
func RunAll[T any](data []T, cmp sorting.Comparator[T], kind string, opts Options[T]) ([]Result, error) {
	if cmp == nil {
		return nil, sorting.ErrNilComparator
	}

	suite := sorting.Suite[T]()
	results := make([]Result, 0, len(suite))
	for _, d := range suite {
		work := slices.Clone(data)
		m := sorting.NewMetrics()
		sortOnce := func() error {
			return d.Sort(work, cmp, sorting.WithStrategy(opts.Strategy), sorting.WithMetrics(m))
		}

		dur, avg, repeats, err := measure(work, m, sortOnce)
		if err != nil {
			return nil, fmt.Errorf("bench: %s: %w", d.Name, err)
		}

		if opts.Persist != nil {
			if err := opts.Persist(d.Name, work); err != nil {
				return nil, fmt.Errorf("bench: persist %s: %w", d.Name, err)
			}
		}

		results = append(results, Result{
			Algorithm:   d.Name,
			Duration:    dur,
			Size:        len(data),
			DataKind:    kind,
			Comparisons: avg.Comparisons,
			Swaps:       avg.Swaps,
			Moves:       avg.Moves,
			Repeats:     repeats,
		})
	}

	return results, nil
}
