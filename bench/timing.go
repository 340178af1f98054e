package bench

import (
	"slices"
	"time"

	"github.com/katalvlaran/sortlab/sorting"
)

// minDuration floors every reported measurement; coarse host clocks can
// otherwise yield a zero delta for very fast runs.
const minDuration = time.Microsecond

// repeatsFor returns the adaptive repeat count for a dataset of n
// elements: small, fast inputs are averaged over many repeats to beat
// clock-resolution noise.
func repeatsFor(n int) int {
	switch {
	case n < 100:
		return 10
	case n < 1000:
		return 5
	case n < 10000:
		return 3
	default:
		return 1
	}
}

// floorDuration clamps d to the minimum reportable duration.
func floorDuration(d time.Duration) time.Duration {
	if d < minDuration {
		return minDuration
	}

	return d
}

// measure runs fn under the adaptive protocol: repeats chosen from
// len(data), data restored from a private backup before every repeat,
// metrics reset before and read after each run. It returns the averaged
// duration (floored), the per-repeat averaged metrics, and the repeat
// count used. After return, data holds the result of the last repeat.
func measure[T any](data []T, m *sorting.Metrics, fn func() error) (time.Duration, sorting.Metrics, int, error) {
	repeats := repeatsFor(len(data))
	if repeats == 1 {
		m.Reset()
		start := time.Now()
		if err := fn(); err != nil {
			return 0, sorting.Metrics{}, 0, err
		}

		return floorDuration(time.Since(start)), *m, 1, nil
	}

	backup := slices.Clone(data)
	var total time.Duration
	var acc sorting.Metrics
	for r := 0; r < repeats; r++ {
		copy(data, backup)
		m.Reset()
		start := time.Now()
		if err := fn(); err != nil {
			return 0, sorting.Metrics{}, 0, err
		}
		total += time.Since(start)
		acc.Add(*m)
	}

	n := int64(repeats)
	avg := sorting.Metrics{
		Comparisons: acc.Comparisons / n,
		Swaps:       acc.Swaps / n,
		Moves:       acc.Moves / n,
	}

	return floorDuration(total / time.Duration(repeats)), avg, repeats, nil
}

// Measure times one uniform-arity algorithm invocation over data under
// the adaptive protocol and returns the averaged duration. The slice is
// left sorted (the outcome of the final repeat).
func Measure[T any](data []T, cmp sorting.Comparator[T], sort SortFunc[T], opts Options[T]) (time.Duration, error) {
	if sort == nil {
		return 0, ErrNilSortFunc
	}
	if cmp == nil {
		return 0, sorting.ErrNilComparator
	}

	m := sorting.NewMetrics()
	d, _, _, err := measure(data, m, func() error {
		return sort(data, cmp, sorting.WithStrategy(opts.Strategy), sorting.WithMetrics(m))
	})

	return d, err
}

// MeasureRange is the range-arity twin of Measure, duplicating the same
// adaptive/backup/averaging protocol for quicksort-style signatures.
func MeasureRange[T any](data []T, low, high int, cmp sorting.Comparator[T], sort RangeFunc[T], opts Options[T]) (time.Duration, error) {
	if sort == nil {
		return 0, ErrNilSortFunc
	}
	if cmp == nil {
		return 0, sorting.ErrNilComparator
	}

	m := sorting.NewMetrics()
	d, _, _, err := measure(data, m, func() error {
		return sort(data, low, high, cmp, sorting.WithStrategy(opts.Strategy), sorting.WithMetrics(m))
	})

	return d, err
}
