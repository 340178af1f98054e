package bench_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/sorting"
)

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func randomInts(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(n * 10)
	}

	return out
}

// Small inputs run the maximal repeat count and still report a
// non-zero, floored duration.
func TestRunAll_AdaptiveRepeats(t *testing.T) {
	data := randomInts(50, 1)

	results, err := bench.RunAll(data, compareInts, "random", bench.DefaultOptions[int]())
	require.NoError(t, err)
	require.Len(t, results, sorting.SuiteSize)

	for _, r := range results {
		require.Equal(t, 10, r.Repeats, r.Algorithm)
		require.Equal(t, 50, r.Size)
		require.Equal(t, "random", r.DataKind)
		require.Positive(t, int64(r.Duration), r.Algorithm)
		require.Positive(t, r.Comparisons, r.Algorithm)
	}
}

func TestRunAll_RepeatTiers(t *testing.T) {
	for _, tc := range []struct {
		n       int
		repeats int
	}{
		{n: 99, repeats: 10},
		{n: 100, repeats: 5},
		{n: 999, repeats: 5},
		{n: 1000, repeats: 3},
	} {
		results, err := bench.RunAll(randomInts(tc.n, 2), compareInts, "random", bench.DefaultOptions[int]())
		require.NoError(t, err)
		for _, r := range results {
			require.Equal(t, tc.repeats, r.Repeats, "n=%d %s", tc.n, r.Algorithm)
		}
	}
}

// RunAll works on private clones; the caller's slice must survive a
// full suite run untouched.
func TestRunAll_CallerSliceUnmutated(t *testing.T) {
	data := randomInts(64, 3)
	snapshot := slices.Clone(data)

	_, err := bench.RunAll(data, compareInts, "random", bench.DefaultOptions[int]())
	require.NoError(t, err)
	require.Equal(t, snapshot, data)
}

func TestRunAll_PersistCallback(t *testing.T) {
	data := randomInts(40, 4)
	want := slices.Clone(data)
	slices.Sort(want)

	opts := bench.DefaultOptions[int]()
	var seen []string
	opts.Persist = func(algorithm string, sorted []int) error {
		seen = append(seen, algorithm)
		require.Equal(t, want, sorted, algorithm)
		return nil
	}

	_, err := bench.RunAll(data, compareInts, "random", opts)
	require.NoError(t, err)
	require.Len(t, seen, sorting.SuiteSize)

	names := make([]string, 0, sorting.SuiteSize)
	for _, d := range sorting.Suite[int]() {
		names = append(names, d.Name)
	}
	require.Equal(t, names, seen)
}

func TestRunAll_PersistErrorAborts(t *testing.T) {
	boom := errors.New("disk full")
	opts := bench.DefaultOptions[int]()
	opts.Persist = func(string, []int) error { return boom }

	_, err := bench.RunAll(randomInts(20, 5), compareInts, "random", opts)
	require.ErrorIs(t, err, boom)
}

// Both renditions of the suite produce identical sorted outputs for the
// same dataset; only their counters differ.
func TestRunAll_StrategiesAgree(t *testing.T) {
	data := randomInts(80, 6)
	want := slices.Clone(data)
	slices.Sort(want)

	for _, strategy := range []sorting.Strategy{sorting.Optimized, sorting.Naive} {
		opts := bench.Options[int]{Strategy: strategy}
		opts.Persist = func(algorithm string, sorted []int) error {
			require.Equal(t, want, sorted, "%s/%s", algorithm, strategy)
			return nil
		}

		_, err := bench.RunAll(data, compareInts, "random", opts)
		require.NoError(t, err)
	}
}

func TestRunAll_NilComparator(t *testing.T) {
	_, err := bench.RunAll([]int{3, 1, 2}, nil, "random", bench.DefaultOptions[int]())
	require.ErrorIs(t, err, sorting.ErrNilComparator)
}

func TestMeasure(t *testing.T) {
	data := randomInts(30, 7)
	want := slices.Clone(data)
	slices.Sort(want)

	d, err := bench.Measure(data, compareInts, sorting.Insertion[int], bench.DefaultOptions[int]())
	require.NoError(t, err)
	require.Positive(t, int64(d))
	require.Equal(t, want, data)
}

func TestMeasure_Errors(t *testing.T) {
	_, err := bench.Measure([]int{1}, compareInts, nil, bench.DefaultOptions[int]())
	require.ErrorIs(t, err, bench.ErrNilSortFunc)

	_, err = bench.Measure([]int{1}, nil, sorting.Bubble[int], bench.DefaultOptions[int]())
	require.ErrorIs(t, err, sorting.ErrNilComparator)
}

func TestMeasureRange(t *testing.T) {
	data := randomInts(30, 8)
	want := slices.Clone(data)
	slices.Sort(want)

	d, err := bench.MeasureRange(data, 0, len(data)-1, compareInts, sorting.QuickRange[int], bench.DefaultOptions[int]())
	require.NoError(t, err)
	require.Positive(t, int64(d))
	require.Equal(t, want, data)
}

func TestMeasureRange_Errors(t *testing.T) {
	_, err := bench.MeasureRange([]int{1}, 0, 0, compareInts, nil, bench.DefaultOptions[int]())
	require.ErrorIs(t, err, bench.ErrNilSortFunc)

	_, err = bench.MeasureRange([]int{2, 1}, -1, 5, compareInts, sorting.QuickRange[int], bench.DefaultOptions[int]())
	require.ErrorIs(t, err, sorting.ErrRangeBounds)
}

func TestResult_Seconds(t *testing.T) {
	r := bench.Result{Duration: 1500 * 1000 * 1000}
	require.InDelta(t, 1.5, r.Seconds(), 1e-9)
}
