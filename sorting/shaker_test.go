package sorting_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/sorting"
)

// TestShaker_BothRenditions sorts an input whose minimum starts at the
// far end, the shape cocktail passes exist for.
func TestShaker_BothRenditions(t *testing.T) {
	input := []int{3, 4, 2, 1}
	for _, strategy := range []sorting.Strategy{sorting.Optimized, sorting.Naive} {
		data := slices.Clone(input)
		require.NoError(t, sorting.Shaker(data, compareInts, sorting.WithStrategy(strategy)))
		require.Equal(t, []int{1, 2, 3, 4}, data, "strategy %s", strategy)
	}
}

// TestShaker_EarlyExit: on nearly-sorted input the optimized rendition
// compares less than the naive one, with identical output.
func TestShaker_EarlyExit(t *testing.T) {
	input := []int{2, 1, 3, 4, 5, 6, 7, 8}

	naive := sorting.NewMetrics()
	dataN := slices.Clone(input)
	require.NoError(t, sorting.Shaker(dataN, compareInts,
		sorting.WithStrategy(sorting.Naive), sorting.WithMetrics(naive)))

	opt := sorting.NewMetrics()
	dataO := slices.Clone(input)
	require.NoError(t, sorting.Shaker(dataO, compareInts, sorting.WithMetrics(opt)))

	require.Equal(t, dataN, dataO)
	require.True(t, slices.IsSorted(dataO))
	require.Less(t, opt.Comparisons, naive.Comparisons)
	require.Equal(t, naive.Swaps, opt.Swaps)
}

// TestShaker_Stability checks relative order of equal keys survives the
// bidirectional passes.
func TestShaker_Stability(t *testing.T) {
	type pair struct{ key, seq int }
	byKey := func(a, b pair) int { return compareInts(a.key, b.key) }

	input := []pair{{3, 0}, {1, 1}, {3, 2}, {2, 3}, {1, 4}}
	for _, strategy := range []sorting.Strategy{sorting.Optimized, sorting.Naive} {
		data := slices.Clone(input)
		require.NoError(t, sorting.Shaker(data, byKey, sorting.WithStrategy(strategy)))
		require.Equal(t, []pair{{1, 1}, {1, 4}, {2, 3}, {3, 0}, {3, 2}}, data, "strategy %s", strategy)
	}
}
