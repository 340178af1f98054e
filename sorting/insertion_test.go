package sorting_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/sorting"
)

// TestInsertion_OperationProfiles pins the rendition distinction: the
// naive variant reports its shifting as swaps, the optimized variant as
// moves. Counts for [3,2,1] are fully deterministic.
func TestInsertion_OperationProfiles(t *testing.T) {
	naive := sorting.NewMetrics()
	dataN := []int{3, 2, 1}
	require.NoError(t, sorting.Insertion(dataN, compareInts,
		sorting.WithStrategy(sorting.Naive), sorting.WithMetrics(naive)))
	require.Equal(t, []int{1, 2, 3}, dataN)
	require.EqualValues(t, 3, naive.Swaps, "naive shifts are swaps")
	require.EqualValues(t, 9, naive.Moves, "three moves per swap")
	require.EqualValues(t, 3, naive.Comparisons)

	opt := sorting.NewMetrics()
	dataO := []int{3, 2, 1}
	require.NoError(t, sorting.Insertion(dataO, compareInts, sorting.WithMetrics(opt)))
	require.Equal(t, []int{1, 2, 3}, dataO)
	require.EqualValues(t, 0, opt.Swaps, "optimized shifts bypass the swap counter")
	require.EqualValues(t, 7, opt.Moves, "key save + shifts + key insert")
	require.EqualValues(t, 3, opt.Comparisons)
}

// TestInsertion_Stability checks that equal keys keep their input order in
// both renditions.
func TestInsertion_Stability(t *testing.T) {
	type pair struct{ key, seq int }
	byKey := func(a, b pair) int { return compareInts(a.key, b.key) }

	input := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {2, 4}}
	for _, strategy := range []sorting.Strategy{sorting.Optimized, sorting.Naive} {
		data := slices.Clone(input)
		require.NoError(t, sorting.Insertion(data, byKey, sorting.WithStrategy(strategy)))
		require.Equal(t, []pair{{1, 1}, {1, 3}, {2, 0}, {2, 2}, {2, 4}}, data, "strategy %s", strategy)
	}
}
