package sorting_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/sorting"
)

// TestSuite_Descriptors pins the catalogue: seven entries, canonical
// order, and the textbook stability claims.
func TestSuite_Descriptors(t *testing.T) {
	suite := sorting.Suite[int]()
	require.Len(t, suite, sorting.SuiteSize)

	wantNames := []string{
		"Insertion Sort", "Bubble Sort", "Selection Sort", "Shaker Sort",
		"Shell Sort", "Quick Sort", "Heap Sort",
	}
	wantStable := []bool{true, true, false, true, false, false, false}

	for i, d := range suite {
		require.Equal(t, wantNames[i], d.Name)
		require.Equal(t, wantStable[i], d.Stable, d.Name)
		require.NotEmpty(t, d.Best, d.Name)
		require.NotEmpty(t, d.Average, d.Name)
		require.NotEmpty(t, d.Worst, d.Name)
		require.NotNil(t, d.Sort, d.Name)
	}
}

// TestSuite_QuickAdapter verifies that the uniform Quick entry really
// drives the range-arity implementation over the whole slice.
func TestSuite_QuickAdapter(t *testing.T) {
	var quick sorting.Descriptor[int]
	for _, d := range sorting.Suite[int]() {
		if d.Name == "Quick Sort" {
			quick = d
		}
	}
	require.NotNil(t, quick.Sort)

	data := []int{5, 3, 8, 1, 9, 2}
	m := sorting.NewMetrics()
	require.NoError(t, quick.Sort(data, compareInts, sorting.WithMetrics(m)))
	require.True(t, slices.IsSorted(data))
	require.Positive(t, m.Comparisons)

	// degenerate slices pass through the adapter untouched
	require.NoError(t, quick.Sort(nil, compareInts))
	require.NoError(t, quick.Sort([]int{1}, compareInts))
}
