package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/sortlab/sorting"
)

// ExampleQuick sorts a slice of ints with the default optimized strategy
// and inspects the operation counts.
func ExampleQuick() {
	data := []int{5, 2, 9, 1, 7}
	m := sorting.NewMetrics()

	if err := sorting.Quick(data, func(a, b int) int { return a - b },
		sorting.WithMetrics(m)); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(data)
	fmt.Println("comparisons >", m.Comparisons > 0)
	// Output:
	// [1 2 5 7 9]
	// comparisons > true
}

// ExampleInsertion_naive demonstrates the naive rendition, whose shifting
// is visible in the swap counter.
func ExampleInsertion_naive() {
	data := []int{3, 2, 1}
	m := sorting.NewMetrics()

	_ = sorting.Insertion(data, func(a, b int) int { return a - b },
		sorting.WithStrategy(sorting.Naive),
		sorting.WithMetrics(m),
	)

	fmt.Println(data)
	fmt.Printf("swaps=%d moves=%d\n", m.Swaps, m.Moves)
	// Output:
	// [1 2 3]
	// swaps=3 moves=9
}

// ExampleSuite walks the seven descriptors.
func ExampleSuite() {
	for _, d := range sorting.Suite[string]() {
		fmt.Printf("%-14s stable=%v\n", d.Name, d.Stable)
	}
	// Output:
	// Insertion Sort stable=true
	// Bubble Sort    stable=true
	// Selection Sort stable=false
	// Shaker Sort    stable=true
	// Shell Sort     stable=false
	// Quick Sort     stable=false
	// Heap Sort      stable=false
}
