package sorting

// SuiteSize is the number of algorithms in the suite.
const SuiteSize = 7

// Suite returns the seven algorithm descriptors in canonical order.
// Every descriptor exposes the same uniform Sort signature; the
// range-arity Quick entry is wrapped by an adapter over QuickRange.
// The slice is freshly allocated per call, but the descriptors themselves
// are fixed: callers must treat them as read-only.
func Suite[T any]() []Descriptor[T] {
	return []Descriptor[T]{
		{
			Name: "Insertion Sort",
			Best: "O(n)", Average: "O(n²)", Worst: "O(n²)",
			Stable: true,
			Sort:   Insertion[T],
		},
		{
			Name: "Bubble Sort",
			Best: "O(n)", Average: "O(n²)", Worst: "O(n²)",
			Stable: true,
			Sort:   Bubble[T],
		},
		{
			Name: "Selection Sort",
			Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)",
			Stable: false,
			Sort:   Selection[T],
		},
		{
			Name: "Shaker Sort",
			Best: "O(n)", Average: "O(n²)", Worst: "O(n²)",
			Stable: true,
			Sort:   Shaker[T],
		},
		{
			Name: "Shell Sort",
			Best: "O(n log n)", Average: "O(n^1.25)", Worst: "O(n²)",
			Stable: false,
			Sort:   Shell[T],
		},
		{
			Name: "Quick Sort",
			Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)",
			Stable: false,
			Sort: func(data []T, cmp Comparator[T], opts ...Option) error {
				return QuickRange(data, 0, len(data)-1, cmp, opts...)
			},
		},
		{
			Name: "Heap Sort",
			Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)",
			Stable: false,
			Sort:   Heap[T],
		},
	}
}
