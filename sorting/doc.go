// Package sorting provides seven classic comparison sorts over generic
// slices, each in two renditions, with exact operation accounting.
//
// What
//
//   - Insertion, Bubble, Selection, Shaker (cocktail), Shell, Quick and Heap
//     sort over any element type []T with a caller-supplied three-way
//     Comparator[T].
//   - Every algorithm ships in two renditions selected per call:
//   - Naive     — the instructional formulation, no shortcuts
//   - Optimized — early exits, move-based shifting, median-of-three pivots
//   - A Metrics object (supplied via WithMetrics) receives exact counts of
//     comparisons, swaps and element moves; one swap accounts for three moves.
//   - Suite returns the seven immutable algorithm Descriptors with a uniform
//     call signature; the range-arity Quick entry is adapted internally.
//
// Why
//
//   - Operation counts, not wall-clock alone, expose what differentiates the
//     renditions: optimized Insertion shifts by moves where naive swaps,
//     optimized Bubble/Shaker stop after an exchange-free pass, optimized
//     Quick dodges the sorted-input worst case via median-of-three.
//   - Passing Metrics explicitly keeps the package free of global state, so
//     independent measurements never observe each other's counters.
//
// Counting discipline
//
//	swap        = +1 swap, +3 moves (out, in, out)
//	shift/copy  = +1 move per element relocation
//	comparison  = +1, always through the internal counting wrapper
//
// Complexity (n = len(data))
//
//   - Insertion/Bubble/Selection/Shaker: O(n²) average, O(1) scratch
//   - Shell (halving gaps): O(n^1.25) average observed
//   - Quick (Lomuto): O(n log n) average, stack depth O(log n)
//   - Heap: O(n log n) in every case
//
// Usage
//
//	m := sorting.NewMetrics()
//	err := sorting.Quick(data, cmp,
//	    sorting.WithStrategy(sorting.Naive),
//	    sorting.WithMetrics(m),
//	)
//	if err != nil {
//	    // handle ErrNilComparator or ErrOptionViolation
//	}
//	fmt.Println(m.Comparisons, m.Swaps, m.Moves)
//
// All sorts operate strictly in place and are single-threaded; a Metrics
// value must not be shared by concurrent sort calls.
package sorting
