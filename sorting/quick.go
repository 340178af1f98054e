package sorting

import "fmt"

// Quick sorts data in place by quicksort over the whole slice.
// See QuickRange for the range-arity entry point.
func Quick[T any](data []T, cmp Comparator[T], opts ...Option) error {
	return QuickRange(data, 0, len(data)-1, cmp, opts...)
}

// QuickRange sorts data[low..high] (inclusive) in place by quicksort with
// Lomuto partitioning around the last element of the active range.
//
// The optimized rendition additionally applies median-of-three pivot
// selection on ranges of at least three elements, which defuses the
// quadratic blow-up on sorted and reverse-sorted input. Both renditions
// recurse only into the smaller partition and loop on the larger one, so
// stack depth stays logarithmic even on adversarial input. Not stable.
//
// Returns ErrRangeBounds when [low, high] escapes the slice; an inverted
// range (low >= high) is a trivial no-op.
func QuickRange[T any](data []T, low, high int, cmp Comparator[T], opts ...Option) error {
	s, strategy, err := newSorter(data, cmp, opts)
	if err != nil {
		return err
	}
	if low >= high {
		return nil
	}
	if low < 0 || high >= len(data) {
		return fmt.Errorf("%w: [%d, %d] outside [0, %d)", ErrRangeBounds, low, high, len(data))
	}
	if strategy == Naive {
		s.quickNaive(low, high)
	} else {
		s.quickOptimized(low, high)
	}

	return nil
}

// quickNaive partitions around the raw last element of every range.
func (s *sorter[T]) quickNaive(low, high int) {
	for low < high {
		p := s.partition(low, high)
		// recurse into the smaller side, iterate on the larger
		if p-low < high-p {
			s.quickNaive(low, p-1)
			low = p + 1
		} else {
			s.quickNaive(p+1, high)
			high = p - 1
		}
	}
}

// quickOptimized orders first/middle/last before each partition when the
// range spans at least three elements.
func (s *sorter[T]) quickOptimized(low, high int) {
	for low < high {
		if high-low >= 2 {
			s.medianOfThree(low, high)
		}
		p := s.partition(low, high)
		if p-low < high-p {
			s.quickOptimized(low, p-1)
			low = p + 1
		} else {
			s.quickOptimized(p+1, high)
			high = p - 1
		}
	}
}

// medianOfThree orders data[low], data[mid], data[high] with counted
// comparisons and swaps, then parks the median in the second-to-last slot
// of the range ahead of partitioning. On a 3-element range the median
// already sits there, so the parking exchange is skipped to keep it out
// of the counters.
func (s *sorter[T]) medianOfThree(low, high int) {
	mid := low + (high-low)/2
	if s.cmp(s.data[mid], s.data[low]) < 0 {
		s.swap(low, mid)
	}
	if s.cmp(s.data[high], s.data[low]) < 0 {
		s.swap(low, high)
	}
	if s.cmp(s.data[high], s.data[mid]) < 0 {
		s.swap(mid, high)
	}
	if mid != high-1 {
		s.swap(mid, high-1)
	}
}

// partition applies the Lomuto scheme: pivot is the last element of the
// range, elements below it are exchanged into the left block, and the
// pivot lands at the returned index.
func (s *sorter[T]) partition(low, high int) int {
	pivot := s.data[high]
	i := low - 1
	for j := low; j < high; j++ {
		if s.cmp(s.data[j], pivot) < 0 {
			i++
			s.swap(i, j)
		}
	}
	s.swap(i+1, high)

	return i + 1
}
