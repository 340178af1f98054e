package sorting

// Insertion sorts data in place by insertion sort.
//
// The naive rendition shifts misplaced elements with explicit adjacent
// swaps, so its work shows up in the swap counter. The optimized rendition
// saves the key once and shifts by direct element moves, so the same work
// shows up in the move counter instead. Stable in both renditions.
func Insertion[T any](data []T, cmp Comparator[T], opts ...Option) error {
	s, strategy, err := newSorter(data, cmp, opts)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}
	if strategy == Naive {
		s.insertionNaive()
	} else {
		s.insertionOptimized()
	}

	return nil
}

// insertionNaive sinks each element leftward one adjacent swap at a time.
func (s *sorter[T]) insertionNaive() {
	n := len(s.data)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && s.cmp(s.data[j-1], s.data[j]) > 0; j-- {
			s.swap(j-1, j)
		}
	}
}

// insertionOptimized saves the key once, shifts the sorted prefix right by
// single moves, and drops the key into the gap.
func (s *sorter[T]) insertionOptimized() {
	n := len(s.data)
	for i := 1; i < n; i++ {
		key := s.take(i)
		j := i - 1
		for j >= 0 && s.cmp(s.data[j], key) > 0 {
			s.shift(j+1, j)
			j--
		}
		s.put(j+1, key)
	}
}
