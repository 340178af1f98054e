package sorting

// Shell sorts data in place by shellsort with the halving gap sequence
// n/2, n/4, …, 1, shared by both renditions.
//
// The optimized rendition shifts gapped elements by direct moves around a
// saved key; the naive rendition shifts by gapped swaps, so every shift
// lands in the swap counter as well. Not stable in either rendition.
func Shell[T any](data []T, cmp Comparator[T], opts ...Option) error {
	s, strategy, err := newSorter(data, cmp, opts)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}
	if strategy == Naive {
		s.shellNaive()
	} else {
		s.shellOptimized()
	}

	return nil
}

// shellNaive performs gapped insertion with explicit swaps.
func (s *sorter[T]) shellNaive() {
	n := len(s.data)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			for j := i; j >= gap && s.cmp(s.data[j-gap], s.data[j]) > 0; j -= gap {
				s.swap(j-gap, j)
			}
		}
	}
}

// shellOptimized performs gapped insertion with key save, gapped shifts
// and a final insert, all counted as moves.
func (s *sorter[T]) shellOptimized() {
	n := len(s.data)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			key := s.take(i)
			j := i
			for ; j >= gap && s.cmp(s.data[j-gap], key) > 0; j -= gap {
				s.shift(j, j-gap)
			}
			s.put(j, key)
		}
	}
}
