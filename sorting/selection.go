package sorting

// Selection sorts data in place by selection sort.
//
// The optimized rendition skips the exchange when the minimum is already
// at the current index; the naive rendition exchanges unconditionally,
// self-swaps included. Not stable in either rendition.
func Selection[T any](data []T, cmp Comparator[T], opts ...Option) error {
	s, strategy, err := newSorter(data, cmp, opts)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}
	if strategy == Naive {
		s.selectionNaive()
	} else {
		s.selectionOptimized()
	}

	return nil
}

// selectionNaive always performs the exchange, even when min == i.
func (s *sorter[T]) selectionNaive() {
	n := len(s.data)
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if s.cmp(s.data[j], s.data[min]) < 0 {
				min = j
			}
		}
		s.swap(i, min)
	}
}

// selectionOptimized elides the exchange for an already-placed minimum.
func (s *sorter[T]) selectionOptimized() {
	n := len(s.data)
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if s.cmp(s.data[j], s.data[min]) < 0 {
				min = j
			}
		}
		if min != i {
			s.swap(i, min)
		}
	}
}
