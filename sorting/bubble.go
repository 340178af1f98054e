package sorting

// Bubble sorts data in place by bubble sort.
//
// The optimized rendition stops as soon as a full pass performs no
// exchange; the naive rendition always runs every pass regardless of the
// existing order. Stable in both renditions.
func Bubble[T any](data []T, cmp Comparator[T], opts ...Option) error {
	s, strategy, err := newSorter(data, cmp, opts)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}
	if strategy == Naive {
		s.bubbleNaive()
	} else {
		s.bubbleOptimized()
	}

	return nil
}

// bubbleNaive runs the full nested iteration unconditionally.
func (s *sorter[T]) bubbleNaive() {
	n := len(s.data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if s.cmp(s.data[j], s.data[j+1]) > 0 {
				s.swap(j, j+1)
			}
		}
	}
}

// bubbleOptimized terminates after the first exchange-free pass.
func (s *sorter[T]) bubbleOptimized() {
	n := len(s.data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if s.cmp(s.data[j], s.data[j+1]) > 0 {
				s.swap(j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}
