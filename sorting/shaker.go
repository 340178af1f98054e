package sorting

// Shaker sorts data in place by shaker (cocktail) sort: alternating
// forward and backward bubble passes over a shrinking window.
//
// The optimized rendition stops after a full cycle with no exchange; the
// naive rendition always shakes the window down to nothing. Stable in
// both renditions.
func Shaker[T any](data []T, cmp Comparator[T], opts ...Option) error {
	s, strategy, err := newSorter(data, cmp, opts)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}
	if strategy == Naive {
		s.shakerNaive()
	} else {
		s.shakerOptimized()
	}

	return nil
}

// shakerNaive runs every forward/backward cycle regardless of order.
func (s *sorter[T]) shakerNaive() {
	left, right := 0, len(s.data)-1
	for left < right {
		for i := left; i < right; i++ {
			if s.cmp(s.data[i], s.data[i+1]) > 0 {
				s.swap(i, i+1)
			}
		}
		right--
		for i := right; i > left; i-- {
			if s.cmp(s.data[i], s.data[i-1]) < 0 {
				s.swap(i, i-1)
			}
		}
		left++
	}
}

// shakerOptimized checks the exchange flag after each half-cycle and
// terminates as soon as a pass moves nothing.
func (s *sorter[T]) shakerOptimized() {
	left, right := 0, len(s.data)-1
	swapped := true
	for swapped && left < right {
		swapped = false
		for i := left; i < right; i++ {
			if s.cmp(s.data[i], s.data[i+1]) > 0 {
				s.swap(i, i+1)
				swapped = true
			}
		}
		right--
		if !swapped {
			break
		}

		swapped = false
		for i := right; i > left; i-- {
			if s.cmp(s.data[i], s.data[i-1]) < 0 {
				s.swap(i, i-1)
				swapped = true
			}
		}
		left++
	}
}
