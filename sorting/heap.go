package sorting

// Heap sorts data in place by heapsort over a max-heap; the comparator's
// positive ("greater than") result decides child dominance.
//
// The optimized rendition builds the heap bottom-up in O(n) by heapifying
// from n/2-1 down to the root; the naive rendition builds it by repeated
// sift-up insertions in O(n log n). Both then swap the root into the
// shrinking tail and re-heapify. Not stable in either rendition.
func Heap[T any](data []T, cmp Comparator[T], opts ...Option) error {
	s, strategy, err := newSorter(data, cmp, opts)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}
	if strategy == Naive {
		s.heapNaive()
	} else {
		s.heapOptimized()
	}

	return nil
}

// heapOptimized: bottom-up construction, then extraction.
func (s *sorter[T]) heapOptimized() {
	n := len(s.data)
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(i, n)
	}
	s.extract(n)
}

// heapNaive: grow the heap one element at a time by sift-up, then the
// same extraction phase.
func (s *sorter[T]) heapNaive() {
	n := len(s.data)
	for i := 1; i < n; i++ {
		s.siftUp(i)
	}
	s.extract(n)
}

// extract repeatedly swaps the root into the shrinking tail and restores
// the heap over the remaining prefix.
func (s *sorter[T]) extract(n int) {
	for i := n - 1; i >= 1; i-- {
		s.swap(0, i)
		s.siftDown(0, i)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i
// within data[:n].
func (s *sorter[T]) siftDown(i, n int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && s.cmp(s.data[left], s.data[largest]) > 0 {
			largest = left
		}
		if right < n && s.cmp(s.data[right], s.data[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		s.swap(i, largest)
		i = largest
	}
}

// siftUp floats element i toward the root while it dominates its parent.
func (s *sorter[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if s.cmp(s.data[i], s.data[parent]) <= 0 {
			return
		}
		s.swap(parent, i)
		i = parent
	}
}
