package sorting

// sorter bundles the per-call mutable state shared by every algorithm:
// the slice under permutation, the counting comparator, and the metrics
// sink. All comparisons must go through s.cmp; a direct call to the raw
// comparator would silently under-count.
type sorter[T any] struct {
	data []T
	cmp  Comparator[T]
	m    *Metrics
}

// newSorter validates the invocation, resolves options, and wraps the raw
// comparator in the counting layer.
func newSorter[T any](data []T, cmp Comparator[T], opts []Option) (*sorter[T], Strategy, error) {
	if cmp == nil {
		return nil, Optimized, ErrNilComparator
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, Optimized, o.err
	}

	m := o.Metrics
	if m == nil {
		m = NewMetrics()
	}
	s := &sorter[T]{data: data, m: m}
	s.cmp = func(a, b T) int {
		m.Comparisons++

		return cmp(a, b)
	}

	return s, o.Strategy, nil
}

// swap exchanges elements i and j: one logical exchange, three raw writes.
func (s *sorter[T]) swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
	s.m.Swaps++
	s.m.Moves += 3
}

// take copies element i into a scratch key, counting one move.
func (s *sorter[T]) take(i int) T {
	s.m.Moves++

	return s.data[i]
}

// put writes the scratch key v into slot i, counting one move.
func (s *sorter[T]) put(i int, v T) {
	s.m.Moves++
	s.data[i] = v
}

// shift relocates element from into slot to, counting one move.
func (s *sorter[T]) shift(to, from int) {
	s.m.Moves++
	s.data[to] = s.data[from]
}
