// Package sorting defines comparators, metrics, strategies and options
// shared by the seven sorting algorithms.
package sorting

import (
	"errors"
	"fmt"
)

// Sentinel errors for sort invocation.
var (
	// ErrNilComparator is returned when no comparator is supplied.
	ErrNilComparator = errors.New("sorting: comparator is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")

	// ErrRangeBounds is returned by QuickRange when [low, high] escapes the slice.
	ErrRangeBounds = errors.New("sorting: range out of bounds")
)

// Comparator expresses a total order over T:
// negative for a < b, zero for a == b, positive for a > b.
type Comparator[T any] func(a, b T) int

// Strategy selects which rendition of an algorithm runs.
type Strategy int

const (
	// Optimized is the performance-oriented rendition (the default).
	Optimized Strategy = iota

	// Naive is the instructional rendition, free of shortcuts.
	Naive
)

// String returns the human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case Optimized:
		return "optimized"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Metrics accumulates operation counts across one or more sort calls.
// Reset it between measurements; never share it across concurrent sorts.
type Metrics struct {
	// Comparisons counts element-to-element comparisons.
	Comparisons int64

	// Swaps counts high-level element exchanges.
	Swaps int64

	// Moves counts raw element relocations; one swap contributes three.
	Moves int64
}

// NewMetrics returns a zeroed Metrics ready to hand to WithMetrics.
func NewMetrics() *Metrics { return &Metrics{} }

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	m.Comparisons, m.Swaps, m.Moves = 0, 0, 0
}

// Add accumulates the counts of o into m.
func (m *Metrics) Add(o Metrics) {
	m.Comparisons += o.Comparisons
	m.Swaps += o.Swaps
	m.Moves += o.Moves
}

// Option configures a sort invocation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the sort is invoked.
type Option func(*Options)

// Options holds per-call sort configuration.
type Options struct {
	// Strategy picks the rendition; Optimized unless overridden.
	Strategy Strategy

	// Metrics, when non-nil, receives the operation counts of this call.
	// Counters are incremented, not reset; reset belongs to the caller.
	Metrics *Metrics

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the optimized strategy and no
// externally visible metrics.
func DefaultOptions() Options {
	return Options{Strategy: Optimized, Metrics: nil, err: nil}
}

// WithStrategy selects the naive or optimized rendition for this call.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Optimized, Naive:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy (%d)", ErrOptionViolation, int(s))
		}
	}
}

// WithMetrics directs operation counts into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// Descriptor identifies one sortable strategy of the suite: display name,
// complexity-class labels, the theoretical stability claim, and a uniform
// Sort entry point. Treat descriptors as read-only.
type Descriptor[T any] struct {
	// Name is the display name, e.g. "Quick Sort".
	Name string

	// Best, Average and Worst are opaque complexity-class labels.
	Best    string
	Average string
	Worst   string

	// Stable is the theoretical stability claim; see package stability
	// for the empirical check.
	Stable bool

	// Sort runs the algorithm over the whole slice.
	Sort func(data []T, cmp Comparator[T], opts ...Option) error
}
