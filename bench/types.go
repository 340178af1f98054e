package bench

import (
	"errors"
	"time"

	"github.com/katalvlaran/sortlab/sorting"
)

// ErrNilSortFunc is returned when Measure receives no algorithm to time.
var ErrNilSortFunc = errors.New("bench: sort function is nil")

// SortFunc is the uniform-arity algorithm signature accepted by Measure,
// matching the suite descriptors' Sort field.
type SortFunc[T any] func(data []T, cmp sorting.Comparator[T], opts ...sorting.Option) error

// RangeFunc is the range-arity signature accepted by MeasureRange,
// matching sorting.QuickRange.
type RangeFunc[T any] func(data []T, low, high int, cmp sorting.Comparator[T], opts ...sorting.Option) error

// Options configures the harness and the orchestrator.
//   - Strategy: rendition used for every timed invocation.
//   - Persist: when non-nil, RunAll hands each algorithm's final sorted
//     working copy to this callback; an error aborts the run. The harness
//     itself never performs I/O.
type Options[T any] struct {
	Strategy sorting.Strategy
	Persist  func(algorithm string, sorted []T) error
}

// DefaultOptions returns Options with the optimized strategy and no
// persistence callback.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Strategy: sorting.Optimized, Persist: nil}
}

// Result is one benchmark outcome, immutable once produced. Counters are
// per-repeat averages; Duration is the averaged wall-clock time, always
// strictly positive.
type Result struct {
	// Algorithm is the descriptor display name.
	Algorithm string

	// Duration is the averaged measured duration, floored to a minimum
	// positive value.
	Duration time.Duration

	// Size is the element count of the dataset.
	Size int

	// DataKind is the caller's free-form dataset tag
	// (e.g. "numbers", "students").
	DataKind string

	// Comparisons, Swaps and Moves are per-repeat averaged counts.
	Comparisons int64
	Swaps       int64
	Moves       int64

	// Repeats is the adaptive repeat count the protocol actually used.
	Repeats int
}

// Seconds returns the measured duration in seconds.
func (r Result) Seconds() float64 { return r.Duration.Seconds() }
