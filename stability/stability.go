package stability

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for stability verification.
var (
	// ErrLengthMismatch is returned when the two slices differ in length.
	ErrLengthMismatch = errors.New("stability: original and sorted lengths differ")

	// ErrNilKeyFunc is returned when no key function is supplied.
	ErrNilKeyFunc = errors.New("stability: key function is nil")

	// ErrNotPermutation is returned when sorted cannot be a reordering of
	// original; the verdict is then meaningless.
	ErrNotPermutation = errors.New("stability: sorted is not a permutation of original")
)

// Verify reports whether sorted preserves the original relative order of
// elements sharing a key, as projected by key.
//
// For every key, the elements of original carrying it form a queue in
// input order; sorted must consume each queue strictly front to back.
// The first element found out of order within its key group yields
// (false, nil). A sorted slice that is not a per-key permutation of
// original yields ErrNotPermutation.
func Verify[T comparable, K comparable](original, sorted []T, key func(T) K) (bool, error) {
	if key == nil {
		return false, ErrNilKeyFunc
	}
	if len(original) != len(sorted) {
		return false, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(original), len(sorted))
	}

	queues := make(map[K][]T, len(original))
	for _, v := range original {
		k := key(v)
		queues[k] = append(queues[k], v)
	}

	for _, v := range sorted {
		k := key(v)
		q := queues[k]
		if len(q) == 0 {
			return false, fmt.Errorf("%w: surplus element for key %v", ErrNotPermutation, k)
		}
		if q[0] != v {
			if !slices.Contains(q, v) {
				return false, fmt.Errorf("%w: element missing for key %v", ErrNotPermutation, k)
			}

			// v exists in the group but jumped the queue: unstable.
			return false, nil
		}
		queues[k] = q[1:]
	}

	return true, nil
}
