// Package stability empirically verifies whether a sort preserved the
// relative input order of equal-keyed elements.
//
// What
//
//   - Verify(original, sorted, key) walks the sorted slice and confirms,
//     for every key, that its elements appear in exactly the order they
//     had in the original slice.
//   - The key function is the caller's equality view: for composite
//     records it typically projects the grouping field (e.g. a student's
//     neighborhood), leaving the remaining fields free to betray a
//     reordering.
//
// Why
//
//	The stability flag on an algorithm descriptor is a theoretical claim.
//	This check is black-box and behavioral: it can confirm the claim for
//	a stable algorithm and falsify it for an unstable one on a crafted
//	input, independent of how the sort was implemented.
//
// Complexity (n = len(original))
//
//   - Time:   O(n) map operations
//   - Memory: O(n) for the per-key queues
//
// Usage
//
//	ok, err := stability.Verify(before, after, func(s Student) string {
//	    return s.Neighborhood
//	})
//	if err != nil {
//	    // handle ErrNilKeyFunc, ErrLengthMismatch or ErrNotPermutation
//	}
//	fmt.Println("stable:", ok)
package stability
