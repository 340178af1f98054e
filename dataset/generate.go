package dataset

import (
	"math/rand"
)

// Generate builds a synthetic integer dataset of the given shape and
// size. The same (shape, n, seed) triple always yields the same slice,
// so benchmark runs stay reproducible.
func Generate(shape Shape, n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)

	switch shape {
	case Random:
		for i := range out {
			out[i] = rng.Intn(n*10 + 1)
		}
	case Sorted:
		for i := range out {
			out[i] = i
		}
	case Reversed:
		for i := range out {
			out[i] = n - 1 - i
		}
	case Duplicated:
		// A value range of ~n/10 keeps every value appearing ~10 times.
		limit := n/10 + 1
		for i := range out {
			out[i] = rng.Intn(limit)
		}
	default:
		return nil, ErrUnknownShape
	}

	return out, nil
}
