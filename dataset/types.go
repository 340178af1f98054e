package dataset

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownShape is returned by Generate for a Shape value outside
	// the defined set.
	ErrUnknownShape = errors.New("dataset: unknown shape")
	// ErrNegativeSize is returned by Generate for a negative size.
	ErrNegativeSize = errors.New("dataset: negative size")
	// ErrEmptyDataset is returned when a file yields no usable records.
	ErrEmptyDataset = errors.New("dataset: no usable records")
)

// Shape selects the distribution of a generated integer dataset.
type Shape int

const (
	// Random draws uniformly distributed values.
	Random Shape = iota
	// Sorted produces an already ascending sequence.
	Sorted
	// Reversed produces a descending sequence, the classic worst case.
	Reversed
	// Duplicated draws from a narrow value range so ties dominate.
	Duplicated
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Random:
		return "random"
	case Sorted:
		return "sorted"
	case Reversed:
		return "reversed"
	case Duplicated:
		return "duplicated"
	default:
		return "unknown"
	}
}

// ParseShape maps a textual shape name (as accepted on the command
// line) back to its Shape value.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return Random, nil
	case "sorted":
		return Sorted, nil
	case "reversed":
		return Reversed, nil
	case "duplicated":
		return Duplicated, nil
	default:
		return 0, ErrUnknownShape
	}
}

// Student is one record of the people dataset used to demonstrate
// sorting stability: sort by neighborhood after sorting by name, then
// check whether equal neighborhoods kept their name order.
type Student struct {
	Name         string
	BirthDate    string
	Neighborhood string
	City         string
}

// CompareInts is the canonical ascending integer comparator.
func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ByName orders students lexicographically by name.
func ByName(a, b Student) int {
	return strings.Compare(a.Name, b.Name)
}

// ByNeighborhood orders students lexicographically by neighborhood.
func ByNeighborhood(a, b Student) int {
	return strings.Compare(a.Neighborhood, b.Neighborhood)
}
