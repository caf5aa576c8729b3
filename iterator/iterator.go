// Package iterator defines the bidirectional iteration contract and a set of
// lazy adapters that preserve it.
//
// Adapters own the iterator they wrap. To run a temporary chain without
// giving up an iterator, wrap it with Borrow first and Release the handle
// when done.
package iterator

// Iterator represents a cursor over an ordered sequence.
// The cursor sits between two adjacent items, or at one of the two
// boundaries, and can be moved forward or backward one item at a time.
//
// Usage:
//
//	for v, ok := iter.Next(); ok; v, ok = iter.Next() {
//	    // process v in ascending order
//	}
//	for v, ok := iter.Prev(); ok; v, ok = iter.Prev() {
//	    // process v in descending order
//	}
//
// Exhaustion is not an error: reaching a boundary returns false, and the
// opposite direction re-enters the sequence from that boundary.
type Iterator[T any] interface {
	// Next moves the cursor forward over one item and returns it.
	// Returns false at the end of the sequence; the cursor then stays at the
	// end and further calls keep returning false.
	//
	// A Next returning item i followed by Prev returns item i again.
	Next() (T, bool)

	// Prev moves the cursor backward over one item and returns it.
	// Returns false at the start of the sequence; the cursor then stays at
	// the start and further calls keep returning false.
	//
	// A Prev returning item i followed by Next returns item i again.
	Prev() (T, bool)
}

// Direction selects which of Next or Prev a single-direction view advances
// with.
type Direction int

const (
	// Ascending advances with Next.
	Ascending Direction = iota
	// Descending advances with Prev.
	Descending
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// step moves iter one item in direction d.
func step[T any](iter Iterator[T], d Direction) (T, bool) {
	if d == Descending {
		return iter.Prev()
	}
	return iter.Next()
}
