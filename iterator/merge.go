package iterator

// Merged merges two sorted iterators into a single sorted iterator.
// Similar to merge iterators in LSM trees (e.g., LevelDB).
//
// The 'over' iterator acts as an overlay, taking precedence when both
// iterators hold an equal item: the pair collapses into over's item.
//
// Each side must be strictly ascending: no two items of one side may compare
// equal. Duplicates within a side break the round-trip rule, since a tie seen
// after a turn cannot tell which duplicate was passed over.
//
// Each step peeks one item from both sides in the step's direction, keeps
// the winner and steps the loser back. This relies on both sides honoring
// the round-trip rule of Iterator.
//
// Dropping entries, such as tombstones from the overlay, is a Filter over
// the merge.
type Merged[T any] struct {
	over Iterator[T]
	base Iterator[T]
	cmp  func(a, b T) int
}

// Merge returns an iterator over the union of over and base, both strictly
// ascending by cmp. cmp returns a negative number when a < b, a positive
// number when a > b and zero when equal, as cmp.Compare does.
// Merge takes ownership of both iterators.
func Merge[T any](over, base Iterator[T], cmp func(a, b T) int) *Merged[T] {
	return &Merged[T]{over: over, base: base, cmp: cmp}
}

var _ Iterator[int] = (*Merged[int])(nil)

// Over returns the overlay iterator.
func (m *Merged[T]) Over() Iterator[T] {
	return m.over
}

// Base returns the base iterator.
func (m *Merged[T]) Base() Iterator[T] {
	return m.base
}

// Next advances to the smallest of the two sides' next items.
func (m *Merged[T]) Next() (T, bool) {
	over, hasOver := m.over.Next()
	base, hasBase := m.base.Next()
	switch {
	case hasOver && hasBase:
		switch cmp := m.cmp(over, base); {
		case cmp < 0:
			m.base.Prev()
			return over, true
		case cmp > 0:
			m.over.Prev()
			return base, true
		default:
			return over, true
		}
	case hasOver:
		return over, true
	case hasBase:
		return base, true
	}
	var zero T
	return zero, false
}

// Prev moves to the largest of the two sides' previous items.
func (m *Merged[T]) Prev() (T, bool) {
	over, hasOver := m.over.Prev()
	base, hasBase := m.base.Prev()
	switch {
	case hasOver && hasBase:
		switch cmp := m.cmp(over, base); {
		case cmp > 0:
			m.base.Next()
			return over, true
		case cmp < 0:
			m.over.Next()
			return base, true
		default:
			return over, true
		}
	case hasOver:
		return over, true
	case hasBase:
		return base, true
	}
	var zero T
	return zero, false
}
