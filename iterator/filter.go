package iterator

// Filtered yields only the items of the wrapped iterator accepted by a
// predicate.
//
// Each step pulls from the wrapped iterator, in the step's direction, until
// the predicate accepts an item or the wrapped iterator is exhausted.
// Nothing is cached between steps: after a change of direction the predicate
// runs again on items it has already seen.
type Filtered[T any] struct {
	iter      Iterator[T]
	predicate func(*T) bool
}

// Filter returns an iterator over the items of iter for which predicate
// returns true. Filter takes ownership of iter.
//
// The predicate receives a pointer to the candidate item. It must not keep
// the pointer or modify the item.
func Filter[T any](iter Iterator[T], predicate func(*T) bool) *Filtered[T] {
	return &Filtered[T]{iter: iter, predicate: predicate}
}

var _ Iterator[int] = (*Filtered[int])(nil)

// Next advances to the next accepted item.
func (f *Filtered[T]) Next() (T, bool) {
	return f.seek(Ascending)
}

// Prev moves to the previous accepted item.
func (f *Filtered[T]) Prev() (T, bool) {
	return f.seek(Descending)
}

func (f *Filtered[T]) seek(d Direction) (T, bool) {
	for {
		val, ok := step(f.iter, d)
		if !ok {
			var zero T
			return zero, false
		}
		if f.predicate(&val) {
			return val, true
		}
	}
}
