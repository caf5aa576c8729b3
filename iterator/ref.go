package iterator

// Ref is an exclusive, temporary handle on another iterator.
// It moves the referenced cursor exactly as direct calls would, so the
// referenced iterator observes every step taken through the handle.
//
// While the borrow is live the referenced iterator must only be driven
// through the handle. Release ends the borrow; afterwards the handle yields
// nothing and the referenced iterator is free to use again.
//
// Zero value is released.
type Ref[T any] struct {
	iter Iterator[T]
}

// Borrow returns a handle on iter.
func Borrow[T any](iter Iterator[T]) *Ref[T] {
	return &Ref[T]{iter: iter}
}

var _ Iterator[int] = (*Ref[int])(nil)

// Next advances the referenced iterator forward.
// Returns false once released.
func (ref *Ref[T]) Next() (val T, ok bool) {
	if ref.iter == nil {
		return
	}
	return ref.iter.Next()
}

// Prev moves the referenced iterator backward.
// Returns false once released.
func (ref *Ref[T]) Prev() (val T, ok bool) {
	if ref.iter == nil {
		return
	}
	return ref.iter.Prev()
}

// Release ends the borrow.
// No-op if already released.
func (ref *Ref[T]) Release() {
	ref.iter = nil
}

// Released reports whether the borrow has ended.
func (ref *Ref[T]) Released() bool {
	return ref.iter == nil
}
