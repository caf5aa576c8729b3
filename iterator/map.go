package iterator

// Mapped yields the items of the wrapped iterator transformed by a function.
// Every step takes exactly one step on the wrapped iterator.
type Mapped[T, U any] struct {
	iter Iterator[T]
	f    func(T) U
}

// Map returns an iterator over f applied to each item of iter.
// Map takes ownership of iter.
//
// f is not called when the wrapped iterator is exhausted.
func Map[T, U any](iter Iterator[T], f func(T) U) *Mapped[T, U] {
	return &Mapped[T, U]{iter: iter, f: f}
}

var _ Iterator[string] = (*Mapped[int, string])(nil)

// Next advances the wrapped iterator and transforms its item.
func (m *Mapped[T, U]) Next() (U, bool) {
	return m.apply(m.iter.Next())
}

// Prev moves the wrapped iterator back and transforms its item.
func (m *Mapped[T, U]) Prev() (U, bool) {
	return m.apply(m.iter.Prev())
}

func (m *Mapped[T, U]) apply(val T, ok bool) (out U, _ bool) {
	if !ok {
		return out, false
	}
	return m.f(val), true
}
