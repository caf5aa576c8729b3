package iterator

// FilterMapped yields the results of a function over the wrapped iterator's
// items, skipping items for which the function reports no result.
//
// It behaves as Map over Filter with a single function, and like Filtered it
// caches nothing between steps.
type FilterMapped[T, U any] struct {
	iter Iterator[T]
	f    func(T) (U, bool)
}

// FilterMap returns an iterator over the results of f for the items of iter.
// Items for which f returns false are skipped. FilterMap takes ownership of
// iter.
//
// Example:
//
//	// reciprocals, skipping zeros
//	FilterMap(iter, func(i int) (float64, bool) {
//	    if i == 0 {
//	        return 0, false
//	    }
//	    return 1 / float64(i), true
//	})
func FilterMap[T, U any](iter Iterator[T], f func(T) (U, bool)) *FilterMapped[T, U] {
	return &FilterMapped[T, U]{iter: iter, f: f}
}

var _ Iterator[string] = (*FilterMapped[int, string])(nil)

// Next advances to the next item with a result.
func (fm *FilterMapped[T, U]) Next() (U, bool) {
	return fm.seek(Ascending)
}

// Prev moves to the previous item with a result.
func (fm *FilterMapped[T, U]) Prev() (U, bool) {
	return fm.seek(Descending)
}

func (fm *FilterMapped[T, U]) seek(d Direction) (out U, ok bool) {
	for {
		val, more := step(fm.iter, d)
		if !more {
			var zero U
			return zero, false
		}
		if out, ok = fm.f(val); ok {
			return
		}
	}
}
