package iterator

import "iter"

// View is a single-direction iterator over a bidirectional one.
// Its only advance operation is Next, routed to the wrapped iterator's Next
// or Prev depending on the view's direction.
//
// A view keeps no state of its own: consuming it moves the wrapped cursor
// exactly as direct Next or Prev calls would.
type View[T any] struct {
	iter Iterator[T]
	ref  *Ref[T]
	dir  Direction
}

// Forward returns an ascending view that borrows iter.
// iter remains usable, at its new position, after the view is released.
//
// Release only guards against later use of the view: a view holds nothing
// beyond its handle, so dropping one unreleased once it is drained is
// harmless.
func Forward[T any](iter Iterator[T]) *View[T] {
	ref := Borrow(iter)
	return &View[T]{iter: ref, ref: ref, dir: Ascending}
}

// ForwardOwned returns an ascending view that takes iter.
// The caller must not use iter afterwards; Into hands it back.
func ForwardOwned[T any](iter Iterator[T]) *View[T] {
	return &View[T]{iter: iter, dir: Ascending}
}

// Backward returns a descending view that borrows iter; ie. a view whose
// Next calls Prev.
// iter remains usable, at its new position, after the view is released.
func Backward[T any](iter Iterator[T]) *View[T] {
	ref := Borrow(iter)
	return &View[T]{iter: ref, ref: ref, dir: Descending}
}

// BackwardOwned returns a descending view that takes iter.
// The caller must not use iter afterwards; Into hands it back.
func BackwardOwned[T any](iter Iterator[T]) *View[T] {
	return &View[T]{iter: iter, dir: Descending}
}

// Direction returns the direction the view advances in.
func (view *View[T]) Direction() Direction {
	return view.dir
}

// Next advances the wrapped iterator one item in the view's direction.
// Returns false when that direction is exhausted or the view is released.
func (view *View[T]) Next() (val T, ok bool) {
	if view.iter == nil {
		return
	}
	return step(view.iter, view.dir)
}

// All returns a sequence draining the view.
// Breaking out of the loop leaves the cursor just past the last item yielded.
func (view *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := view.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Release detaches the view from the wrapped iterator.
// A borrowing view ends its borrow, handing the iterator back to its
// original holder. An owning view drops the iterator.
// No-op if already released.
func (view *View[T]) Release() {
	if view.ref != nil {
		view.ref.Release()
		view.ref = nil
	}
	view.iter = nil
}

// Into releases the view and returns the iterator it owned.
// Returns nil for a borrowing view, whose iterator already belongs to the
// caller, or for a view already released.
func (view *View[T]) Into() Iterator[T] {
	var iter Iterator[T]
	if view.ref == nil {
		iter = view.iter
	}
	view.Release()
	return iter
}
