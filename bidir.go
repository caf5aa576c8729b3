// Package bidir defines the basic interfaces for bidirectional iteration.
//
// A bidirectional iterator is a cursor sitting between two adjacent items of
// an ordered sequence. Next passes over the item after the cursor, Prev over
// the item before it, so a Next followed by a Prev returns the same item
// twice and leaves the cursor where it started.
//
// The capability contract and its adapters live in package iterator; the
// reference implementation over a slice lives in package slice.
package bidir

import "github.com/dacapoday/bidir/iterator"

// Iterable is implemented by sources that can produce a bidirectional
// iterator over their items.
//
// The slice.Slice type satisfies this interface.
type Iterable[T any] interface {
	// Iter returns a fresh iterator positioned before the first item.
	// The iterator borrows the source; it never owns or mutates it.
	Iter() iterator.Iterator[T]
}
