// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package slice implements a bidirectional iterator over a slice.
package slice

import (
	"github.com/dacapoday/bidir"
	"github.com/dacapoday/bidir/iterator"
)

// Slice is a slice that can produce bidirectional iterators over itself.
type Slice[T any] []T

var _ bidir.Iterable[int] = Slice[int](nil)

// Iter returns an iterator positioned before the first item.
func (s Slice[T]) Iter() iterator.Iterator[T] {
	return New(s)
}

// Iter traverses a slice in both directions.
//
// The cursor ranges over 0..=len: position i sits between s[i-1] and s[i],
// 0 is before the first item and len is past the last one.
// Iter reads the slice but never owns or modifies it.
type Iter[T any] struct {
	s   []T
	pos int
}

// New returns an iterator over s positioned before the first item.
func New[T any](s []T) *Iter[T] {
	return &Iter[T]{s: s}
}

var _ iterator.Iterator[int] = (*Iter[int])(nil)

// Next returns the item after the cursor and moves past it.
// Returns false at the end; the cursor does not move beyond len.
func (it *Iter[T]) Next() (val T, ok bool) {
	if it.pos >= len(it.s) {
		it.pos = len(it.s)
		return
	}
	val = it.s[it.pos]
	it.pos++
	return val, true
}

// Prev moves back over the item before the cursor and returns it.
// Returns false at the start; the cursor does not move below 0.
func (it *Iter[T]) Prev() (val T, ok bool) {
	if it.pos <= 0 {
		it.pos = 0
		return
	}
	it.pos--
	return it.s[it.pos], true
}

// Len returns the length of the underlying slice.
func (it *Iter[T]) Len() int {
	return len(it.s)
}

// Pos returns the cursor position, in 0..=Len.
func (it *Iter[T]) Pos() int {
	return it.pos
}

// SeekFirst moves the cursor before the first item.
func (it *Iter[T]) SeekFirst() {
	it.pos = 0
}

// SeekLast moves the cursor past the last item.
func (it *Iter[T]) SeekLast() {
	it.pos = len(it.s)
}

// Seek moves the cursor to pos, which must lie in 0..=Len.
// Returns bidir.ErrOutOfRange otherwise, leaving the cursor unchanged.
func (it *Iter[T]) Seek(pos int) error {
	if pos < 0 || pos > len(it.s) {
		return bidir.ErrOutOfRange
	}
	it.pos = pos
	return nil
}

// Clone creates an independent iterator at the current position over the
// same slice.
func (it *Iter[T]) Clone() *Iter[T] {
	return &Iter[T]{s: it.s, pos: it.pos}
}
