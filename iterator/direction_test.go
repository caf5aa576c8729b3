package iterator_test

import (
	"testing"

	"github.com/dacapoday/bidir/iterator"
	"github.com/dacapoday/bidir/slice"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestViewTotals(t *testing.T) {
	s := []int{3, 1, 4, 1}
	iter := slice.New(s)

	var count, sum int
	for v := range iterator.Forward(iter).All() {
		count++
		sum += v
	}
	require.Equal(t, 4, count)
	require.Equal(t, lo.Sum(s), sum)
	require.Equal(t, 4, iter.Pos())

	count, sum = 0, 0
	for v := range iterator.Backward(iter).All() {
		count++
		sum += v
	}
	require.Equal(t, 4, count)
	require.Equal(t, lo.Sum(s), sum)
	require.Equal(t, 0, iter.Pos())
}

func TestViewSharesCursor(t *testing.T) {
	iter := slice.New([]int{1, 2, 3, 4})

	fwd := iterator.Forward(iter)
	val, ok := fwd.Next()
	require.True(t, ok)
	require.Equal(t, 1, val)
	val, ok = fwd.Next()
	require.True(t, ok)
	require.Equal(t, 2, val)
	fwd.Release()

	// the original picks up where the view stopped
	val, ok = iter.Next()
	require.True(t, ok)
	require.Equal(t, 3, val)

	bwd := iterator.Backward(iter)
	require.Equal(t, iterator.Descending, bwd.Direction())
	val, ok = bwd.Next()
	require.True(t, ok)
	require.Equal(t, 3, val)
	bwd.Release()

	val, ok = iter.Prev()
	require.True(t, ok)
	require.Equal(t, 2, val)
}

func TestViewBreakLeavesCursor(t *testing.T) {
	iter := slice.New(lo.Range(10))

	for v := range iterator.Forward(iter).All() {
		if v == 4 {
			break
		}
	}
	require.Equal(t, 5, iter.Pos())
}

func TestViewRelease(t *testing.T) {
	iter := slice.New([]int{1, 2})
	view := iterator.Forward(iter)
	view.Release()
	view.Release()

	_, ok := view.Next()
	require.False(t, ok)
	require.Equal(t, 0, iter.Pos())
	require.Nil(t, view.Into())
}

func TestViewOwned(t *testing.T) {
	view := iterator.ForwardOwned(iterator.Map(slice.New([]int{1, 2, 3}), func(n int) int { return -n }))
	require.Equal(t, iterator.Ascending, view.Direction())

	var got []int
	for v := range view.All() {
		got = append(got, v)
	}
	require.Equal(t, []int{-1, -2, -3}, got)

	// hand the exhausted iterator back and walk it the other way
	back := iterator.BackwardOwned(view.Into())
	_, ok := view.Next()
	require.False(t, ok)

	got = got[:0]
	for v := range back.All() {
		got = append(got, v)
	}
	require.Equal(t, []int{-3, -2, -1}, got)
}
