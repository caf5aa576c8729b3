package slice_test

import (
	"fmt"

	"github.com/dacapoday/bidir/slice"
)

func ExampleNew() {
	iter := slice.New([]int{1, 2, 3})

	for v, ok := iter.Next(); ok; v, ok = iter.Next() {
		fmt.Println("next", v)
	}
	for v, ok := iter.Prev(); ok; v, ok = iter.Prev() {
		fmt.Println("prev", v)
	}

	// Output:
	// next 1
	// next 2
	// next 3
	// prev 3
	// prev 2
	// prev 1
}

func ExampleSlice_Iter() {
	animals := slice.Slice[string]{"dog", "cat", "fox"}

	iter := animals.Iter()
	iter.Next()
	v, _ := iter.Next()
	fmt.Println(v)
	v, _ = iter.Prev()
	fmt.Println(v)

	// Output:
	// cat
	// cat
}
