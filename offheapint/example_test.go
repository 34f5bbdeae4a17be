package offheapint_test

import (
	"fmt"
	"slices"

	"github.com/hupe1980/offheap/offheapint"
)

func Example() {
	list, err := offheapint.NewArrayList()
	if err != nil {
		panic(err)
	}
	defer list.Free()

	for _, v := range []int32{42, 7, 42, 13, 42, 1} {
		if err := list.Add(v); err != nil {
			panic(err)
		}
	}

	offheapint.Sort(list)
	fmt.Println(slices.Collect(list.Values()))

	out := offheapint.NewIndexRange()
	offheapint.BinarySearchRange(list, 42, out)
	fmt.Println(out.FromIndex(), out.ToIndex())

	missing := offheapint.BinarySearch(list, 10)
	fmt.Println(missing, ^missing)
	// Output:
	// [1 7 13 42 42 42]
	// 3 5
	// -3 2
}

func ExampleSortFunc() {
	arr, err := offheapint.NewArray(5)
	if err != nil {
		panic(err)
	}
	defer arr.Free()

	for i, v := range []int32{3, 1, 4, 1, 5} {
		arr.Set(int64(i), v)
	}

	offheapint.SortFunc(arr, offheapint.Reverse(offheapint.NaturalOrder))
	fmt.Println(slices.Collect(arr.Values()))
	// Output: [5 4 3 1 1]
}

func ExampleArrayList_Capacity() {
	list, err := offheapint.NewArrayList()
	if err != nil {
		panic(err)
	}
	defer list.Free()

	for i := int32(0); i < 25; i++ {
		if err := list.Add(i); err != nil {
			panic(err)
		}
	}
	fmt.Println(list.Size(), list.Capacity())
	// Output: 25 36
}
