// Package offheapint provides int32 sequences stored outside the Go heap,
// together with binary search and in-place sorting over them.
//
// # Sequences
//
// Array is a fixed-size sequence; ArrayList grows on Add. Both own a single
// memory.Memory arena and implement Addressable, the get/set/size contract
// that every algorithm in this package works through. Indexes and sizes are
// int64, so sequences are not limited to 2^31 elements.
//
//	list, err := offheapint.NewArrayList()
//	if err != nil { ... }
//	defer list.Free()
//
//	for _, v := range values {
//	    if err := list.Add(v); err != nil { ... }
//	}
//	offheapint.Sort(list)
//	idx := offheapint.BinarySearch(list, 42)
//
// # Growth
//
// An ArrayList that is full grows to size + 24 elements while it holds fewer
// than 12 elements, and by half its size afterwards. Growth allocates a new
// arena, copies the old contents, frees the old arena and adopts the new one.
//
// # Search results
//
// BinarySearch returns the index of a matching element, or ^insertionPoint
// (equivalently -insertionPoint-1) when the value is absent, the same encoding
// as Java's Arrays.binarySearch. With duplicates, which match is returned is
// unspecified. BinarySearchRange reports the full run of equal elements in a
// caller-owned IndexRange so hot loops do not allocate.
//
// # Sorting
//
// Sort and SortFunc implement dual-pivot quicksort with an insertion sort for
// short partitions. Sorting is not stable and allocates no memory
// proportional to the input.
//
// # Errors
//
// Index violations are programmer errors and panic with an
// *IndexOutOfBoundsError. Malformed [from, to) ranges return ErrInvalidRange.
// Allocation failures during construction or growth are returned as errors.
//
// # Concurrency
//
// Sequences are not safe for concurrent mutation. Free is idempotent and may be
// called from any goroutine.
package offheapint
