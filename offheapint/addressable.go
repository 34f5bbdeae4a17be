package offheapint

import "cmp"

// elementLength is the size of one element in bytes.
const elementLength = 4

// Addressable is the contract shared by all sortable and searchable sequences.
type Addressable interface {
	// Get returns the element at index. Requires 0 <= index < Size().
	Get(index int64) int32
	// Set stores value at index. Requires 0 <= index < Size().
	Set(index int64, value int32)
	// Size returns the number of addressable elements.
	Size() int64
}

// Disposable is an Addressable that owns releasable memory.
type Disposable interface {
	Addressable
	Free()
}

// Comparator returns a negative number when a orders before b, a positive
// number when a orders after b and zero when they are equal. It must define a
// total order.
type Comparator func(a, b int32) int

// NaturalOrder is the ascending Comparator.
func NaturalOrder(a, b int32) int {
	return cmp.Compare(a, b)
}

// Reverse returns a Comparator with the opposite order of c.
// A nil c is treated as NaturalOrder.
func Reverse(c Comparator) Comparator {
	if c == nil {
		c = NaturalOrder
	}
	return func(a, b int32) int {
		return c(b, a)
	}
}
