package offheapint

import (
	"fmt"
	"iter"

	"github.com/hupe1980/offheap/internal/conv"
	"github.com/hupe1980/offheap/memory"
)

// Array is a fixed-size int32 sequence backed by a single arena.
type Array struct {
	mem  *memory.Memory
	size int64
}

var _ Disposable = (*Array)(nil)

// NewArray allocates an array of size elements. Initial element values are
// unspecified.
func NewArray(size int64, opts ...Option) (*Array, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, size)
	}
	o := applyOptions(opts)

	bytes, err := conv.MulInt64(size, elementLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}
	mem, err := o.allocator.Allocate(bytes)
	if err != nil {
		return nil, err
	}

	return &Array{mem: mem, size: size}, nil
}

// Get returns the element at index.
func (a *Array) Get(index int64) int32 {
	checkIndex(index, a.size)
	return a.mem.GetInt32(index * elementLength)
}

// Set stores value at index.
func (a *Array) Set(index int64, value int32) {
	checkIndex(index, a.size)
	a.mem.PutInt32(index*elementLength, value)
}

// Size returns the number of elements.
func (a *Array) Size() int64 {
	return a.size
}

// IsOffHeap reports whether the elements live outside the Go heap.
func (a *Array) IsOffHeap() bool {
	return a.mem.IsOffHeap()
}

// Clone returns an independent copy with its own arena.
func (a *Array) Clone() (*Array, error) {
	mem, err := a.mem.Clone()
	if err != nil {
		return nil, err
	}
	return &Array{mem: mem, size: a.size}, nil
}

// Free releases the backing arena. It is idempotent.
func (a *Array) Free() {
	a.mem.Free()
}

// Values returns the elements in index order.
func (a *Array) Values() iter.Seq[int32] {
	return Values(a)
}

// All returns index/element pairs in index order.
func (a *Array) All() iter.Seq2[int64, int32] {
	return All(a)
}

// Iterator returns a cursor over the elements.
func (a *Array) Iterator() *Iterator {
	return NewIterator(a)
}

func (a *Array) String() string {
	return fmt.Sprintf("Array{size=%d, offHeap=%t}", a.size, a.IsOffHeap())
}
