package offheapint

import (
	"fmt"
	"iter"

	"github.com/hupe1980/offheap/internal/conv"
	"github.com/hupe1980/offheap/memory"
)

// minCapacityIncrement is the growth step for small lists; lists holding fewer
// than half of it grow by exactly this many elements.
const minCapacityIncrement = 24

// ArrayList is a growable int32 sequence backed by a single arena.
//
// Only appending is supported. ArrayList is not safe for concurrent mutation.
type ArrayList struct {
	mem      *memory.Memory
	alloc    *memory.Allocator
	size     int64
	capacity int64
}

var _ Disposable = (*ArrayList)(nil)

// NewArrayList allocates an empty list with DefaultCapacity, or the capacity
// set by WithInitialCapacity.
func NewArrayList(opts ...Option) (*ArrayList, error) {
	o := applyOptions(opts)
	if o.initialCapacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, o.initialCapacity)
	}

	bytes, err := conv.MulInt64(o.initialCapacity, elementLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}
	mem, err := o.allocator.Allocate(bytes)
	if err != nil {
		return nil, err
	}

	return &ArrayList{
		mem:      mem,
		alloc:    o.allocator,
		capacity: o.initialCapacity,
	}, nil
}

// Add appends value, growing the backing arena first if the list is full.
// On error the list is left unchanged.
func (l *ArrayList) Add(value int32) error {
	s := l.size
	if s == l.capacity {
		if err := l.grow(); err != nil {
			return err
		}
	}
	l.mem.PutInt32(s*elementLength, value)
	l.size = s + 1
	return nil
}

// AddAll appends values in order. It stops at the first error.
func (l *ArrayList) AddAll(values ...int32) error {
	for _, v := range values {
		if err := l.Add(v); err != nil {
			return err
		}
	}
	return nil
}

func (l *ArrayList) grow() error {
	s := l.size
	increment := s >> 1
	if s < minCapacityIncrement/2 {
		increment = minCapacityIncrement
	}
	newCapacity := s + increment

	bytes, err := conv.MulInt64(newCapacity, elementLength)
	if err != nil {
		return fmt.Errorf("offheapint: grow to capacity %d: %w", newCapacity, err)
	}
	newMem, err := l.alloc.Allocate(bytes)
	if err != nil {
		return fmt.Errorf("offheapint: grow to capacity %d: %w", newCapacity, err)
	}

	oldBytes := l.mem.Len()
	l.mem.Copy(0, newMem, 0, oldBytes)
	l.mem.Free()
	l.mem = newMem
	l.alloc.Metrics().RecordGrow(oldBytes, bytes)
	l.alloc.Logger().LogGrow(l.capacity, newCapacity)
	l.capacity = newCapacity
	return nil
}

// Get returns the element at index. Requires 0 <= index < Size().
func (l *ArrayList) Get(index int64) int32 {
	checkIndex(index, l.size)
	return l.mem.GetInt32(index * elementLength)
}

// Set replaces the element at index. Requires 0 <= index < Size().
func (l *ArrayList) Set(index int64, value int32) {
	checkIndex(index, l.size)
	l.mem.PutInt32(index*elementLength, value)
}

// Size returns the number of elements.
func (l *ArrayList) Size() int64 {
	return l.size
}

// Capacity returns the number of elements the list can hold without growing.
func (l *ArrayList) Capacity() int64 {
	return l.capacity
}

// Reset empties the list without releasing or clearing memory.
func (l *ArrayList) Reset() {
	l.size = 0
}

// IsOffHeap reports whether the elements live outside the Go heap.
func (l *ArrayList) IsOffHeap() bool {
	return l.mem.IsOffHeap()
}

// Clone returns an independent copy with the same size and capacity.
func (l *ArrayList) Clone() (*ArrayList, error) {
	mem, err := l.mem.Clone()
	if err != nil {
		return nil, err
	}
	return &ArrayList{
		mem:      mem,
		alloc:    l.alloc,
		size:     l.size,
		capacity: l.capacity,
	}, nil
}

// Free releases the backing arena. It is idempotent and may be called from
// any goroutine.
func (l *ArrayList) Free() {
	l.mem.Free()
}

// Values returns the elements present when Values is called. Elements
// appended afterwards are not observed.
func (l *ArrayList) Values() iter.Seq[int32] {
	return Values(l)
}

// All returns index/element pairs for the elements present when All is called.
func (l *ArrayList) All() iter.Seq2[int64, int32] {
	return All(l)
}

// Iterator returns a cursor over the elements present now.
func (l *ArrayList) Iterator() *Iterator {
	return NewIterator(l)
}

func (l *ArrayList) String() string {
	return fmt.Sprintf("ArrayList{size=%d, capacity=%d, offHeap=%t}", l.size, l.capacity, l.IsOffHeap())
}
