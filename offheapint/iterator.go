package offheapint

import "iter"

// Values returns a sequence over the elements of s. The length is fixed when
// Values is called; each range over the result starts from the beginning.
func Values(s Addressable) iter.Seq[int32] {
	n := s.Size()
	return func(yield func(int32) bool) {
		for i := int64(0); i < n; i++ {
			if !yield(s.Get(i)) {
				return
			}
		}
	}
}

// All returns a sequence of index/element pairs of s with the length fixed
// when All is called.
func All(s Addressable) iter.Seq2[int64, int32] {
	n := s.Size()
	return func(yield func(int64, int32) bool) {
		for i := int64(0); i < n; i++ {
			if !yield(i, s.Get(i)) {
				return
			}
		}
	}
}

// Iterator is a forward-only cursor over an Addressable:
//
//	it := list.Iterator()
//	for it.Next() {
//	    v := it.Value()
//	}
//
// The number of elements visited is the sequence size at creation.
type Iterator struct {
	s     Addressable
	size  int64
	index int64
	value int32
	free  func()
}

// NewIterator returns an iterator over the current elements of s.
func NewIterator(s Addressable) *Iterator {
	return &Iterator{s: s, size: s.Size(), index: -1}
}

// NewDisposingIterator returns an iterator that frees s once the last element
// has been read.
func NewDisposingIterator(s Disposable) *Iterator {
	it := NewIterator(s)
	it.free = s.Free
	it.disposeIfDone()
	return it
}

// HasNext reports whether Next would advance to another element.
func (it *Iterator) HasNext() bool {
	return it.index+1 < it.size
}

// Next advances to the next element and reports whether there was one.
func (it *Iterator) Next() bool {
	if !it.HasNext() {
		return false
	}
	it.index++
	it.value = it.s.Get(it.index)
	it.disposeIfDone()
	return true
}

// Value returns the element at the current position.
func (it *Iterator) Value() int32 {
	return it.value
}

// Index returns the current position, -1 before the first Next.
func (it *Iterator) Index() int64 {
	return it.index
}

func (it *Iterator) disposeIfDone() {
	if it.free != nil && !it.HasNext() {
		it.free()
		it.free = nil
	}
}
