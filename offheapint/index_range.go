package offheapint

import "fmt"

// IndexRange is the result of a range search: the inclusive span
// [FromIndex, ToIndex] of elements equal to the searched value.
//
// An empty range carries the encoded insertion point (a negative number) in
// both bounds. IndexRange is an output parameter meant to be reused across
// searches; the zero value is ready to use.
type IndexRange struct {
	empty     bool
	fromIndex int64
	toIndex   int64
}

// NewIndexRange returns a non-empty range with both bounds set to -1, the state
// a range has before its first search.
func NewIndexRange() *IndexRange {
	return &IndexRange{fromIndex: -1, toIndex: -1}
}

func (r *IndexRange) setEmpty(encoded int64) {
	r.empty = true
	r.fromIndex = encoded
	r.toIndex = encoded
}

func (r *IndexRange) set(from, to int64) {
	r.empty = false
	r.fromIndex = from
	r.toIndex = to
}

// IsEmpty reports whether the last search found no match.
func (r *IndexRange) IsEmpty() bool {
	return r.empty
}

// IsNotEmpty reports whether the last search found at least one match.
func (r *IndexRange) IsNotEmpty() bool {
	return !r.empty
}

// FromIndex returns the first matching index, or the encoded insertion point
// if the range is empty.
func (r *IndexRange) FromIndex() int64 {
	return r.fromIndex
}

// ToIndex returns the last matching index (inclusive), or the encoded
// insertion point if the range is empty.
func (r *IndexRange) ToIndex() int64 {
	return r.toIndex
}

// Len returns the number of matching elements.
func (r *IndexRange) Len() int64 {
	if r.empty {
		return 0
	}
	return r.toIndex - r.fromIndex + 1
}

// InsertionPoint decodes the index where the searched value would be inserted.
// It returns -1 for a non-empty range.
func (r *IndexRange) InsertionPoint() int64 {
	if !r.empty {
		return -1
	}
	return ^r.fromIndex
}

func (r *IndexRange) String() string {
	return fmt.Sprintf("IndexRange{empty=%t, fromIndex=%d, toIndex=%d}", r.empty, r.fromIndex, r.toIndex)
}
