package offheapint

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is the sentinel wrapped by *IndexOutOfBoundsError.
	ErrIndexOutOfBounds = errors.New("offheapint: index out of bounds")
	// ErrInvalidRange is returned when a [from, to) range does not fit a sequence.
	ErrInvalidRange = errors.New("offheapint: invalid range")
	// ErrInvalidCapacity is returned for a negative initial capacity or size.
	ErrInvalidCapacity = errors.New("offheapint: invalid capacity")
)

// IndexOutOfBoundsError is raised (via panic) when an index does not address
// an element of a sequence.
type IndexOutOfBoundsError struct {
	Index int64
	Size  int64
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("offheapint: index %d out of bounds for size %d", e.Index, e.Size)
}

func (e *IndexOutOfBoundsError) Unwrap() error { return ErrIndexOutOfBounds }

func checkIndex(index, size int64) {
	if index < 0 || index >= size {
		panic(&IndexOutOfBoundsError{Index: index, Size: size})
	}
}

func checkRange(from, to, size int64) error {
	if from < 0 || from > to || to > size {
		return fmt.Errorf("%w: size %d, from %d, to %d", ErrInvalidRange, size, from, to)
	}
	return nil
}
