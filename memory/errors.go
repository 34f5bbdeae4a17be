package memory

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is the sentinel wrapped by *OutOfBoundsError.
	ErrOutOfBounds = errors.New("memory: offset out of bounds")
	// ErrFreed is returned (or raised) when a freed arena is used.
	ErrFreed = errors.New("memory: arena already freed")
	// ErrInvalidSize is returned when a negative allocation size is requested.
	ErrInvalidSize = errors.New("memory: invalid allocation size")
)

// OutOfBoundsError describes an access that does not fit inside an arena.
type OutOfBoundsError struct {
	Offset int64
	Width  int64
	Length int64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory: access [%d, %d) out of bounds for arena of length %d",
		e.Offset, e.Offset+e.Width, e.Length)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
