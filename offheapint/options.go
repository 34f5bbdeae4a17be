package offheapint

import (
	"github.com/hupe1980/offheap/memory"
)

// DefaultCapacity is the initial capacity of an ArrayList.
const DefaultCapacity = 24

type options struct {
	allocator       *memory.Allocator
	initialCapacity int64
}

// Option configures Array and ArrayList construction.
type Option func(*options)

// WithAllocator sets the allocator that provides arenas.
//
// If nil is passed, memory.Default() is used.
func WithAllocator(a *memory.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = memory.Default()
		}
		o.allocator = a
	}
}

// WithInitialCapacity sets the number of elements an ArrayList can hold before
// its first growth. Ignored by NewArray.
func WithInitialCapacity(n int64) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

func applyOptions(opts []Option) options {
	o := options{
		allocator:       memory.Default(),
		initialCapacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
