package memory

import (
	"github.com/hupe1980/offheap/internal/mmap"
)

// Backing selects where arena bytes live.
type Backing int

const (
	// BackingAuto maps anonymous memory and falls back to the heap on failure.
	BackingAuto Backing = iota
	// BackingOffHeap maps anonymous memory and fails if that is not possible.
	BackingOffHeap
	// BackingHeap allocates arenas as ordinary Go byte slices.
	BackingHeap
)

// String returns the name of the backing.
func (b Backing) String() string {
	switch b {
	case BackingOffHeap:
		return "offheap"
	case BackingHeap:
		return "heap"
	default:
		return "auto"
	}
}

// AccessPattern is a kernel hint applied to newly mapped arenas.
type AccessPattern = mmap.AccessPattern

// Access patterns accepted by WithAdvice.
const (
	AccessDefault    = mmap.AccessDefault
	AccessSequential = mmap.AccessSequential
	AccessRandom     = mmap.AccessRandom
	AccessWillNeed   = mmap.AccessWillNeed
	AccessDontNeed   = mmap.AccessDontNeed
)

type options struct {
	backing          Backing
	advice           AccessPattern
	memoryLimit      int64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Allocator.
type Option func(*options)

// WithBacking selects where arena bytes live. Defaults to BackingAuto.
func WithBacking(b Backing) Option {
	return func(o *options) {
		o.backing = b
	}
}

// WithAdvice applies a kernel access hint to every mapped arena.
// Sorting benefits from AccessRandom; bulk appends from AccessSequential.
func WithAdvice(p AccessPattern) Option {
	return func(o *options) {
		o.advice = p
	}
}

// WithMemoryLimit caps the total bytes held by live arenas of the allocator.
// Allocations beyond the cap fail with an error wrapping
// ErrMemoryLimitExceeded. If bytes <= 0, usage is tracked but not limited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMetricsCollector configures the metrics sink.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures the logger.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
