package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/offheap/internal/conv"
	"github.com/hupe1980/offheap/internal/mmap"
	"github.com/hupe1980/offheap/internal/resource"
)

// ErrMemoryLimitExceeded is wrapped by allocation errors caused by WithMemoryLimit.
var ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

// Allocator creates arenas and accounts for the memory they hold.
// It is safe for concurrent use.
type Allocator struct {
	opts       options
	controller *resource.Controller
}

// NewAllocator creates an Allocator configured by opts.
func NewAllocator(opts ...Option) *Allocator {
	o := options{
		backing:          BackingAuto,
		advice:           AccessDefault,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Allocator{
		opts:       o,
		controller: resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit}),
	}
}

var (
	defaultOnce      sync.Once
	defaultAllocator *Allocator
)

// Default returns the shared allocator used when none is configured.
func Default() *Allocator {
	defaultOnce.Do(func() {
		defaultAllocator = NewAllocator()
	})
	return defaultAllocator
}

// Allocate creates an arena of the given length using the default allocator.
func Allocate(bytes int64) (*Memory, error) {
	return Default().Allocate(bytes)
}

// Allocate creates an arena of the given length in bytes.
// The contents of the new arena are unspecified.
func (a *Allocator) Allocate(bytes int64) (*Memory, error) {
	start := time.Now()
	m, err := a.allocate(bytes)
	offHeap := err == nil && m.IsOffHeap()
	a.opts.metricsCollector.RecordAllocate(bytes, offHeap, time.Since(start), err)
	a.opts.logger.LogAllocate(bytes, offHeap, err)
	return m, err
}

func (a *Allocator) allocate(bytes int64) (*Memory, error) {
	if bytes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, bytes)
	}
	size, err := conv.Int64ToInt(bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}

	if err := a.controller.AcquireMemory(bytes); err != nil {
		return nil, fmt.Errorf("memory: allocate %d bytes: %w", bytes, err)
	}

	data, mapping, err := a.obtain(size)
	if err != nil {
		a.controller.ReleaseMemory(bytes)
		return nil, err
	}

	return newMemory(a, data, mapping, bytes), nil
}

func (a *Allocator) obtain(size int) ([]byte, *mmap.Mapping, error) {
	if size == 0 {
		return nil, nil, nil
	}
	if a.opts.backing == BackingHeap {
		return make([]byte, size), nil, nil
	}

	mapping, err := mmap.MapAnon(size)
	if err != nil {
		if a.opts.backing == BackingOffHeap {
			return nil, nil, fmt.Errorf("memory: allocate %d bytes: %w", size, err)
		}
		a.opts.logger.LogHeapFallback(int64(size), err)
		return make([]byte, size), nil, nil
	}

	if a.opts.advice != AccessDefault {
		if err := mapping.Advise(a.opts.advice); err != nil {
			a.opts.logger.Debug("advise failed", "advice", a.opts.advice.String(), "error", err)
		}
	}

	return mapping.Bytes(), mapping, nil
}

// MemoryUsage returns the bytes currently held by live arenas of this allocator.
func (a *Allocator) MemoryUsage() int64 {
	return a.controller.MemoryUsage()
}

// PeakMemoryUsage returns the high-water mark of MemoryUsage.
func (a *Allocator) PeakMemoryUsage() int64 {
	return a.controller.PeakMemoryUsage()
}

// MemoryLimit returns the configured limit in bytes (0 if unlimited).
func (a *Allocator) MemoryLimit() int64 {
	return a.controller.MemoryLimit()
}

// Backing returns the configured backing.
func (a *Allocator) Backing() Backing {
	return a.opts.backing
}

// Logger returns the allocator's logger.
func (a *Allocator) Logger() *Logger {
	return a.opts.logger
}

// Metrics returns the allocator's metrics collector.
func (a *Allocator) Metrics() MetricsCollector {
	return a.opts.metricsCollector
}

func (a *Allocator) String() string {
	return fmt.Sprintf("Allocator{backing: %s, usage: %d, peak: %d, limit: %d}",
		a.opts.backing, a.MemoryUsage(), a.PeakMemoryUsage(), a.MemoryLimit())
}
