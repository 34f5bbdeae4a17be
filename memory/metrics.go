package memory

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting arena metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAllocate is called after each allocation attempt.
	// bytes is the requested length, err is nil if successful.
	RecordAllocate(bytes int64, offHeap bool, duration time.Duration, err error)

	// RecordFree is called once per released arena.
	RecordFree(bytes int64)

	// RecordCopy is called after each bulk copy between arenas.
	RecordCopy(bytes int64)

	// RecordGrow is called when a growable sequence reallocates.
	RecordGrow(fromBytes, toBytes int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int64, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordFree(int64)                                 {}
func (NoopMetricsCollector) RecordCopy(int64)                                 {}
func (NoopMetricsCollector) RecordGrow(int64, int64)                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount      atomic.Int64
	AllocateErrors     atomic.Int64
	AllocateBytes      atomic.Int64
	AllocateTotalNanos atomic.Int64
	HeapAllocateCount  atomic.Int64
	FreeCount          atomic.Int64
	FreeBytes          atomic.Int64
	CopyCount          atomic.Int64
	CopyBytes          atomic.Int64
	GrowCount          atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(bytes int64, offHeap bool, duration time.Duration, err error) {
	b.AllocateCount.Add(1)
	b.AllocateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocateErrors.Add(1)
		return
	}
	b.AllocateBytes.Add(bytes)
	if !offHeap {
		b.HeapAllocateCount.Add(1)
	}
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(bytes int64) {
	b.FreeCount.Add(1)
	b.FreeBytes.Add(bytes)
}

// RecordCopy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCopy(bytes int64) {
	b.CopyCount.Add(1)
	b.CopyBytes.Add(bytes)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, _ int64) {
	b.GrowCount.Add(1)
}

// LiveBytes returns allocated minus freed bytes.
func (b *BasicMetricsCollector) LiveBytes() int64 {
	return b.AllocateBytes.Load() - b.FreeBytes.Load()
}

// AverageAllocateLatency returns the mean allocation latency.
func (b *BasicMetricsCollector) AverageAllocateLatency() time.Duration {
	count := b.AllocateCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(b.AllocateTotalNanos.Load() / count)
}
