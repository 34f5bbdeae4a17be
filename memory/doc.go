// Package memory provides bounds-checked arenas of raw bytes that live outside
// the Go heap.
//
// # Overview
//
// An Allocator hands out Memory values. By default each Memory is backed by an
// anonymous mapping obtained from the operating system, so the garbage
// collector never scans or copies it. Accessors are addressed by int64 byte
// offset, which keeps arena sizes independent of 32-bit element counts.
//
//	alloc := memory.NewAllocator(memory.WithMemoryLimit(1 << 30))
//	m, err := alloc.Allocate(4096)
//	if err != nil { ... }
//	defer m.Free()
//
//	m.PutInt32(0, 42)
//	v := m.GetInt32(0)
//
// # Backing
//
// BackingAuto (default) maps anonymous memory and falls back to a heap slice if
// the mapping fails. BackingOffHeap never falls back; BackingHeap always uses
// the heap. Contents of a fresh arena are unspecified.
//
// # Ownership
//
// A Memory is owned by exactly one holder. Free releases it; Free is
// idempotent and may be called from any goroutine, including concurrently with
// another Free. A runtime cleanup releases arenas that become unreachable
// without an explicit Free. Both paths share one atomic guard, so memory is
// never released twice.
//
// # Errors
//
// Offsets outside [0, Len()) are programmer errors: accessors panic with an
// *OutOfBoundsError, mirroring Go's own slice bounds checks. Accessing a freed
// arena panics with ErrFreed. Allocation failures are returned as errors.
package memory
