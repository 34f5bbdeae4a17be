package memory

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/hupe1980/offheap/internal/mmap"
)

// Memory is a fixed-length arena of bytes addressed by int64 offset.
//
// Memory is not safe for concurrent mutation. Free is the exception: it may be
// called any number of times from any goroutine.
type Memory struct {
	data   []byte
	length int64
	alloc  *Allocator
	rel    *release
}

// release holds everything needed to give an arena back. It must not reference
// the Memory itself, or the runtime cleanup could never run.
type release struct {
	mapping *mmap.Mapping // nil for heap-backed and empty arenas
	bytes   int64
	alloc   *Allocator
	done    atomic.Bool
}

func (r *release) run(reclaimed bool) {
	if r.done.Swap(true) {
		return // Already released
	}

	var err error
	if r.mapping != nil {
		err = r.mapping.Close()
	}
	r.alloc.controller.ReleaseMemory(r.bytes)
	r.alloc.opts.metricsCollector.RecordFree(r.bytes)
	r.alloc.opts.logger.LogFree(r.bytes, reclaimed, err)
}

func newMemory(a *Allocator, data []byte, mapping *mmap.Mapping, length int64) *Memory {
	m := &Memory{
		data:   data,
		length: length,
		alloc:  a,
		rel: &release{
			mapping: mapping,
			bytes:   length,
			alloc:   a,
		},
	}
	runtime.AddCleanup(m, func(r *release) { r.run(true) }, m.rel)
	return m
}

// Len returns the arena length in bytes.
func (m *Memory) Len() int64 {
	return m.length
}

// IsOffHeap reports whether the arena lives in an anonymous mapping rather
// than on the Go heap. Empty arenas hold no memory and report the backing
// their allocator would map new arenas with.
func (m *Memory) IsOffHeap() bool {
	if m.length == 0 {
		return m.alloc.opts.backing != BackingHeap
	}
	return m.rel.mapping != nil
}

// IsFreed reports whether Free has been called.
func (m *Memory) IsFreed() bool {
	return m.rel.done.Load()
}

// GetInt32 reads the native-endian int32 stored at offset.
func (m *Memory) GetInt32(offset int64) int32 {
	m.check(offset, 4)
	v := int32(binary.NativeEndian.Uint32(m.data[offset : offset+4])) //nolint:gosec // bit pattern reinterpretation
	runtime.KeepAlive(m)
	return v
}

// PutInt32 writes v at offset in native byte order.
func (m *Memory) PutInt32(offset int64, v int32) {
	m.check(offset, 4)
	binary.NativeEndian.PutUint32(m.data[offset:offset+4], uint32(v)) //nolint:gosec // bit pattern reinterpretation
	runtime.KeepAlive(m)
}

// Copy copies length bytes starting at srcOffset into dst starting at dstOffset.
// dst may be m itself; overlapping ranges are handled like the builtin copy.
func (m *Memory) Copy(srcOffset int64, dst *Memory, dstOffset int64, length int64) {
	m.check(srcOffset, length)
	dst.check(dstOffset, length)
	copy(dst.data[dstOffset:dstOffset+length], m.data[srcOffset:srcOffset+length])
	runtime.KeepAlive(m)
	runtime.KeepAlive(dst)
	m.alloc.opts.metricsCollector.RecordCopy(length)
}

// Clone returns an independent deep copy allocated from the same allocator.
func (m *Memory) Clone() (*Memory, error) {
	if m.IsFreed() {
		return nil, ErrFreed
	}
	c, err := m.alloc.Allocate(m.length)
	if err != nil {
		return nil, err
	}
	m.Copy(0, c, 0, m.length)
	return c, nil
}

// Free releases the arena. It is idempotent and safe to call concurrently.
// Any access after Free panics with ErrFreed.
func (m *Memory) Free() {
	m.rel.run(false)
}

func (m *Memory) check(offset, width int64) {
	if m.rel.done.Load() {
		panic(ErrFreed)
	}
	if offset < 0 || width < 0 || offset > m.length-width {
		panic(&OutOfBoundsError{Offset: offset, Width: width, Length: m.length})
	}
}

func (m *Memory) String() string {
	return fmt.Sprintf("Memory{length: %d, offHeap: %t, freed: %t}", m.length, m.IsOffHeap(), m.IsFreed())
}
