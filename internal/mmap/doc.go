// Package mmap provides anonymous memory mappings for off-heap storage.
//
// # Overview
//
// An anonymous mapping is a read-write region obtained directly from the
// operating system. The Go garbage collector neither scans nor moves it, so
// large integer sequences can live there without adding heap pressure.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	m.Advise(mmap.AccessRandom)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op)
//
// # Thread Safety
//
// Close is idempotent and guarded by an atomic flag, so it may race with
// itself (for example an explicit release against a runtime cleanup).
// Callers must ensure no goroutine touches Bytes() after Close returns.
package mmap
