// Package resource tracks and limits off-heap memory.
//
// Every arena allocation reserves its byte length from a Controller before
// mapping memory and gives it back when the arena is freed. Tracking uses
// atomic counters; an optional hard limit is enforced with a weighted
// semaphore:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(4096)
//
// AcquireMemory never blocks. Allocation is a synchronous operation, so the
// caller decides whether to free something and retry.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional accounting without nil checks everywhere.
package resource
