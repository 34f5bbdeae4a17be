package memory

import (
	"errors"
	"math"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetPutInt32(t *testing.T) {
	for _, backing := range []Backing{BackingAuto, BackingOffHeap, BackingHeap} {
		t.Run(backing.String(), func(t *testing.T) {
			a := NewAllocator(WithBacking(backing))
			m, err := a.Allocate(16)
			require.NoError(t, err)
			defer m.Free()

			m.PutInt32(0, 41)
			m.PutInt32(4, 42)
			m.PutInt32(8, math.MinInt32)
			m.PutInt32(12, math.MaxInt32)

			assert.Equal(t, int64(16), m.Len())
			assert.Equal(t, int32(41), m.GetInt32(0))
			assert.Equal(t, int32(42), m.GetInt32(4))
			assert.Equal(t, int32(math.MinInt32), m.GetInt32(8))
			assert.Equal(t, int32(math.MaxInt32), m.GetInt32(12))
			assert.Equal(t, backing != BackingHeap, m.IsOffHeap())
		})
	}
}

func TestMemory_UnalignedOffset(t *testing.T) {
	m, err := Allocate(8)
	require.NoError(t, err)
	defer m.Free()

	m.PutInt32(1, -7)
	assert.Equal(t, int32(-7), m.GetInt32(1))
}

func TestMemory_OutOfBounds(t *testing.T) {
	m, err := Allocate(8)
	require.NoError(t, err)
	defer m.Free()

	tests := []struct {
		name string
		fn   func()
	}{
		{"get negative", func() { m.GetInt32(-1) }},
		{"get past end", func() { m.GetInt32(5) }},
		{"put past end", func() { m.PutInt32(8, 1) }},
		{"copy past end", func() { m.Copy(4, m, 0, 8) }},
		{"copy negative length", func() { m.Copy(0, m, 0, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, ErrOutOfBounds)

				var oob *OutOfBoundsError
				require.True(t, errors.As(err, &oob))
				assert.Equal(t, int64(8), oob.Length)
			}()
			tt.fn()
		})
	}
}

func TestMemory_Copy(t *testing.T) {
	src, err := Allocate(16)
	require.NoError(t, err)
	defer src.Free()

	dst, err := Allocate(32)
	require.NoError(t, err)
	defer dst.Free()

	for i := int64(0); i < 4; i++ {
		src.PutInt32(i*4, int32(i+1))
	}

	src.Copy(0, dst, 8, 16)
	for i := int64(0); i < 4; i++ {
		assert.Equal(t, int32(i+1), dst.GetInt32(8+i*4))
	}
}

func TestMemory_Clone(t *testing.T) {
	m, err := Allocate(8)
	require.NoError(t, err)
	defer m.Free()

	m.PutInt32(0, 1)
	m.PutInt32(4, 2)

	c, err := m.Clone()
	require.NoError(t, err)
	defer c.Free()

	c.PutInt32(0, 100)
	assert.Equal(t, int32(1), m.GetInt32(0))
	assert.Equal(t, int32(100), c.GetInt32(0))
	assert.Equal(t, int32(2), c.GetInt32(4))

	m.Free()
	_, err = m.Clone()
	assert.ErrorIs(t, err, ErrFreed)
}

func TestMemory_Empty(t *testing.T) {
	m, err := Allocate(0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), m.Len())
	assert.True(t, m.IsOffHeap())
	assert.Panics(t, func() { m.GetInt32(0) })

	m.Free()
	assert.True(t, m.IsFreed())
}

func TestMemory_EmptyHeapBacking(t *testing.T) {
	m, err := NewAllocator(WithBacking(BackingHeap)).Allocate(0)
	require.NoError(t, err)
	defer m.Free()

	assert.False(t, m.IsOffHeap())
}

func TestMemory_FreeIdempotent(t *testing.T) {
	mc := &BasicMetricsCollector{}
	a := NewAllocator(WithMetricsCollector(mc))

	m, err := a.Allocate(64)
	require.NoError(t, err)
	assert.Equal(t, int64(64), a.MemoryUsage())

	m.Free()
	m.Free()
	m.Free()

	assert.True(t, m.IsFreed())
	assert.Equal(t, int64(0), a.MemoryUsage())
	assert.Equal(t, int64(1), mc.FreeCount.Load())

	defer func() {
		assert.Equal(t, ErrFreed, recover())
	}()
	m.GetInt32(0)
}

func TestMemory_UnreachableArenaIsReclaimed(t *testing.T) {
	mc := &BasicMetricsCollector{}
	a := NewAllocator(WithMemoryLimit(1<<20), WithMetricsCollector(mc))

	func() {
		m, err := a.Allocate(4096)
		require.NoError(t, err)
		m.PutInt32(0, 1)
	}()

	assert.Eventually(t, func() bool {
		runtime.GC()
		return mc.FreeCount.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, int64(0), a.MemoryUsage())
	assert.Equal(t, int64(1), mc.FreeCount.Load())
}

func TestMemory_FreeAfterCleanup(t *testing.T) {
	mc := &BasicMetricsCollector{}
	a := NewAllocator(WithMetricsCollector(mc))

	m, err := a.Allocate(64)
	require.NoError(t, err)

	// Run what the runtime cleanup runs, then release explicitly.
	m.rel.run(true)
	assert.True(t, m.IsFreed())
	assert.Equal(t, int64(0), a.MemoryUsage())

	m.Free()
	assert.Equal(t, int64(1), mc.FreeCount.Load())
	assert.Equal(t, int64(64), mc.FreeBytes.Load())
}

func TestMemory_ConcurrentFree(t *testing.T) {
	mc := &BasicMetricsCollector{}
	a := NewAllocator(WithMetricsCollector(mc))

	m, err := a.Allocate(4096)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Free()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), mc.FreeCount.Load())
	assert.Equal(t, int64(0), a.MemoryUsage())
}

func TestMemory_String(t *testing.T) {
	m, err := NewAllocator(WithBacking(BackingHeap)).Allocate(4)
	require.NoError(t, err)
	defer m.Free()

	assert.Equal(t, "Memory{length: 4, offHeap: false, freed: false}", m.String())
}

func BenchmarkMemory_GetPutInt32(b *testing.B) {
	const n = 1 << 16
	m, err := Allocate(n * 4)
	require.NoError(b, err)
	defer m.Free()

	b.ReportAllocs()
	for b.Loop() {
		for i := int64(0); i < n; i++ {
			m.PutInt32(i*4, m.GetInt32(i*4)+1)
		}
	}
}
