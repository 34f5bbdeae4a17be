package offheapint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/offheap/testutil"
)

// sliceSeq is a heap-backed Addressable used to check that the algorithms
// depend only on the interface.
type sliceSeq []int32

func (s sliceSeq) Get(i int64) int32    { return s[i] }
func (s sliceSeq) Set(i int64, v int32) { s[i] = v }
func (s sliceSeq) Size() int64          { return int64(len(s)) }

func gendata(n int) []int32 {
	return testutil.NewRNG(42).Int32s(n)
}

func newArrayFrom(t testing.TB, values []int32) *Array {
	t.Helper()
	a, err := NewArray(int64(len(values)))
	require.NoError(t, err)
	for i, v := range values {
		a.Set(int64(i), v)
	}
	return a
}

func toSlice(s Addressable) []int32 {
	res := make([]int32, 0, s.Size())
	for v := range Values(s) {
		res = append(res, v)
	}
	return res
}

func assertIndexPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrIndexOutOfBounds)

		var oob *IndexOutOfBoundsError
		assert.True(t, errors.As(err, &oob))
	}()
	fn()
}
