package memory

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LogGrowThrottled(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	for i := int64(0); i < 100; i++ {
		l.LogGrow(i, i+1)
	}

	assert.Equal(t, 1, strings.Count(buf.String(), "sequence grown"))
}

func TestLogger_WithComponentSharesThrottle(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := l.WithComponent("offheapint")

	l.LogGrow(0, 24)
	c.LogGrow(24, 48)

	assert.Equal(t, 1, strings.Count(buf.String(), "sequence grown"))
}

func TestLogger_Errors(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.LogAllocate(8, true, errors.New("boom"))
	l.LogFree(8, true, nil)

	out := buf.String()
	assert.Contains(t, out, "allocate failed")
	assert.Contains(t, out, "error=boom")
	assert.NotContains(t, out, "free completed")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
