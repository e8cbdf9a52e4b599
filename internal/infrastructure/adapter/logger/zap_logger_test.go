package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/adspark/internal/domain/port/core"
)

func TestZapLogger_Levels(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewFromCore(obsCore, core.LogLevelInfo)

	l.Debug("hidden", nil)
	l.Info("shown", map[string]any{"userId": "u1"})
	l.SetLevel(core.LogLevelError)
	l.Warn("hidden too", nil)
	l.Error("failed", map[string]any{"error": errors.New("boom")})

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "shown", entries[0].Message)
	assert.Equal(t, "u1", entries[0].ContextMap()["userId"])
	assert.Equal(t, "failed", entries[1].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, core.LogLevelError, l.GetLevel())
}

func TestZapLogger_With(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewFromCore(obsCore, core.LogLevelDebug)

	child := l.With(map[string]any{"requestId": "r-1"})
	child.Info("handled", map[string]any{"status": 200})

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "r-1", ctx["requestId"])
	assert.EqualValues(t, 200, ctx["status"])

	// the child follows level changes on the parent
	l.SetLevel(core.LogLevelWarn)
	child.Info("dropped", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		"INFO":    core.LogLevelInfo,
		"warning": core.LogLevelWarn,
		"error":   core.LogLevelError,
		"":        core.LogLevelInfo,
		"verbose": core.LogLevelInfo,
	}
	for in, expected := range testCases {
		assert.Equal(t, expected, ParseLevel(in), in)
	}
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(Options{Level: "warn", Format: "json", Output: "stderr"})

	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelDebug)

	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	assert.Same(t, l, l.With(map[string]any{"a": 1}))
	assert.NoError(t, l.Flush())
}
