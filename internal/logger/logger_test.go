package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ducttape-items/internal/logger"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New(logger.Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "itemctl",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	l.Info("registered item", "name", "rock", "kinds", 6)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "itemctl", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "registered item", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "rock", entry["name"])
	assert.Equal(t, float64(6), entry["kinds"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "warn", Format: "text"}, &buf)

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestLogLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.expected, logger.Config{Level: tc.level}.LogLevel())
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	logger.InitWithWriter(logger.Config{Level: "info", Format: "json"}, &buf)

	ctx := logger.WithRequestID(context.Background(), "req-123")
	id, ok := logger.RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-123", id)

	logger.FromContext(ctx).Info("added stack")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])

	_, ok = logger.RequestIDFromContext(context.Background())
	assert.False(t, ok)
	assert.NotEmpty(t, logger.GenerateRequestID())
}
