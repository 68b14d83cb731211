package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	logger, _ := newBufLogger(slog.LevelDebug)

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Debug(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelDebug)

	logger.Debug("partition computed", "algorithm", "round_robin")

	output := buf.String()
	assert.Contains(t, output, "partition computed")
	assert.Contains(t, output, "algorithm=round_robin")
	assert.Contains(t, output, "level=DEBUG")
}

func TestSlogLogger_Info(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelInfo)

	logger.Info("engine configured", "sources", 3)

	output := buf.String()
	assert.Contains(t, output, "engine configured")
	assert.Contains(t, output, "sources=3")
	assert.Contains(t, output, "level=INFO")
}

func TestSlogLogger_Warn(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelWarn)

	logger.Warn("unbalanced partition", "spread", 12)

	output := buf.String()
	assert.Contains(t, output, "unbalanced partition")
	assert.Contains(t, output, "spread=12")
	assert.Contains(t, output, "level=WARN")
}

func TestSlogLogger_Error(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelError)

	logger.Error("partition failed", "error", "no sources")

	output := buf.String()
	assert.Contains(t, output, "partition failed")
	assert.Contains(t, output, "level=ERROR")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelWarn)

	// Debug and Info should be filtered out
	logger.Debug("debug message")
	logger.Info("info message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")

	// Warn and Error should appear
	logger.Warn("warn message")
	logger.Error("error message")

	output = buf.String()
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}
