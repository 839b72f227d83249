package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primedex/internal/config"
)

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	filtered := NewLevelFilter(inner, slog.LevelWarn)
	logger := slog.New(filtered)

	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("also kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "also kept")
}

func TestLevelFilter_Enabled(t *testing.T) {
	inner := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	filtered := NewLevelFilter(inner, slog.LevelWarn)

	ctx := context.Background()
	assert.False(t, filtered.Enabled(ctx, slog.LevelInfo))
	assert.True(t, filtered.Enabled(ctx, slog.LevelWarn))
	assert.True(t, filtered.Enabled(ctx, slog.LevelError))
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	logger := slog.New(handler)

	logger.Info("hello", "k", "v")

	assert.Contains(t, a.String(), "hello")
	assert.Contains(t, b.String(), `"msg":"hello"`)
}

func TestMultiHandler_RespectsPerHandlerLevels(t *testing.T) {
	var debugOut, errorOut bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&debugOut, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorOut, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(handler)

	logger.Info("info only")

	assert.Contains(t, debugOut.String(), "info only")
	assert.Empty(t, errorOut.String())
}

func TestNewLogger_FileOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultLoggingConfig()
	cfg.Dir = dir
	cfg.Console.Enabled = false
	cfg.File.Enabled = true

	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	logger.Info("plain info")
	logger.Error("an error")
	require.NoError(t, Shutdown())

	mainLog, err := os.ReadFile(filepath.Join(dir, "primedex.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "plain info")
	assert.Contains(t, string(mainLog), "an error")

	errLog, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(errLog), "plain info")
	assert.Contains(t, string(errLog), "an error")
}

func TestNewLogger_NoOutputsStillWorks(t *testing.T) {
	cfg := config.DefaultLoggingConfig()
	cfg.Console.Enabled = false
	cfg.File.Enabled = false

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotPanics(t, func() { logger.Info("discarded") })
}
