package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"edenlog/internal/platform/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.Config{LogFormat: config.FormatJSON, LogLevel: slog.LevelInfo})

	log.Debug("hidden")
	log.Info("shown", "key", "value")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "value", line["key"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.Config{LogFormat: config.FormatText, LogLevel: slog.LevelDebug})

	log.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestNewZap(t *testing.T) {
	var buf bytes.Buffer
	zl := NewZap(&buf, config.Config{LogLevel: slog.LevelWarn})

	zl.Info("hidden")
	zl.Warn("shown")
	require.NoError(t, zl.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, zapLevel(slog.LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, zapLevel(slog.LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, zapLevel(slog.LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, zapLevel(slog.LevelError))
}
