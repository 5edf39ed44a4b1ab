package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lialoonk/sql-query-parser/logger"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: slog.LevelWarn, Format: "text", Writer: &buf})

	log.Debug("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	log.Info("message", "key", "value")
	require.Contains(t, buf.String(), `"key":"value"`)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	config := logger.LoadConfig()
	assert.Equal(t, slog.LevelWarn, config.Level)
	assert.Equal(t, "text", config.Format)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	config := logger.LoadConfig()
	assert.Equal(t, slog.LevelDebug, config.Level)
	assert.Equal(t, "json", config.Format)
}
