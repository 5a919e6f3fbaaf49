package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/vaxtrack/internal/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger(&logger.LogConfig{
		Level:       "info",
		Format:      "json",
		Writer:      &buf,
		ServiceName: "vaxtrack",
	})

	l.Info("registered vaccine batch", slog.String("batch_id", "AB12"))

	entry := decode(t, &buf)
	assert.Equal(t, "registered vaccine batch", entry["msg"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "AB12", entry["batch_id"])
	assert.Equal(t, "vaxtrack", entry["service"])
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger(&logger.LogConfig{Level: "warn", Format: "json", Writer: &buf})

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestContextHandler_ExtractsKeys(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger(&logger.LogConfig{Level: "debug", Format: "json", Writer: &buf})

	ctx := logger.WithValue(context.Background(), logger.ContextKeyCommand, "c")
	ctx = logger.WithValue(ctx, logger.ContextKeyLine, 3)
	ctx = logger.NewSessionContext(ctx)

	l.InfoContext(ctx, "processed command")

	entry := decode(t, &buf)
	assert.Equal(t, "c", entry["command"])
	assert.EqualValues(t, 3, entry["line"])
	assert.NotEmpty(t, entry["session_id"])
}

func TestSanitizationHandler_RedactsRecipients(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger(&logger.LogConfig{Level: "info", Format: "json", Writer: &buf})

	l.With(slog.String("recipient", "Jane Doe")).Info("recorded", slog.String("user", "John Doe"))

	out := buf.String()
	assert.NotContains(t, out, "John Doe")
	assert.NotContains(t, out, "Jane Doe")
	assert.Contains(t, out, "***REDACTED***")
}

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger(&logger.LogConfig{Level: "info", Format: "text", Writer: &buf})

	l.With(slog.String("component", "batch_registry")).Info("registered vaccine batch", slog.Int("doses", 5))

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "registered vaccine batch")
	assert.Contains(t, line, "component=batch_registry")
	assert.Contains(t, line, "doses=5")

	buf.Reset()
	l.Debug("hidden")
	assert.Zero(t, buf.Len())
}
