package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debug("msg", "k", "v")
		l.Info("msg")
		l.Warn("msg")
		l.Error("msg")
		l.With("k", "v").Debug("msg")
	})
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler)).With("component", "test")

	l.Debug("applied", "index", 2)
	l.Warn("skipped")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=applied")
	assert.Contains(t, out, "index=2")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "level=WARN")

	assert.NotNil(t, NewSlogAdapter(nil))
}

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	l := NewZerologAdapter(zl).With("component", "test")

	l.Info("applied", "index", 3, "path", "/a/b")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "applied", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, float64(3), entry["index"])
	assert.Equal(t, "/a/b", entry["path"])
}

func TestZerologAdapterOddAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf))

	l.Error("odd", 42, "answer", "dangling")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "answer", entry["42"])
	assert.Equal(t, "dangling", entry["!BADKEY"])
}

func TestZerologAdapterErrors(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf)).With("cause", errors.New("outer"))

	l.Error("failed", "error", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "outer", entry["cause"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.WarnLevel))

	l.Debug("hidden", "k", "v")
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}
