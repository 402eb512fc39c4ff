package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"  error  ", slog.LevelError},
		{"", DefaultLevel},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "text")

	log.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "json")

	log.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn, "text")

	log.Debug("debug message")
	log.Info("info message")
	assert.Empty(t, buf.String())

	log.Warn("warn message")
	assert.Contains(t, buf.String(), "warn message")
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "text")

	scoped := log.With("tool", "deals_get_details")
	scoped.Info("dispatching")
	assert.Contains(t, buf.String(), "tool=deals_get_details")
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := Nop()
	log.Debug("a")
	log.Info("b")
	log.Warn("c")
	log.Error("d")
	log.With("k", "v").Info("e")
}
