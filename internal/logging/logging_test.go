package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/internal/logging"
)

func TestNew_JSONDuration(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, logging.Options{Format: "json"})
	require.NoError(t, err)

	logger.Info("mst computed", "elapsed", 1500*time.Microsecond, "total", int64(42))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "mst computed", rec["msg"])
	assert.Equal(t, "1.5ms", rec["elapsed"])
	assert.EqualValues(t, 42, rec["total"])
}

func TestNew_TextLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, logging.Options{Level: slog.LevelWarn})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("graph load failed", "size", 10)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="graph load failed"`)
	assert.Contains(t, out, "size=10")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, logging.Options{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}
