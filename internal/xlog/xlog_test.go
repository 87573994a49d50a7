package xlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gslf/xcdn-go/internal/xlog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in          string
		want        slog.Level
		expectError bool
	}{
		"error":       {"error", slog.LevelError, false},
		"warn":        {"warn", slog.LevelWarn, false},
		"warning":     {"warning", slog.LevelWarn, false},
		"info":        {"info", slog.LevelInfo, false},
		"empty defaults to info": {"", slog.LevelInfo, false},
		"debug":       {"debug", slog.LevelDebug, false},
		"unknown":     {"bogus", 0, true},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := xlog.ParseLevel(tc.in)
			if tc.expectError {
				require.ErrorIs(t, err, xlog.ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in          string
		want        xlog.Format
		expectError bool
	}{
		"json":    {"json", xlog.FormatJSON, false},
		"text":    {"text", xlog.FormatText, false},
		"empty defaults to text": {"", xlog.FormatText, false},
		"unknown": {"bogus", "", true},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := xlog.ParseFormat(tc.in)
			if tc.expectError {
				require.ErrorIs(t, err, xlog.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewHandlerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler, err := xlog.NewHandler(&buf, "info", "json")
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewHandlerRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := xlog.NewHandler(&bytes.Buffer{}, "nonsense", "json")
	require.ErrorIs(t, err, xlog.ErrUnknownLevel)

	_, err = xlog.NewHandler(&bytes.Buffer{}, "info", "nonsense")
	require.ErrorIs(t, err, xlog.ErrUnknownFormat)
}
