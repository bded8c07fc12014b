package logging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsplit.mtransit.org/internal/tripspec"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("writes JSON records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("route specs loaded",
			slog.String("component", "appconf"),
			slog.Int("routes", 5))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"route specs loaded"`)
		assert.Contains(t, output, `"component":"appconf"`)
		assert.Contains(t, output, `"routes":5`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to refresh static GTFS", assert.AnError,
			slog.String("source", "http://example.com/gtfs.zip"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to refresh static GTFS"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"source":"http://example.com/gtfs.zip"`)
	})

	t.Run("LogOperation skips zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "batch_split_finished",
			slog.Int("routes", 3),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"msg":"batch_split_finished"`)
		assert.Contains(t, output, `"routes":3`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogHTTPRequest", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "GET", "/api/where/route-trip-spec/1", 200, 1.5,
			slog.String("user_agent", "test-client"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/where/route-trip-spec/1"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"user_agent":"test-client"`)
	})

	t.Run("nil logger is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogError(nil, "x", assert.AnError)
			LogOperation(nil, "x")
			LogHTTPRequest(nil, "GET", "/", 200, 0)
			LogSplitOutcome(nil, "1", "t", nil)
		})
	})
}

func TestLogSplitOutcome(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
		msg   string
	}{
		{"classified", nil, "DEBUG", "trip_split"},
		{"deferred", fmt.Errorf("route 4: %w", tripspec.ErrNoSpecForRoute), "DEBUG", "trip_deferred"},
		{"ambiguous", &tripspec.AmbiguousDirectionError{RouteID: "1", TripID: "t"}, "WARN", "trip_ambiguous"},
		{"no anchor overlap", &tripspec.NoAnchorOverlapError{RouteID: "1", TripID: "t"}, "ERROR", "trip_split_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewStructuredLogger(&buf, slog.LevelDebug)

			LogSplitOutcome(logger, "1", "t", tt.err)

			output := buf.String()
			assert.Contains(t, output, fmt.Sprintf(`"level":"%s"`, tt.level))
			assert.Contains(t, output, fmt.Sprintf(`"msg":"%s"`, tt.msg))
			assert.Contains(t, output, `"route_id":"1"`)
			assert.Contains(t, output, `"trip_id":"t"`)
			if tt.level == "WARN" || tt.level == "ERROR" {
				assert.Contains(t, output, `"error":`)
			}
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)
		retrieved := FromContext(ctx)
		require.NotNil(t, retrieved)

		retrieved.Info("test from context")
		assert.Contains(t, buf.String(), "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
		assert.Same(t, slog.Default(), logger)
	})
}

func TestReplaceLogFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelError)

	result := ReplaceLogFatal(logger, "failed to load route specs", assert.AnError)

	assert.ErrorIs(t, result, assert.AnError)
	assert.Contains(t, result.Error(), "failed to load route specs")

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"msg":"failed to load route specs"`)
}
