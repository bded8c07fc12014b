package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tripsplit.mtransit.org/internal/tripspec"
)

// loggerKey is used to store the logger in context
type loggerKey struct{}

// NewStructuredLogger creates a new structured logger with JSON output
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

// LogError logs an error with structured context
func LogError(logger *slog.Logger, message string, err error, attrs ...slog.Attr) {
	if logger == nil {
		return
	}

	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("error", err.Error()))

	for _, attr := range attrs {
		args = append(args, attr)
	}

	logger.Error(message, args...)
}

// LogOperation logs an operation with structured context
func LogOperation(logger *slog.Logger, operation string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}

	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		// Skip zero-value durations
		if attr.Key == "duration" && attr.Value.Kind() == slog.KindDuration && attr.Value.Duration() == 0 {
			continue
		}
		args = append(args, attr)
	}

	logger.Info(operation, args...)
}

// LogHTTPRequest logs HTTP request details
func LogHTTPRequest(logger *slog.Logger, method, path string, status int, durationMs float64, attrs ...slog.Attr) {
	if logger == nil {
		return
	}

	args := make([]any, 0, len(attrs)+4)
	args = append(args,
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("duration_ms", durationMs),
	)

	for _, attr := range attrs {
		args = append(args, attr)
	}

	logger.Info("http_request", args...)
}

// LogSplitOutcome logs the result of splitting one trip. Successful and
// deferred trips are logged at debug level, ambiguous trips as warnings and
// anything else as errors.
func LogSplitOutcome(logger *slog.Logger, routeID, tripID string, err error) {
	if logger == nil {
		return
	}

	attrs := []any{
		slog.String("route_id", routeID),
		slog.String("trip_id", tripID),
	}

	switch {
	case err == nil:
		logger.Debug("trip_split", attrs...)
	case errors.Is(err, tripspec.ErrNoSpecForRoute):
		logger.Debug("trip_deferred", attrs...)
	case errors.Is(err, tripspec.ErrAmbiguousDirection):
		logger.Warn("trip_ambiguous", append(attrs, slog.String("error", err.Error()))...)
	default:
		logger.Error("trip_split_failed", append(attrs, slog.String("error", err.Error()))...)
	}
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves a logger from the context, or returns a default logger
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	// Return a default logger if none is found
	return slog.Default()
}

// ReplaceLogFatal logs err and returns it wrapped with message, for callers
// that would otherwise exit on the spot.
func ReplaceLogFatal(logger *slog.Logger, message string, err error) error {
	wrappedErr := fmt.Errorf("%s: %w", message, err)

	if logger != nil {
		LogError(logger, message, err)
	}

	return wrappedErr
}
