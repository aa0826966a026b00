// Package applog defines the structured-logging interface shared by the
// core packages that log (the source filters, merge, validate, sink/dbv1,
// pipeline). It is intentionally minimal so it stays compatible with
// popular logging libraries, and ships adapters for the standard library's
// slog and for zap.
package applog

import "log/slog"

// Logger is the structured logging interface used throughout the pipeline.
// Implementations should treat attrs as alternating key-value pairs, the same
// convention log/slog uses.
type Logger interface {
	// Debug logs at debug level. Use for verbose per-record diagnostics.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for stage/run-level operational events.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for recovered or ignorable problems, e.g.
	// a skipped summit or a missing official name falling back to an
	// alternate.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use for failures that abort a run.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every
	// subsequent log call.
	With(attrs ...any) Logger
}

// NopLogger discards everything logged through it. It is the default logger
// used when none is configured.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() if logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
