package quoter

// Logger defines a structured logging interface compatible with slog.
//
// This interface is intentionally compatible with *slog.Logger from the standard library,
// allowing direct usage of slog loggers without adapters.
//
// Quoting never blocks, so the logger is called without a context.
//
// Example using slog:
//
//	import "log/slog"
//
//	q := quoter.New(redshift.Config(), quoter.WithLogger(slog.Default()))
type Logger interface {
	// Debug logs a diagnostic message with structured fields.
	// Compatible with slog.Logger.Debug.
	Debug(msg string, args ...any)

	// Warn logs a warning message with structured fields.
	// Compatible with slog.Logger.Warn.
	Warn(msg string, args ...any)
}

// noopLogger is a no-op logger implementation that discards all log messages.
// Used as the default when no logger is configured.
type noopLogger struct{}

func (n *noopLogger) Debug(msg string, args ...any) {}
func (n *noopLogger) Warn(msg string, args ...any)  {}

// defaultLogger returns the default noop logger.
func defaultLogger() Logger {
	return &noopLogger{}
}
