package navigator

import (
	"log/slog"

	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetEngineLogLevel sets the level of the engine's own logger. Stale
// transitions and skipped calls are logged at debug.
func SetEngineLogLevel(level string) {
	internal.SetInternalLogLevel(internal.ParseLevel(level))
}

// CloseLog closes the log file, if one was opened.
func CloseLog() {
	internal.CloseLogger()
}
