package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// logSink is the shared destination of the app and engine loggers. The file
// is opened on the first log call so SetLogPath must come before it.
type logSink struct {
	once sync.Once
	path string
	file *os.File
	out  io.Writer
}

func (s *logSink) writer() io.Writer {
	s.once.Do(func() {
		s.out = os.Stderr
		if s.path == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return
		}
		f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return
		}
		s.file = f
		s.out = io.MultiWriter(os.Stderr, f)
	})
	return s.out
}

type leveledLogger struct {
	once   sync.Once
	level  slog.LevelVar
	logger *slog.Logger
}

func (l *leveledLogger) get(initial slog.Level, attrs ...any) *slog.Logger {
	l.once.Do(func() {
		l.level.Set(initial)
		handler := slog.NewJSONHandler(sink.writer(), &slog.HandlerOptions{Level: &l.level})
		l.logger = slog.New(handler).With(attrs...)
	})
	return l.logger
}

var (
	sink           logSink
	appLogger      leveledLogger
	internalLogger leveledLogger
)

// SetLogPath sets the full path of the log file. Parent directories are
// created. Without a path, logs only go to stderr.
func SetLogPath(path string) {
	sink.path = path
}

// GetLogger returns the application-facing logger.
func GetLogger() *slog.Logger {
	return appLogger.get(slog.LevelInfo)
}

// GetInternalLogger returns the logger used by the navigation engine itself.
// It starts at error level so stale transitions and soft no-ops stay quiet.
func GetInternalLogger() *slog.Logger {
	return internalLogger.get(slog.LevelError, "component", "navigator")
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	appLogger.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLogger.level.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLevel(raw))
}

func CloseLogger() {
	if sink.file != nil {
		sink.file.Close()
	}
}
