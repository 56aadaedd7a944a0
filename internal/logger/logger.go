// Package logger writes trellis debug logs to a file. The preview TUI owns
// the terminal, so nothing is ever logged to stdout or stderr.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar) // allows dynamic level changes
	logFile    *os.File
	mu         sync.Mutex
	logPath    string
	initDone   bool
	debug      bool
)

// DefaultLogPath returns the log file used when no path is configured.
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), "trellis-debug.log")
}

// SetDebug toggles debug level logging.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	levelVar.Set(levelFor(enabled))
}

func levelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Init opens path for appending and routes all log output to it. An empty
// path means DefaultLogPath. Calling Init again without Reset is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	if path == "" {
		path = DefaultLogPath()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("logger: open %s: %w", path, err)
	}
	logFile = f
	logPath = path
	levelVar.Set(levelFor(debug))
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("logger initialized", "path", path)
	return nil
}

// ensureInit installs a discarding logger when Init was never called, so
// library code can log unconditionally. Callers must hold mu.
func ensureInit() {
	if slogLogger == nil {
		slogLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}))
	}
}

// Path returns the file currently being written, or "" before Init.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func logWithLevel(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message (only when debug logging is enabled).
func Debug(format string, args ...any) {
	logWithLevel(slog.LevelDebug, format, args...)
}

// Info writes an info message.
func Info(format string, args ...any) {
	logWithLevel(slog.LevelInfo, format, args...)
}

// Warn writes a warning message.
func Warn(format string, args ...any) {
	logWithLevel(slog.LevelWarn, format, args...)
}

// Error writes an error message.
func Error(format string, args ...any) {
	logWithLevel(slog.LevelError, format, args...)
}

// ComponentLogger returns a slog.Logger with the component attribute
// pre-attached.
//
//	log := logger.ComponentLogger("preview")
//	log.Debug("layout solved", "width", w, "height", h)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	return slogLogger.With(slog.String("component", component))
}

// Close closes the log file. Later messages are discarded.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset restores the initial state, allowing Init to be called again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	logPath = ""
	slogLogger = nil
	debug = false
	levelVar = new(slog.LevelVar)
}
