// Package logger provides the diagnostic logger for qfind runs.
//
// Diagnostics go to stderr so stdout carries only search results. Messages are
// leveled and prefixed with [HH:MM:SS] timestamps; level tags are colorized
// when the destination is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/harrison/qfind/internal/display"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = "warn"

// ConsoleLogger logs run diagnostics to a writer with timestamps and thread safety.
// It supports log level filtering to control message verbosity.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	runID       string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to DefaultLevel.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    NormalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// WithRunID tags every subsequent message with the run identifier.
func (cl *ConsoleLogger) WithRunID(runID string) *ConsoleLogger {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.runID = runID
	return cl
}

// isTerminal checks if the writer itself is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return display.ColorEnabled(f)
}

// NormalizeLogLevel converts a log level string to lowercase and validates it.
// Returns DefaultLevel for empty or invalid levels.
func NormalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return DefaultLevel
}

// IsValidLevel reports whether level names a known log level.
func IsValidLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogRunStart logs the parameters of a scan run at INFO level.
func (cl *ConsoleLogger) LogRunStart(mode string, workers int, roots []string) {
	cl.LogInfo(fmt.Sprintf("starting %s search with %d workers in %s",
		mode, workers, strings.Join(roots, ", ")))
}

// LogBatchStart logs the dispatch of a batch at TRACE level.
func (cl *ConsoleLogger) LogBatchStart(batch, size int) {
	cl.LogTrace(fmt.Sprintf("batch %d: dispatching up to %d files", batch, size))
}

// LogBatchComplete logs a finished batch barrier at DEBUG level.
func (cl *ConsoleLogger) LogBatchComplete(batch, size int, duration time.Duration) {
	cl.LogDebug(fmt.Sprintf("batch %d: %d files complete (%s)", batch, size, duration.Round(time.Microsecond)))
}

// logWithLevel logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if cl.runID != "" {
		message = fmt.Sprintf("[%s] %s", shortID(cl.runID), message)
	}

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// colorLevel wraps a level tag in its ANSI color.
func colorLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	default:
		return level
	}
}

// shortID keeps the first block of a UUID, enough to tell runs apart in a log.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// NoOpLogger discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogDebug is a no-op implementation.
func (n *NoOpLogger) LogDebug(message string) {}

// LogBatchStart is a no-op implementation.
func (n *NoOpLogger) LogBatchStart(batch, size int) {}

// LogBatchComplete is a no-op implementation.
func (n *NoOpLogger) LogBatchComplete(batch, size int, duration time.Duration) {}
