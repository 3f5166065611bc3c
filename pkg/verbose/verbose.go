// Package verbose provides debug logging gated by the --verbose flag.
//
// Messages go through a charmbracelet/log logger writing to stderr, so they
// never mix with the pod names printed on stdout. Debug and info messages are
// only shown once Enable has been called; warnings are always shown.
package verbose

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, log.WarnLevel)
)

// newLogger creates a logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// currentLevel returns the level matching the enabled flag. Callers hold mu.
func currentLevel() log.Level {
	if enabled {
		return log.DebugLevel
	}
	return log.WarnLevel
}

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	logger.SetLevel(currentLevel())
}

// Disable turns off verbose logging. Warnings are still printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
	logger.SetLevel(currentLevel())
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for log messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
		logger = newLogger(w, currentLevel())
	}
}

// Writer returns the current log destination.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Logger returns the underlying structured logger.
//
// Returns:
//   - *log.Logger: The logger used by every helper in this package
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Printf logs a formatted debug message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	Logger().Debugf(format, args...)
}

// Info logs an informational message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	Logger().Info(msg)
}

// Infof logs a formatted informational message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	Logger().Infof(format, args...)
}

// Warnf logs a formatted warning. Warnings are printed even when verbose is off.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	Logger().Warnf(format, args...)
}

// Debug logs a message with structured key/value pairs if enabled.
//
// Parameters:
//   - msg: The message
//   - keyvals: Alternating keys and values
func Debug(msg string, keyvals ...any) {
	Logger().Debug(msg, keyvals...)
}

// ConfigLoaded logs which configuration file was used.
//
// Parameters:
//   - path: The config file path, or "" for built-in defaults
func ConfigLoaded(path string) {
	if path == "" {
		Info("Using built-in default configuration")
		return
	}
	Debug("config loaded", "path", path)
}

// Progress tracks the start time of an operation and logs completion with
// elapsed duration. It is safe for sequential use by a single goroutine.
type Progress struct {
	start time.Time
}

// Start creates a progress tracker that captures the current time.
//
// Returns:
//   - *Progress: Tracker whose Done method logs the elapsed time
func Start() *Progress {
	return &Progress{start: time.Now()}
}

// Done logs msg along with the elapsed time since Start.
// Example output: "Loaded 42 pods (1.234s)"
//
// Parameters:
//   - format: Printf-style message format
//   - args: Format arguments
func (p *Progress) Done(format string, args ...any) {
	args = append(args, time.Since(p.start).Round(time.Millisecond))
	Infof(format+" (%s)", args...)
}
