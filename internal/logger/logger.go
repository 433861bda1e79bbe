// Package logger provides verbose logging for the clipscope CLI.
// When verbose mode is enabled via the --verbose flag, debug and info
// messages are printed to stderr so users can follow a parse cycle through
// extraction, classification and analysis. Warnings are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is a message severity.
type Level int

// Message levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

func (l Level) tag() string {
	switch l {
	case LevelDebug:
		return "[DEBUG]"
	case LevelInfo:
		return "[INFO]"
	default:
		return "[WARN]"
	}
}

var (
	mu         sync.RWMutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr
	now                  = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetTimestamps prefixes each line with a wall-clock time.
// Long-running commands such as watch turn this on.
func SetTimestamps(v bool) {
	mu.Lock()
	defer mu.Unlock()
	timestamps = v
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Logger tags every message with a component name.
type Logger struct {
	component string
}

// With returns a logger whose messages are tagged with component.
func With(component string) Logger {
	return Logger{component: component}
}

// Debug prints a message if verbose mode is enabled.
func (l Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Info prints an informational message if verbose mode is enabled.
func (l Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warn prints a warning message.
func (l Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

func (l Logger) log(level Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if level < LevelWarn && !verbose {
		return
	}

	prefix := level.tag() + " "
	if timestamps {
		prefix = now().Format("15:04:05.000") + " " + prefix
	}
	if l.component != "" {
		prefix += l.component + ": "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { Logger{}.log(LevelDebug, format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { Logger{}.log(LevelInfo, format, args...) }

// Warn prints a warning message.
func Warn(format string, args ...any) { Logger{}.log(LevelWarn, format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
