// Package diag writes the wrapper's own diagnostic lines. Every record is a
// single line on one writer so that it interleaves cleanly with the output
// of the compiler being wrapped.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Level represents the severity level of a log message
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	levelOff
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case levelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Format defines how the level is rendered in front of a message
type Format int

const (
	FormatTagged Format = iota // [INFO] [WARN] [ERROR] [DEBUG], or the prefixes set with SetPrefix
	FormatPlain                // No prefix
)

// Logger is a leveled line logger. A nil *Logger discards everything.
type Logger struct {
	out        io.Writer
	format     Format
	prefixes   map[Level]string
	min        Level
	withTime   bool
	timeFormat string
}

// New creates a tagged logger writing to w at LevelInfo and above.
// A nil w means os.Stderr.
func New(w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		out:        w,
		format:     FormatTagged,
		prefixes:   defaultTaggedPrefixes(),
		min:        LevelInfo,
		timeFormat: "15:04:05",
	}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger { return New(io.Discard).WithLevel(levelOff) }

func defaultTaggedPrefixes() map[Level]string {
	return map[Level]string{
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format Format) *Logger {
	l.format = format
	return l
}

// SetPrefix sets a custom prefix for a specific log level
func (l *Logger) SetPrefix(level Level, prefix string) *Logger {
	if l.prefixes == nil {
		l.prefixes = make(map[Level]string)
	}
	l.prefixes[level] = prefix
	return l
}

// WithLevel sets the lowest level that is written
func (l *Logger) WithLevel(min Level) *Logger {
	l.min = min
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// Enabled reports whether a record at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.min && level < levelOff
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	// one record, one line
	msg = strings.ReplaceAll(msg, "\n", " ")
	fmt.Fprintln(l.out, l.formatMessage(level, msg))
}

func (l *Logger) formatMessage(level Level, msg string) string {
	var b strings.Builder
	if l.format == FormatTagged {
		if p := l.prefixes[level]; p != "" {
			b.WriteString(p)
			b.WriteByte(' ')
		}
	}
	if l.withTime {
		b.WriteString(time.Now().Format(l.timeFormat))
		b.WriteByte(' ')
	}
	b.WriteString(msg)
	return b.String()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
