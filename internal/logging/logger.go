package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// slogLevel maps l onto the corresponding slog level.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a string into a Level. Unknown values yield LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format represents the log output format.
type Format int

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs logs in JSON format.
	FormatJSON
)

// ParseFormat parses a string into a Format. Unknown values yield FormatText.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger is the interface for structured logging.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)
	// WithRunID returns a new logger tagging every entry with run_id.
	WithRunID(runID string) Logger
	// WithFields returns a new logger with the given fields.
	WithFields(keysAndValues ...any) Logger
}

// Config holds the logger configuration.
type Config struct {
	Level  string
	Format string
	Output string
}

// logger is the slog-backed implementation of Logger.
type logger struct {
	sl *slog.Logger
}

// New creates a new Logger with the given configuration.
// Output is "stdout" (default), "stderr" or a file path; a file that cannot
// be opened falls back to stdout. The returned close func releases the
// file and is a no-op for the console outputs.
func New(cfg Config) (Logger, func() error) {
	var output io.Writer
	closeFn := func() error { return nil }
	switch cfg.Output {
	case "", "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			output = os.Stdout
		} else {
			output = f
			closeFn = f.Close
		}
	}

	return NewWriter(output, ParseLevel(cfg.Level), ParseFormat(cfg.Format)), closeFn
}

// NewWriter creates a Logger writing to w.
func NewWriter(w io.Writer, level Level, format Format) Logger {
	opts := &slog.HandlerOptions{
		Level:       level.slogLevel(),
		ReplaceAttr: replaceAttr,
	}

	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &logger{sl: slog.New(h)}
}

// NewDefault creates a new Logger with default settings: info level, text
// format, stdout.
func NewDefault() Logger {
	return NewWriter(os.Stdout, LevelInfo, FormatText)
}

// NewNop creates a no-op logger that discards all output.
func NewNop() Logger {
	return &nopLogger{}
}

// replaceAttr renames the time key to "ts" in UTC RFC 3339 and lowercases
// the level.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			return slog.String("ts", t.UTC().Format(time.RFC3339))
		}
	case slog.LevelKey:
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(slog.LevelKey, strings.ToLower(lvl.String()))
		}
	}
	return a
}

// Debug logs a debug message.
func (l *logger) Debug(msg string, keysAndValues ...any) {
	l.log(slog.LevelDebug, msg, keysAndValues...)
}

// Info logs an info message.
func (l *logger) Info(msg string, keysAndValues ...any) {
	l.log(slog.LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message.
func (l *logger) Warn(msg string, keysAndValues ...any) {
	l.log(slog.LevelWarn, msg, keysAndValues...)
}

// Error logs an error message.
func (l *logger) Error(msg string, keysAndValues ...any) {
	l.log(slog.LevelError, msg, keysAndValues...)
}

// WithRunID returns a new logger with the given run ID.
func (l *logger) WithRunID(runID string) Logger {
	return &logger{sl: l.sl.With("run_id", runID)}
}

// WithFields returns a new logger with the given fields.
// Keys that are not strings are dropped along with their value.
func (l *logger) WithFields(keysAndValues ...any) Logger {
	return &logger{sl: l.sl.With(pairs(keysAndValues)...)}
}

func (l *logger) log(level slog.Level, msg string, keysAndValues ...any) {
	l.sl.Log(context.Background(), level, msg, pairs(keysAndValues)...)
}

// pairs converts alternating key/value arguments into slog attributes.
// An odd trailing key is dropped.
func pairs(keysAndValues []any) []any {
	attrs := make([]any, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			attrs = append(attrs, slog.Any(key, keysAndValues[i+1]))
		}
	}
	return attrs
}

// nopLogger is a no-op logger that discards all output.
type nopLogger struct{}

func (n *nopLogger) Debug(_ string, _ ...any)   {}
func (n *nopLogger) Info(_ string, _ ...any)    {}
func (n *nopLogger) Warn(_ string, _ ...any)    {}
func (n *nopLogger) Error(_ string, _ ...any)   {}
func (n *nopLogger) WithRunID(_ string) Logger  { return n }
func (n *nopLogger) WithFields(_ ...any) Logger { return n }
