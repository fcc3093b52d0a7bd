package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps a LogLevel onto the equivalent slog.Level.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a config-file level string ("debug", "info", "warn",
// "error") into a LogLevel. Unknown or empty strings fall back to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogEntry is the structured log entry delivered to the TUI when logging
// runs in channel mode.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

var (
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	isTUIMode     bool
)

const tuiChannelBufferSize = 1024

// InitForCLI initializes the logging system for CLI mode. Entries at or
// above filterLevel are written to output as slog text lines. When the
// server speaks the MCP stdio protocol, output must be os.Stderr so the
// protocol stream on stdout stays clean.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	isTUIMode = false
	tuiLogChannel = nil
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: filterLevel.SlogLevel(),
	})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// InitForTUI initializes the logging system for TUI mode. Entries are
// delivered over the returned channel instead of being written directly,
// so the TUI can render them without fighting over the terminal.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	isTUIMode = true
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	// Fallback handler for anything logged before the TUI starts draining.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: filterLevel.SlogLevel(),
	})
	defaultLogger = slog.New(handler)
	return tuiLogChannel
}

// CloseTUIChannel closes the TUI log channel. Should be called once the
// TUI has shut down.
func CloseTUIChannel() {
	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
		isTUIMode = false
	}
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	if isTUIMode && tuiLogChannel != nil {
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// Drop on a full buffer rather than stall a dispatch on the TUI.
		select {
		case tuiLogChannel <- entry:
		default:
		}
		return
	}

	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		}
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// Leveled adapts the package to the key/value leveled-logger shape used by
// hashicorp libraries (retryablehttp's LeveledLogger in particular), so the
// HTTP client's retry chatter lands in the same stream as everything else.
type Leveled struct {
	Subsystem string
}

// NewLeveled returns a leveled logger tagged with the given subsystem.
func NewLeveled(subsystem string) *Leveled {
	return &Leveled{Subsystem: subsystem}
}

func (l *Leveled) Error(msg string, keysAndValues ...interface{}) {
	logInternal(LevelError, l.Subsystem, nil, "%s%s", msg, formatKeyValues(keysAndValues))
}

func (l *Leveled) Warn(msg string, keysAndValues ...interface{}) {
	logInternal(LevelWarn, l.Subsystem, nil, "%s%s", msg, formatKeyValues(keysAndValues))
}

func (l *Leveled) Info(msg string, keysAndValues ...interface{}) {
	logInternal(LevelInfo, l.Subsystem, nil, "%s%s", msg, formatKeyValues(keysAndValues))
}

func (l *Leveled) Debug(msg string, keysAndValues ...interface{}) {
	logInternal(LevelDebug, l.Subsystem, nil, "%s%s", msg, formatKeyValues(keysAndValues))
}

func formatKeyValues(keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	if len(keysAndValues)%2 == 1 {
		fmt.Fprintf(&b, " %v", keysAndValues[len(keysAndValues)-1])
	}
	return b.String()
}
