// Package log provides the leveled logger used by huffpack.
// Messages are meant to be read by people running the tool,
// so the output is a single line per entry with key=value attributes.
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Error = slog.LevelError
)

// Logger is a leveled logger.
type Logger struct{ *slog.Logger }

// New builds a logger that writes entries at or above lvl to w.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{
		W:     w,
		Level: lvl,
		mu:    new(sync.Mutex),
	})}
}

// WithName builds a new logger with the provided name.
// Attributes logged through the returned logger are prefixed with the name.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{l.WithGroup(name)}
}
