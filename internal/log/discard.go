package log

import "log/slog"

// Discard is a logger that drops all entries.
// Components use it when no logger was provided.
var Discard = &Logger{slog.New(slog.DiscardHandler)}

// OrDiscard returns l, or Discard if l is nil.
func OrDiscard(l *Logger) *Logger {
	if l == nil {
		return Discard
	}
	return l
}
