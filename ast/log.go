package ast

import "log/slog"

var logger = slog.Default()

// SetLogger replaces the logger used to report questionable constructs. It
// should be called once at program start.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}
