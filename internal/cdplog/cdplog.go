// Package cdplog abstracts structured logging for the CDP client runtime.
//
// This package uses two log levels:
//   - Info for lifecycle and protocol events (launch, kill, connect,
//     disconnect, reconnect, domain enable, target navigation)
//   - Debug for per-frame and per-message traffic (frame read/write,
//     command submit/complete)
//
// The *slog.Logger type satisfies this interface directly.
package cdplog

import (
	"io"
	"log/slog"
)

// Logger abstracts the *slog.Logger behavior used by this module, so call
// sites don't depend on the concrete slog type and tests can substitute a
// recording implementation.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Discard returns the default Logger: a no-op that discards all output.
// This follows the library convention of never writing to stdout/stderr
// unless the host explicitly configures a logger.
func Discard() Logger { return discardLogger{} }

type discardLogger struct{}

func (discardLogger) Debug(string, ...any) {}
func (discardLogger) Info(string, ...any)  {}
func (discardLogger) Warn(string, ...any)  {}
func (discardLogger) Error(string, ...any) {}

// New builds a Logger backed by log/slog, writing text-format lines to w at the
// given level. Pass slog.LevelDebug when the host's --verbose flag is set.
func New(w io.Writer, level slog.Level) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
