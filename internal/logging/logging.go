// Package logging is the small structured-logging surface shared by the
// list core and the terminal program. The terminal is owned by the TUI, so
// the program points the default logger at a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging interface accepted throughout the module.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

const prefix = "[vlist] "

// DefaultLogger writes slog text records with a fixed message prefix.
type DefaultLogger struct {
	logger *slog.Logger
}

// New returns a logger writing to w at the given minimum level.
func New(w io.Writer, level slog.Level) *DefaultLogger {
	return &DefaultLogger{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))}
}

// Open appends log records to the file at path, creating it if needed.
// The returned closer releases the file.
func Open(path string, level slog.Level) (*DefaultLogger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// ParseLevel maps debug/info/warn/error to a slog level. Unknown names
// fall back to info.
func ParseLevel(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func (d *DefaultLogger) Debug(msg string, args ...any) {
	d.logger.Debug(prefix+msg, args...)
}

func (d *DefaultLogger) Info(msg string, args ...any) {
	d.logger.Info(prefix+msg, args...)
}

func (d *DefaultLogger) Warn(msg string, args ...any) {
	d.logger.Warn(prefix+msg, args...)
}

func (d *DefaultLogger) Error(msg string, args ...any) {
	d.logger.Error(prefix+msg, args...)
}

// With returns a logger that adds args to every record.
func (d *DefaultLogger) With(args ...any) Logger {
	return &DefaultLogger{logger: d.logger.With(args...)}
}

type discard struct{}

func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}
func (discard) With(...any) Logger   { return discard{} }

// Discard drops everything.
var Discard Logger = discard{}
