// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging provides leveled, structured loggers built from go-logger's
// handlers and level labels.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/pdiddy/presentation-formatter/pkg/types"
)

// Logger is the logging surface used across the converter. Args are
// alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Formats lists the accepted log output formats.
var Formats = []string{glog.LoggerTypeConsole, glog.LoggerTypeJSON, glog.LoggerTypePretty}

// Levels lists the accepted log levels.
var Levels = []string{"trace", "debug", "info", "warn", "warning", "error"}

// New builds a logger named name from cfg that writes to out. An empty
// format means console and an empty level means info.
//
// glog.NewLogger always writes to stdout, which the CLI reserves for its
// own output, so the handler is assembled here against out.
func New(cfg types.LogConfig, name string, out io.Writer) (Logger, error) {
	opts := &slog.HandlerOptions{
		Level:       levelFor(cfg.Level),
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", glog.LoggerTypeConsole:
		handler = slog.NewTextHandler(out, opts)
	case glog.LoggerTypeJSON:
		handler = slog.NewJSONHandler(out, opts)
	case glog.LoggerTypePretty:
		handler = glog.NewColorConsoleHandler(out, opts)
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	if name = strings.TrimSpace(name); name != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("logger", name)})
	}
	return slog.New(handler), nil
}

// NoOp returns a logger that discards everything.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// levelFor maps a configured level name to its slog level. Unknown names
// fall back to info; config validation rejects them earlier.
func levelFor(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// replaceAttr renders records the way glog does: "ts" for the time key and
// lower-case level labels, including glog's custom trace level.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		label, exists := glog.CustomLevels[level]
		if !exists {
			label = level.String()
		}
		a.Value = slog.StringValue(strings.ToLower(label))
	}
	return a
}
