// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"io"

	"github.com/pterm/pterm"
)

// Logger is responsible for logging the steps of every simreport command.
type Logger interface {
	LogSourceLoaded(source string, rows int)
	LogSourceSkipped(source, reason string)
	LogPlotStart(title string)
	LogPlotSkipped(title string, err error)
	LogFileWritten(kind, path string)
	LogCommandStart(name string, args ...string)
	LogCommandComplete(name string)

	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type ptermLogger struct {
	logger *pterm.Logger
}

type noopLogger struct{}

// NewLogger returns a Logger writing through pterm at the given level.
func NewLogger(level pterm.LogLevel) Logger {
	return &ptermLogger{logger: pterm.DefaultLogger.WithLevel(level)}
}

// NewLoggerWithWriter is NewLogger writing to w instead of the terminal.
func NewLoggerWithWriter(level pterm.LogLevel, w io.Writer) Logger {
	return &ptermLogger{logger: pterm.DefaultLogger.WithLevel(level).WithWriter(w)}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

// ParseLevel maps a level name to a pterm.LogLevel. Unknown names map to
// info.
func ParseLevel(name string) pterm.LogLevel {
	switch name {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

func (l *ptermLogger) LogSourceLoaded(source string, rows int) {
	l.logger.Debug("loaded csv", l.logger.Args("source", source, "rows", rows))
}

func (l *ptermLogger) LogSourceSkipped(source, reason string) {
	l.logger.Debug("skipped source", l.logger.Args("source", source, "reason", reason))
}

func (l *ptermLogger) LogPlotStart(title string) {
	l.logger.Info("generating plot", l.logger.Args("title", title))
}

func (l *ptermLogger) LogPlotSkipped(title string, err error) {
	l.logger.Warn("skipping plot", l.logger.Args("title", title, "reason", err.Error()))
}

func (l *ptermLogger) LogFileWritten(kind, path string) {
	l.logger.Info("wrote file", l.logger.Args("kind", kind, "path", path))
}

func (l *ptermLogger) LogCommandStart(name string, args ...string) {
	l.logger.Debug("running command", l.logger.Args("command", name, "args", args))
}

func (l *ptermLogger) LogCommandComplete(name string) {
	l.logger.Debug("command finished", l.logger.Args("command", name))
}

func (l *ptermLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, l.logger.Args(args...))
}

func (l *ptermLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, l.logger.Args(args...))
}

func (l *ptermLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, l.logger.Args(args...))
}

func (l *ptermLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, l.logger.Args(args...))
}

func (l *noopLogger) LogSourceLoaded(source string, rows int)     {}
func (l *noopLogger) LogSourceSkipped(source, reason string)      {}
func (l *noopLogger) LogPlotStart(title string)                   {}
func (l *noopLogger) LogPlotSkipped(title string, err error)      {}
func (l *noopLogger) LogFileWritten(kind, path string)            {}
func (l *noopLogger) LogCommandStart(name string, args ...string) {}
func (l *noopLogger) LogCommandComplete(name string)              {}
func (l *noopLogger) Debug(msg string, args ...any)               {}
func (l *noopLogger) Info(msg string, args ...any)                {}
func (l *noopLogger) Warn(msg string, args ...any)                {}
func (l *noopLogger) Error(msg string, args ...any)               {}
