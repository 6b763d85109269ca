package log

import (
	"os"

	"github.com/studease/eventflow/log/internal/level"
)

var std = NewDefaultLogger(os.Stdout, "FLOW", level.INFO, DEFAULT_DEPTH+1)

// Default returns the package-level logger, which components fall back
// to when no ILogger is injected.
func Default() ILogger {
	return std
}

// Trace logs to the package-level logger.
func Trace(s string) {
	std.Trace(s)
}

// Tracef logs to the package-level logger.
func Tracef(format string, args ...interface{}) {
	std.Tracef(format, args...)
}

// Debug logs to the package-level logger.
func Debug(n uint32, s string) {
	std.Debug(n, s)
}

// Debugf logs to the package-level logger.
func Debugf(n uint32, format string, args ...interface{}) {
	std.Debugf(n, format, args...)
}

// Info logs to the package-level logger.
func Info(s string) {
	std.Info(s)
}

// Infof logs to the package-level logger.
func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Warn logs to the package-level logger.
func Warn(s string) {
	std.Warn(s)
}

// Warnf logs to the package-level logger.
func Warnf(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

// Error logs to the package-level logger.
func Error(s string) {
	std.Error(s)
}

// Errorf logs to the package-level logger.
func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}
