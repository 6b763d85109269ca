package log

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus entry to the ILogger interface, for embedding
// into applications which already log through logrus. Level gating is left to
// the underlying logrus logger; debug sub-levels are attached as a field.
type LogrusLogger struct {
	entry *logrus.Entry
}

// Init this class.
func (me *LogrusLogger) Init(entry *logrus.Entry) *LogrusLogger {
	me.entry = entry
	return me
}

// Trace emits the preformatted message at logrus trace-level.
func (me *LogrusLogger) Trace(s string) {
	me.entry.Trace(s)
}

// Tracef formats and emits a message at logrus trace-level.
func (me *LogrusLogger) Tracef(format string, args ...interface{}) {
	me.entry.Tracef(format, args...)
}

// Debug emits the preformatted message at logrus debug-level.
func (me *LogrusLogger) Debug(n uint32, s string) {
	me.entry.WithField("verbosity", n).Debug(s)
}

// Debugf formats and emits a message at logrus debug-level.
func (me *LogrusLogger) Debugf(n uint32, format string, args ...interface{}) {
	me.entry.WithField("verbosity", n).Debugf(format, args...)
}

// Info emits the preformatted message at logrus info-level.
func (me *LogrusLogger) Info(s string) {
	me.entry.Info(s)
}

// Infof formats and emits a message at logrus info-level.
func (me *LogrusLogger) Infof(format string, args ...interface{}) {
	me.entry.Infof(format, args...)
}

// Warn emits the preformatted message at logrus warn-level.
func (me *LogrusLogger) Warn(s string) {
	me.entry.Warn(s)
}

// Warnf formats and emits a message at logrus warn-level.
func (me *LogrusLogger) Warnf(format string, args ...interface{}) {
	me.entry.Warnf(format, args...)
}

// Error emits the preformatted message at logrus error-level.
func (me *LogrusLogger) Error(s string) {
	me.entry.Error(s)
}

// Errorf formats and emits a message at logrus error-level.
func (me *LogrusLogger) Errorf(format string, args ...interface{}) {
	me.entry.Errorf(format, args...)
}

// LogrusLoggerFactory creates scope-tagged LogrusLogger instances over a
// shared logrus logger.
type LogrusLoggerFactory struct {
	logger *logrus.Logger
}

// Init this class.
func (me *LogrusLoggerFactory) Init(logger *logrus.Logger) *LogrusLoggerFactory {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	me.logger = logger
	return me
}

// NewLogger returns a configured ILogger for the given scope.
func (me *LogrusLoggerFactory) NewLogger(scope string) ILogger {
	return new(LogrusLogger).Init(me.logger.WithField("scope", scope))
}

// NewLogrusLoggerFactory creates a new LogrusLoggerFactory. Passing nil uses
// the logrus standard logger.
func NewLogrusLoggerFactory(logger *logrus.Logger) *LogrusLoggerFactory {
	return new(LogrusLoggerFactory).Init(logger)
}
