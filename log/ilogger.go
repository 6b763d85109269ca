package log

// ILogger is the logging interface injected into library components.
// Debug messages carry a sub-level n in [0, 8); larger values indicate
// higher-priority debug output.
type ILogger interface {
	Trace(s string)
	Tracef(format string, args ...interface{})
	Debug(n uint32, s string)
	Debugf(n uint32, format string, args ...interface{})
	Info(s string)
	Infof(format string, args ...interface{})
	Warn(s string)
	Warnf(format string, args ...interface{})
	Error(s string)
	Errorf(format string, args ...interface{})
}

// ILoggerFactory creates scoped ILogger instances
type ILoggerFactory interface {
	NewLogger(scope string) ILogger
}
