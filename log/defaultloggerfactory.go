package log

import (
	"io"
	"strings"
	"time"

	"github.com/studease/eventflow/log/internal/level"
	"github.com/studease/eventflow/utils"
)

// DefaultLoggerFactory creates new DefaultLogger
type DefaultLoggerFactory struct {
	level level.Level
	out   io.Writer
}

// Init this class
func (me *DefaultLoggerFactory) Init(n level.Level, out io.Writer) *DefaultLoggerFactory {
	me.level = n
	me.out = out
	return me
}

// NewLogger returns a configured ILogger for the given scope
func (me *DefaultLoggerFactory) NewLogger(scope string) ILogger {
	return NewDefaultLogger(me.out, strings.ToUpper(scope), me.level, DEFAULT_DEPTH)
}

// NewDefaultLoggerFactory creates a new DefaultLoggerFactory which writes to the
// file at path. The path is expanded with the current time, in the reference
// layout of the time package, so log files can be rotated by name.
func NewDefaultLoggerFactory(path string, n string) *DefaultLoggerFactory {
	path = time.Now().Format(path)

	f, err := utils.Create(path)
	if err != nil {
		Errorf("Failed to create log: %s", err)
		return nil
	}

	return new(DefaultLoggerFactory).Init(level.Parse(n), f)
}
