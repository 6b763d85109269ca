package errorevent

import (
	"fmt"

	Event "github.com/studease/eventflow/events/event"
)

// ErrorEvent types.
const (
	ERROR = "error"
)

// ErrorEvent dispatched when an error causes an operation to fail.
type ErrorEvent struct {
	Event.Event
	Name    string
	Message error
}

// Init this class
func (me *ErrorEvent) Init(typ string, bubbles bool, cancelable bool, name string, message error) *ErrorEvent {
	me.Event.Init(typ, bubbles, cancelable)
	me.Name = name
	me.Message = message
	return me
}

// Clone an instance of an ErrorEvent subclass.
func (me *ErrorEvent) Clone() *ErrorEvent {
	return New(me.Type(), me.Bubbles(), me.Cancelable(), me.Name, me.Message)
}

// String returns a string containing all the properties of the ErrorEvent object.
func (me *ErrorEvent) String() string {
	return fmt.Sprintf("[ErrorEvent type=%s name=%s message=%v]", me.Type(), me.Name, me.Message)
}

// New creates a new ErrorEvent object.
func New(typ string, bubbles bool, cancelable bool, name string, message error) *ErrorEvent {
	return new(ErrorEvent).Init(typ, bubbles, cancelable, name, message)
}
