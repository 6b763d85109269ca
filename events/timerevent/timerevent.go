package timerevent

import (
	"fmt"

	Event "github.com/studease/eventflow/events/event"
)

// TimerEvent types
const (
	TIMER    = "timer"
	COMPLETE = "timer-complete"
)

// TimerEvent dispatched whenever the Timer object reaches the interval specified by the Timer.delay property
type TimerEvent struct {
	Event.Event
}

// Init this class
func (me *TimerEvent) Init(typ string, bubbles bool, cancelable bool) *TimerEvent {
	me.Event.Init(typ, bubbles, cancelable)
	return me
}

// Clone an instance of an TimerEvent subclass
func (me *TimerEvent) Clone() *TimerEvent {
	return New(me.Type(), me.Bubbles(), me.Cancelable())
}

// String returns a string containing all the properties of the TimerEvent object
func (me *TimerEvent) String() string {
	return fmt.Sprintf("[TimerEvent type=%s]", me.Type())
}

// New creates a new TimerEvent object
func New(typ string, bubbles bool, cancelable bool) *TimerEvent {
	return new(TimerEvent).Init(typ, bubbles, cancelable)
}
