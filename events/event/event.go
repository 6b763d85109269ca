package event

import (
	"fmt"
	"time"
)

// Event types
const (
	ACTIVATE   = "activate"
	ADDED      = "added"
	CANCEL     = "cancel"
	CHANGE     = "change"
	CLEAR      = "clear"
	CLOSE      = "close"
	COMPLETE   = "complete"
	CONNECT    = "connect"
	DEACTIVATE = "deactivate"
	IDLE       = "idle"
	INIT       = "init"
	OPEN       = "open"
	REMOVED    = "removed"
)

// Event is used as the base class for the creation of Event objects, which are
// passed as parameters to event listeners when an event occurs.
//
// The type, bubbles and cancelable properties are fixed at Init time. The
// target, current target, phase and the control flags are scratch state
// rewritten by the dispatcher during each dispatch. The control flags do NOT
// reset between dispatches of the same instance: a caller which inspects
// DefaultPrevented or the stop flags after dispatch must pass a fresh or
// cloned Event into each logical dispatch.
type Event struct {
	typ        string
	bubbles    bool
	cancelable bool
	timeStamp  int64

	target        interface{}
	currentTarget interface{}
	eventPhase    uint16

	defaultPrevented            bool
	propagationStopped          bool
	immediatePropagationStopped bool
	removed                     bool
}

// Init this class.
func (me *Event) Init(typ string, bubbles bool, cancelable bool) *Event {
	me.typ = typ
	me.bubbles = bubbles
	me.cancelable = cancelable
	me.timeStamp = time.Now().UnixMilli()
	me.target = nil
	me.currentTarget = nil
	me.eventPhase = 0
	me.defaultPrevented = false
	me.propagationStopped = false
	me.immediatePropagationStopped = false
	me.removed = false
	return me
}

// Type returns the type of event.
func (me *Event) Type() string {
	return me.typ
}

// Bubbles indicates whether the event will bubble up the parent chain.
func (me *Event) Bubbles() bool {
	return me.bubbles
}

// Cancelable indicates whether the default behaviour of this event can be
// cancelled via PreventDefault. This is advisory metadata only: the event
// does not enforce it.
func (me *Event) Cancelable() bool {
	return me.cancelable
}

// TimeStamp returns the epoch milliseconds at which the event was created.
func (me *Event) TimeStamp() int64 {
	return me.timeStamp
}

// Target returns the object the event was originally dispatched on. It is
// only valid during a dispatch.
func (me *Event) Target() interface{} {
	return me.target
}

// CurrentTarget returns the object whose listeners are currently being
// notified. It is only valid for the duration of the listener call it was
// set for.
func (me *Event) CurrentTarget() interface{} {
	return me.currentTarget
}

// EventPhase returns the current phase of the event flow. It is only
// meaningful during an active dispatch.
func (me *Event) EventPhase() uint16 {
	return me.eventPhase
}

// DefaultPrevented indicates whether PreventDefault has been called on this
// instance.
func (me *Event) DefaultPrevented() bool {
	return me.defaultPrevented
}

// PropagationStopped indicates whether StopPropagation or
// StopImmediatePropagation has been called on this instance.
func (me *Event) PropagationStopped() bool {
	return me.propagationStopped
}

// ImmediatePropagationStopped indicates whether StopImmediatePropagation has
// been called on this instance.
func (me *Event) ImmediatePropagationStopped() bool {
	return me.immediatePropagationStopped
}

// Removed indicates whether Remove has been called by the listener which is
// currently executing.
func (me *Event) Removed() bool {
	return me.removed
}

// PreventDefault signals that the default behaviour associated with the event
// should be cancelled. The flag is set whether or not the event is marked
// cancelable. Idempotent.
func (me *Event) PreventDefault() {
	me.defaultPrevented = true
}

// StopPropagation prevents processing of any event listeners in nodes
// subsequent to the current node in the event flow. Listeners at the current
// node still run. Idempotent.
func (me *Event) StopPropagation() {
	me.propagationStopped = true
}

// StopImmediatePropagation prevents processing of any event listeners in the
// current node and nodes subsequent to the current node in the event flow.
// Idempotent.
func (me *Event) StopImmediatePropagation() {
	me.propagationStopped = true
	me.immediatePropagationStopped = true
}

// Remove signals the dispatcher to unregister the listener which is currently
// executing, for the type and phase being fired. Only meaningful while a
// listener is running; the dispatcher consumes and clears the flag after the
// listener returns.
func (me *Event) Remove() {
	me.removed = true
}

// SetTarget is called by the dispatcher at the start of a dispatch.
func (me *Event) SetTarget(target interface{}) {
	me.target = target
}

// SetCurrentTarget is called by the dispatcher before firing each node.
func (me *Event) SetCurrentTarget(target interface{}) {
	me.currentTarget = target
}

// SetEventPhase is called by the dispatcher before firing each node.
func (me *Event) SetEventPhase(phase uint16) {
	me.eventPhase = phase
}

// SetRemoved is called by the dispatcher to consume the removal flag.
func (me *Event) SetRemoved(removed bool) {
	me.removed = removed
}

// Clone an instance of an Event subclass. Only the type, bubbles and
// cancelable properties carry over; the clone starts with fresh scratch state
// and a new time stamp.
func (me *Event) Clone() *Event {
	return New(me.typ, me.bubbles, me.cancelable)
}

// String returns a string containing all the properties of the Event object.
func (me *Event) String() string {
	return fmt.Sprintf("[Event type=%s]", me.typ)
}

// New creates a new Event object.
func New(typ string, bubbles bool, cancelable bool) *Event {
	return new(Event).Init(typ, bubbles, cancelable)
}
