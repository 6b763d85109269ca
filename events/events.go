package events

// Event phases, as observed through IEvent.EventPhase() while listeners run.
// At the target both the capture and bubble registries fire tagged AT_TARGET.
const (
	CAPTURING_PHASE uint16 = 1
	AT_TARGET       uint16 = 2
	BUBBLING_PHASE  uint16 = 3
)

// IEvent defines basic event methods, including the scratch-state mutators
// the dispatcher rewrites while propagating an event. Listeners should treat
// the Set methods as dispatcher-internal.
type IEvent interface {
	Type() string
	Bubbles() bool
	Cancelable() bool
	TimeStamp() int64

	Target() interface{}
	CurrentTarget() interface{}
	EventPhase() uint16

	DefaultPrevented() bool
	PropagationStopped() bool
	ImmediatePropagationStopped() bool
	Removed() bool

	PreventDefault()
	StopPropagation()
	StopImmediatePropagation()
	Remove()

	SetTarget(target interface{})
	SetCurrentTarget(target interface{})
	SetEventPhase(phase uint16)
	SetRemoved(removed bool)

	String() string
}

// IEventHandler responds to events through the HandleEvent method. Values
// implementing it can be registered directly as listener handlers.
type IEventHandler interface {
	HandleEvent(evt IEvent)
}

// IEventDispatcher defines methods for adding or removing event listeners, checks whether specific types of event listeners are registered, and dispatches events
type IEventDispatcher interface {
	AddEventListener(event string, listener *EventListener, useCapture bool) *EventListener
	On(event string, handler interface{}, once bool, data interface{}, useCapture bool) *EventListener
	RemoveEventListener(event string, listener *EventListener, useCapture bool)
	Off(event string, listener *EventListener, useCapture bool)
	RemoveAllEventListeners(event ...string)
	HasEventListener(event string) bool
	WillTrigger(event string) bool
	DispatchEvent(evt IEvent, target ...interface{}) bool
}
