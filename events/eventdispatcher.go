package events

import (
	"github.com/studease/eventflow/log"
)

// Static constants.
const (
	// MaxDepth caps the ancestor path walked while dispatching or probing.
	// Parent links are caller-maintained and never validated, so a cyclic
	// chain would otherwise traverse forever; exceeding the cap panics.
	MaxDepth = 256
)

// EventDispatcher is the base class for all classes that dispatch events.
// It keeps two registries, one for capture-phase listeners and one for
// target- and bubble-phase listeners, each holding listeners in registration
// order. Firing walks a snapshot of that order, so a listener may register
// or unregister others mid-dispatch without affecting the pass in flight.
//
// Dispatch runs synchronously on the calling goroutine and may be re-entered
// from a listener. Cross-goroutine use requires external synchronization.
type EventDispatcher struct {
	logger           log.ILogger
	target           interface{}
	parent           *EventDispatcher
	listeners        map[string][]*EventListener
	captureListeners map[string][]*EventListener
}

// Init this class.
func (me *EventDispatcher) Init(logger log.ILogger) *EventDispatcher {
	if logger == nil {
		logger = log.Default()
	}

	me.logger = logger
	me.listeners = make(map[string][]*EventListener)
	me.captureListeners = make(map[string][]*EventListener)
	return me
}

// WithTarget is a chainable configuration function which sets the object
// reported as the event target and current target, for composites which
// embed EventDispatcher.
func (me *EventDispatcher) WithTarget(target interface{}) *EventDispatcher {
	me.target = target
	return me
}

// SetParent links this dispatcher under another one for capture and bubble
// traversal. The link is read fresh on every dispatch and is not owned.
// Keeping the chain acyclic is up to the caller; see MaxDepth.
func (me *EventDispatcher) SetParent(parent *EventDispatcher) {
	me.parent = parent
}

// Parent returns the dispatcher this one is linked under, or nil.
func (me *EventDispatcher) Parent() *EventDispatcher {
	return me.parent
}

// AddEventListener registers an event listener object with an EventDispatcher object so that the listener receives notification of an event.
// Registering the same *EventListener again for one type and phase keeps a
// single entry in its original position. The listener is returned for
// chaining.
func (me *EventDispatcher) AddEventListener(event string, listener *EventListener, useCapture bool) *EventListener {
	if event == "" || listener == nil {
		me.logger.Debugf(1, "Event type or listener not present: type=%s, listener=%p", event, listener)
		return listener
	}

	me.addEventListener(me.registry(useCapture), event, listener)
	return listener
}

// On generates an EventListener around the given handler, registers it, and
// returns it. Keep the returned wrapper: its identity, not the handler's, is
// what Off matches on.
// @once: if true, the listener unregisters itself after the first invocation.
// @data: passed through to two-argument handlers on each invocation.
func (me *EventDispatcher) On(event string, handler interface{}, once bool, data interface{}, useCapture bool) *EventListener {
	if event == "" || handler == nil {
		me.logger.Debugf(1, "Event type or handler not present: type=%s, handler=%v", event, handler)
		return nil
	}

	listener := new(EventListener).Init(handler, data, once)
	me.addEventListener(me.registry(useCapture), event, listener)
	return listener
}

// RemoveEventListener removes an event listener from the EventDispatcher object.
// Listeners match by pointer identity only; removing one that was never
// registered is a no-op.
func (me *EventDispatcher) RemoveEventListener(event string, listener *EventListener, useCapture bool) {
	if event == "" || listener == nil {
		me.logger.Debugf(1, "Event type or listener not present: type=%s, listener=%p", event, listener)
		return
	}

	me.removeEventListener(me.registry(useCapture), event, listener)
}

// Off removes an event listener; alias of RemoveEventListener.
func (me *EventDispatcher) Off(event string, listener *EventListener, useCapture bool) {
	me.RemoveEventListener(event, listener, useCapture)
}

// RemoveAllEventListeners removes every listener for the given event types
// from both registries, or every listener of every type when called with no
// arguments.
func (me *EventDispatcher) RemoveAllEventListeners(event ...string) {
	if len(event) == 0 {
		me.logger.Debugf(1, "Removing all event listeners")
		me.listeners = make(map[string][]*EventListener)
		me.captureListeners = make(map[string][]*EventListener)
		return
	}

	for _, typ := range event {
		me.logger.Debugf(1, "Removing all event listeners: type=%s", typ)
		delete(me.listeners, typ)
		delete(me.captureListeners, typ)
	}
}

// HasEventListener checks whether an event listener is registered with this EventDispatcher object for the specified event type, in either registry.
func (me *EventDispatcher) HasEventListener(event string) bool {
	return len(me.listeners[event]) != 0 || len(me.captureListeners[event]) != 0
}

// WillTrigger checks whether an event listener for the specified event type
// is registered with this object or any of its ancestors, so dispatching an
// event of that type would invoke at least one listener.
func (me *EventDispatcher) WillTrigger(event string) bool {
	depth := 0

	for n := me; n != nil; n = n.parent {
		if depth++; depth > MaxDepth {
			panic("max depth reached")
		}

		if n.HasEventListener(event) {
			return true
		}
	}

	return false
}

// DispatchEvent dispatches an event into the event flow: capture-phase
// listeners from the root ancestor down, both of the target's registries at
// the target, then bubble-phase listeners back up when the event bubbles.
// The optional target argument overrides the reported event target; it is
// retained for compatibility and not recommended in new code.
//
// Panics raised by listeners are not recovered here. The return value is the
// event's DefaultPrevented state once propagation completes.
func (me *EventDispatcher) DispatchEvent(evt IEvent, target ...interface{}) bool {
	if evt == nil {
		me.logger.Debugf(1, "Event not present")
		return false
	}

	me.logger.Debugf(0, "Dispatching event: %s", evt.Type())

	if len(target) != 0 && target[0] != nil {
		evt.SetTarget(target[0])
	} else {
		evt.SetTarget(me.owner())
	}

	if !evt.Bubbles() || me.parent == nil {
		me.fire(evt, AT_TARGET, true)
		me.fire(evt, AT_TARGET, false)
		return evt.DefaultPrevented()
	}

	path := me.path()

	// Ancestors root-down, capture registries. The loop stops advancing
	// once propagation is stopped, after the level which stopped it has
	// run to completion.
	for i := len(path) - 1; i >= 1 && !evt.PropagationStopped(); i-- {
		path[i].fire(evt, CAPTURING_PHASE, true)
	}

	// At the target both registries fire, tagged AT_TARGET, even when an
	// ancestor stopped propagation on the way down.
	me.fire(evt, AT_TARGET, true)
	me.fire(evt, AT_TARGET, false)

	// Ancestors target-up, bubble registries.
	for i := 1; i < len(path) && !evt.PropagationStopped(); i++ {
		path[i].fire(evt, BUBBLING_PHASE, false)
	}

	if evt.PropagationStopped() {
		me.logger.Debugf(1, "Stopped propagation of event: type=%s", evt.Type())
	}

	return evt.DefaultPrevented()
}

// fire notifies the listeners of one registry of one node. It snapshots the
// listener order first, so the pass in flight is immune to registrations and
// removals made by the listeners it invokes.
func (me *EventDispatcher) fire(evt IEvent, phase uint16, useCapture bool) {
	registry := me.registry(useCapture)

	arr := registry[evt.Type()]
	if len(arr) == 0 {
		return
	}

	snapshot := make([]*EventListener, len(arr))
	copy(snapshot, arr)

	evt.SetCurrentTarget(me.owner())
	evt.SetEventPhase(phase)
	evt.SetRemoved(false)

	for i := 0; i < len(snapshot) && !evt.ImmediatePropagationStopped(); i++ {
		listener := snapshot[i]
		listener.invoke(evt)

		if evt.Removed() {
			me.removeEventListener(registry, evt.Type(), listener)
			evt.SetRemoved(false)
		}
	}
}

// path returns the chain [me, parent, ..., root], guarded by MaxDepth.
func (me *EventDispatcher) path() []*EventDispatcher {
	path := make([]*EventDispatcher, 0, 4)

	for n := me; n != nil; n = n.parent {
		if len(path) >= MaxDepth {
			panic("max depth reached")
		}

		path = append(path, n)
	}

	return path
}

// owner returns the value events report as their target for this node.
func (me *EventDispatcher) owner() interface{} {
	if me.target != nil {
		return me.target
	}

	return me
}

func (me *EventDispatcher) registry(useCapture bool) map[string][]*EventListener {
	if useCapture {
		return me.captureListeners
	}

	return me.listeners
}

func (me *EventDispatcher) addEventListener(registry map[string][]*EventListener, event string, listener *EventListener) {
	arr := registry[event]

	for _, l := range arr {
		if l == listener {
			me.logger.Debugf(1, "Event listener already registered: type=%s, listener=%p", event, listener)
			return
		}
	}

	me.logger.Debugf(1, "Adding event listener: type=%s, listener=%p", event, listener)
	registry[event] = append(arr, listener)
}

func (me *EventDispatcher) removeEventListener(registry map[string][]*EventListener, event string, listener *EventListener) {
	arr := registry[event]
	if arr == nil {
		me.logger.Debugf(1, "Listeners not found: type=%s", event)
		return
	}

	for i, l := range arr {
		if l == listener {
			me.logger.Debugf(1, "Removing event listener: type=%s, listener=%p", event, listener)

			arr = append(arr[:i], arr[i+1:]...)
			if len(arr) == 0 {
				delete(registry, event)
			} else {
				registry[event] = arr
			}

			return
		}
	}

	me.logger.Debugf(1, "Listener not found: type=%s, listener=%p", event, listener)
}

// NewEventDispatcher creates a standalone EventDispatcher. Composites which
// embed one call Init directly instead.
func NewEventDispatcher(logger log.ILogger) *EventDispatcher {
	return new(EventDispatcher).Init(logger)
}
