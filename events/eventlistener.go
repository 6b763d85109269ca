package events

import (
	"reflect"
)

// EventListener holds the event handler along with optional caller context.
// The wrapper's pointer identity is what the registries key on: pass the same
// *EventListener to RemoveEventListener that AddEventListener or On returned.
type EventListener struct {
	handler interface{}
	data    interface{}
	once    bool
}

// Init this class.
// @data: passed through to two-argument handlers on each invocation.
// @once: if true, the listener unregisters itself after the first invocation.
func (me *EventListener) Init(handler interface{}, data interface{}, once bool) *EventListener {
	me.handler = handler
	me.data = data
	me.once = once
	return me
}

// invoke calls the wrapped handler with the event. Handlers typed on IEvent
// or implementing IEventHandler are called directly; anything else, such as a
// func taking a concrete event subtype, goes through reflection. A handler
// whose signature cannot accept the event panics out to the dispatch caller.
func (me *EventListener) invoke(evt IEvent) {
	switch h := me.handler.(type) {
	case func(IEvent):
		h(evt)
	case func(IEvent, interface{}):
		h(evt, me.data)
	case IEventHandler:
		h.HandleEvent(evt)
	default:
		fn := reflect.ValueOf(me.handler)
		args := []reflect.Value{reflect.ValueOf(evt)}
		if t := fn.Type(); t.Kind() == reflect.Func && t.NumIn() == 2 {
			if me.data != nil {
				args = append(args, reflect.ValueOf(me.data))
			} else {
				args = append(args, reflect.Zero(t.In(1)))
			}
		}
		fn.Call(args)
	}

	if me.once {
		evt.Remove()
	}
}

// NewListener returns a new EventListener around the given handler.
func NewListener(handler interface{}) *EventListener {
	return new(EventListener).Init(handler, nil, false)
}
