package dom

// EventType names the kind of input an Event carries.
type EventType string

const (
	EventClick   EventType = "click"
	EventKeydown EventType = "keydown"
)

// Key codes understood by keydown listeners.
const (
	KeyEnter = 13
	KeySpace = 32
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
)

// Event is a dispatched input event.
type Event struct {
	Type          EventType
	Target        *Element
	CurrentTarget *Element
	KeyCode       int

	defaultPrevented bool
	stopped          bool
}

// NewKeydown builds a keydown event for the given key code.
func NewKeydown(code int) *Event {
	return &Event{Type: EventKeydown, KeyCode: code}
}

// NewClick builds a click event.
func NewClick() *Event {
	return &Event{Type: EventClick}
}

// PreventDefault marks the event's default action as cancelled.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation keeps the event from reaching further ancestors.
func (ev *Event) StopPropagation() { ev.stopped = true }

// Listener is an event callback. Listeners are identified by pointer, so
// removing a listener requires the same *Listener that was added.
type Listener struct {
	fn func(*Event)
}

// NewListener wraps fn in a Listener.
func NewListener(fn func(*Event)) *Listener {
	return &Listener{fn: fn}
}

// AddEventListener registers l for t. Registering the same listener twice
// for the same type has no effect.
func (e *Element) AddEventListener(t EventType, l *Listener) {
	if l == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[EventType][]*Listener)
	}
	for _, existing := range e.listeners[t] {
		if existing == l {
			return
		}
	}
	e.listeners[t] = append(e.listeners[t], l)
}

// RemoveEventListener unregisters l for t if present.
func (e *Element) RemoveEventListener(t EventType, l *Listener) {
	list := e.listeners[t]
	for i, existing := range list {
		if existing == l {
			e.listeners[t] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(e.listeners[t]) == 0 {
		delete(e.listeners, t)
	}
}

// Listeners returns the listeners registered for t, in registration order.
func (e *Element) Listeners(t EventType) []*Listener {
	return append([]*Listener(nil), e.listeners[t]...)
}

// Dispatch delivers ev to e and then to each ancestor until a listener stops
// propagation. It returns false when a listener prevented the default action.
func (e *Element) Dispatch(ev *Event) bool {
	ev.Target = e
	for cur := e; cur != nil && !ev.stopped; cur = cur.Parent() {
		ev.CurrentTarget = cur
		for _, l := range cur.Listeners(ev.Type) {
			l.fn(ev)
		}
	}
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}
