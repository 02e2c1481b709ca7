package gui

// Event calls every listener added to it, in order.
type Event struct {
	listeners []func()
}

// AddListener ignores nil callbacks.
func (e *Event) AddListener(callback func()) {
	if callback != nil {
		e.listeners = append(e.listeners, callback)
	}
}

func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// Reset drops the listeners. Widgets reset their events when destroyed so
// that no callback reaches a torn down inspector.
func (e *Event) Reset() { e.listeners = nil }

// EventWithArg is an Event whose listeners receive a value.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback != nil {
		e.listeners = append(e.listeners, callback)
	}
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) Reset() { e.listeners = nil }
