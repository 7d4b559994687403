// internal/event/event.go
package event

// EventType — the kind of event being dispatched.
type EventType string

// Event carries a type and optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is implemented by anything that subscribes to events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher routes events to subscribed listeners.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for an event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes a previously registered listener.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers the event to every subscriber of its type.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
