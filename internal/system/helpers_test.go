// internal/system/helpers_test.go
package system

import (
	"go-galaga/internal/event"
)

// eventRecorder collects dispatched events for assertions.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
