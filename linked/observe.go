package linked

import "go.uber.org/zap"

// EventType classifies handle lifecycle events.
type EventType uint8

const (
	// EventCreated fires when a handle takes sole ownership of a resource
	// (New, ResetTo).
	EventCreated EventType = iota
	// EventShared fires when a handle joins an existing ring (Clone, Alias,
	// Assign).
	EventShared
	// EventReleased fires when a handle leaves a ring that still has other
	// owners.
	EventReleased
	// EventDropped fires when the last owner leaves and the resource is
	// released.
	EventDropped
)

// String returns the event type's name.
func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventShared:
		return "shared"
	case EventReleased:
		return "released"
	case EventDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Event describes a handle lifecycle transition. Ref is the resource's
// address identity, stable across covariant aliasing; Value is the acting
// handle's reference.
type Event struct {
	Value any
	Ref   uintptr
	Type  EventType
}

// Observer receives notifications about handle lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

var observers []Observer

// Subscribe registers an observer for handle lifecycle events. Events are
// only emitted for non-nil resources, so empty-handle traffic is silent.
//
// Registration is configuration: call it before handle traffic, not
// concurrently with it.
func Subscribe(o Observer) {
	observers = append(observers, o)
}

// Unsubscribe removes a previously registered observer.
func Unsubscribe(o Observer) {
	for i, obs := range observers {
		if obs == o {
			observers = append(observers[:i], observers[i+1:]...)
			return
		}
	}
}

// notifying reports whether any observer is registered. Call sites gate on
// it so that the no-observer fast path never boxes a reference.
func notifying() bool {
	return len(observers) != 0
}

func notify(t EventType, ref uintptr, value any) {
	for _, o := range observers {
		o.OnHandleEvent(Event{Type: t, Ref: ref, Value: value})
	}
}

// LogObserver writes every handle lifecycle event to the package logger at
// Debug level.
type LogObserver struct{}

// OnHandleEvent implements Observer.
func (LogObserver) OnHandleEvent(e Event) {
	Logger().Debug("handle event",
		zap.Stringer("event", e.Type),
		zap.Uintptr("ref", e.Ref))
}
