package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventProximityEnter = "proximity_enter"
	EventProximityExit  = "proximity_exit"
	EventWeaponPickup   = "weapon_pickup"
	EventWeaponDrop     = "weapon_drop"
	EventGrabStart      = "grab_start"
	EventGrabRelease    = "grab_release"
)

// ProximityEvent is emitted when an interactable enters or leaves a
// carrier's reach.
type ProximityEvent struct {
	Carrier Entity
	Actor   Entity
}

// WeaponEvent is emitted on pickup and drop.
type WeaponEvent struct {
	Carrier Entity
	Weapon  Entity
}

// GrabEvent is emitted when a gravity gun grabs or lets go. Reason is empty
// on grab.
type GrabEvent struct {
	Weapon Entity
	Target Entity
	Reason string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns queued events without consuming them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
