package ecs

// EventKind identifies simulation events published by systems.
type EventKind string

const (
	EventAgentKilled    EventKind = "agent_killed"
	EventPlayerHit      EventKind = "player_hit"
	EventExplosion      EventKind = "explosion"
	EventPathNotFound   EventKind = "path_not_found"
	EventTriggerEntered EventKind = "trigger_entered"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	X, Y   float64
	Data   any
}

// EventQueue is a simple FIFO queue flushed at the end of every World.Update.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
