package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventHit   = "hit"
	EventKill  = "kill"
	EventSpawn = "spawn"
)

// HitEvent is emitted when an attack lands.
type HitEvent struct {
	Attacker Entity
	Target   Entity
	Damage   int
	HPLeft   int
}

// KillEvent is emitted when an entity's hp reaches zero.
type KillEvent struct {
	Entity Entity
	Name   string
}

// SpawnEvent is emitted when an entity is assembled from a recipe.
type SpawnEvent struct {
	Entity Entity
	Name   string
	Recipe string
}

// EventQueue is a simple FIFO queue, cleared at the end of every world
// update.
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

// Peek returns the queued events without clearing them.
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
