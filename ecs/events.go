package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data map[string]any
}

// Well-known event types.
const (
	EventBossDefeated = "boss_defeated"
	EventBossDamaged  = "boss_damaged"
	EventDialogueEnd  = "dialogue_end"
)

// EventQueue is a simple FIFO queue that lives for one frame.
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

// Pending returns the queued events without clearing them, so several systems
// can observe the same frame.
func (q *EventQueue) Pending() []Event {
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
