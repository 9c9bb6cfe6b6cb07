package session

import "github.com/plus3/stackfall/tetromino"

// EventKind classifies a state transition.
type EventKind uint8

const (
	EventReset EventKind = iota + 1
	EventStarted
	EventSpawned
	EventMoved
	EventRotated
	EventLocked
	EventHeld
	EventGameOver
)

// Event describes one transition. Piece is the kind involved, when there is
// one. Lines and Rows are only set for EventLocked; Rows are the grid rows that
// were full before clearing.
type Event struct {
	Kind  EventKind
	Piece tetromino.Kind
	Lines int
	Rows  []int
}

// eventBuffer collects the events of a transition so observers are notified
// once, after the transition has completed.
type eventBuffer struct {
	pending []Event
}

func (b *eventBuffer) push(e Event) {
	b.pending = append(b.pending, e)
}

func (b *eventBuffer) empty() bool {
	return len(b.pending) == 0
}

// drain returns the buffered events and resets the buffer. The returned slice
// is owned by the caller.
func (b *eventBuffer) drain() []Event {
	if len(b.pending) == 0 {
		return nil
	}
	events := make([]Event, len(b.pending))
	copy(events, b.pending)
	b.pending = b.pending[:0]
	return events
}
