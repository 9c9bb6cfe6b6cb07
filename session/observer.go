package session

// Observer receives the state after each transition together with the events
// that produced it.
type Observer interface {
	Observe(snap Snapshot, events []Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(snap Snapshot, events []Event)

func (f ObserverFunc) Observe(snap Snapshot, events []Event) {
	f(snap, events)
}
