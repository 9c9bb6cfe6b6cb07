package session_test

import (
	"fmt"

	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetromino"
)

// ExampleSession plays a few moves headlessly. Observers receive the events of
// each transition once it has completed.
func ExampleSession() {
	s := session.New(tetromino.NewCycle(tetromino.O, tetromino.I))
	s.Subscribe(session.ObserverFunc(func(snap session.Snapshot, events []session.Event) {
		for _, e := range events {
			fmt.Println(e.Kind, e.Piece)
		}
	}))

	s.Start()
	s.Input(session.HardDrop)
	s.Tick()

	snap := s.Snapshot()
	fmt.Println(snap.Active.Kind, snap.Grid.Occupied())

	// Output:
	// EventReset None
	// EventStarted None
	// EventSpawned O
	// EventLocked O
	// EventSpawned I
	// I 4
}
