package session

import (
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/tetromino"
)

// hold swaps the active piece with the held one. It is allowed once per piece:
// the flag is restored only by the next natural spawn. With an empty hold slot
// the incoming piece is taken from the next queue.
func (s *Session) hold() {
	if s.active == nil || !s.canHold {
		return
	}

	outgoing := s.active.Kind
	incoming := s.held
	fromQueue := incoming == tetromino.None
	if fromQueue {
		incoming = s.next
	}

	p, ok := piece.Spawn(incoming, &s.grid)
	if !ok {
		s.gameOver(incoming)
		return
	}

	s.held = outgoing
	if fromQueue {
		s.next = s.seq.Next()
		s.stats.spawned(incoming)
	}
	s.canHold = false
	s.setActive(p)
	s.stats.holds++
	s.events.push(Event{Kind: EventHeld, Piece: outgoing})
}
