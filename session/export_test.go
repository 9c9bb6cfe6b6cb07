package session

import (
	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/scoring"
)

// SetGrid replaces the playfield, recomputing the ghost of the active piece.
func (s *Session) SetGrid(g board.Grid) {
	s.grid = g
	if s.active != nil {
		s.setActive(*s.active)
	}
}

// SetPacing replaces the score and speed state.
func (s *Session) SetPacing(p scoring.Pacing) {
	s.pacing = p
}
