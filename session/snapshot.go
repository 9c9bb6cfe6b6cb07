package session

import (
	"time"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/tetromino"
)

// Snapshot is a read-only copy of a session's state. Nothing in a Snapshot
// aliases the session, so it can be kept or sent to other goroutines.
type Snapshot struct {
	Grid board.Grid
	// Active and Ghost are nil between a lock and the next spawn.
	Active *piece.Piece
	Ghost  *piece.Piece

	Next tetromino.Kind
	// Held is tetromino.None while the hold slot is empty.
	Held    tetromino.Kind
	CanHold bool

	Score        int
	Level        int
	Lines        int
	DropInterval time.Duration

	Phase Phase
	Stats StatsSummary
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:         s.grid,
		Next:         s.next,
		Held:         s.held,
		CanHold:      s.canHold,
		Score:        s.pacing.Score,
		Level:        s.pacing.Level,
		Lines:        s.pacing.Lines,
		DropInterval: s.pacing.DropInterval,
		Phase:        s.phase,
		Stats:        s.stats.Summary(),
	}
	if s.active != nil {
		active := *s.active
		snap.Active = &active
	}
	if s.ghost != nil {
		ghost := *s.ghost
		snap.Ghost = &ghost
	}
	return snap
}

// Started reports whether a game is in progress.
func (s Snapshot) Started() bool {
	return s.Phase == Playing
}

// GameOver reports whether the last game ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == GameOver
}

// Overlay composes the grid as it should be drawn: ghost squares marked with
// board.Ghost on empty cells, then the active piece on top.
func (s Snapshot) Overlay() board.Grid {
	out := s.Grid
	if s.Ghost != nil {
		for cell := range s.Ghost.Cells() {
			if board.InBounds(cell.X, cell.Y) && out[cell.Y][cell.X] == board.Empty {
				out[cell.Y][cell.X] = board.Ghost
			}
		}
	}
	if s.Active != nil {
		out = s.Active.Lock(out)
	}
	return out
}
