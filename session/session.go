// Package session is the game-state engine: it owns the grid, the active
// piece, the next/hold pipeline and the score, and drives them through the
// NotStarted → Playing → GameOver lifecycle.
//
// A Session is not safe for concurrent use. Every method runs to completion
// synchronously; callers that feed it from several goroutines should go
// through a Driver.
package session

import (
	"time"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/scoring"
	"github.com/plus3/stackfall/tetromino"
)

// Session is the state of one game.
type Session struct {
	seq tetromino.Sequencer

	grid    board.Grid
	active  *piece.Piece
	ghost   *piece.Piece
	next    tetromino.Kind
	held    tetromino.Kind
	canHold bool
	pacing  scoring.Pacing
	phase   Phase

	stats     *Stats
	events    eventBuffer
	observers []Observer
}

// New creates a session in the NotStarted phase. A nil seq uses a randomly
// seeded 7-bag.
func New(seq tetromino.Sequencer) *Session {
	if seq == nil {
		seq = tetromino.NewBag(nil)
	}
	s := &Session{
		seq:   seq,
		stats: newStats(),
	}
	s.reset()
	s.events.drain()
	return s
}

// Subscribe registers o to receive a snapshot after every transition.
// Observers run synchronously on the goroutine that caused the transition.
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// DropInterval returns the current gravity period.
func (s *Session) DropInterval() time.Duration {
	return s.pacing.DropInterval
}

// Start resets the session, enters Playing and spawns the first piece.
func (s *Session) Start() {
	s.reset()
	s.phase = Playing
	s.events.push(Event{Kind: EventStarted})
	s.spawn()
	s.flush()
}

// Reset returns the session to its initial NotStarted state.
func (s *Session) Reset() {
	s.reset()
	s.flush()
}

// Tick applies one step of gravity. Without an active piece it spawns the next
// one instead; a piece that cannot fall any further locks.
func (s *Session) Tick() {
	if s.phase != Playing {
		return
	}

	if s.active == nil {
		s.spawn()
	} else {
		s.step(piece.Down)
	}
	s.flush()
}

// Input applies a player action. Input is ignored unless the session is
// Playing, and unknown actions are ignored.
func (s *Session) Input(action Action) {
	if s.phase != Playing {
		return
	}

	switch action {
	case MoveLeft:
		s.step(piece.Left)
	case MoveRight:
		s.step(piece.Right)
	case SoftDrop:
		s.step(piece.Down)
	case Rotate:
		s.rotate()
	case HardDrop:
		s.hardDrop()
	case Hold:
		s.hold()
	}
	s.flush()
}

func (s *Session) reset() {
	s.seq.Reset()
	s.grid = board.Grid{}
	s.active = nil
	s.ghost = nil
	s.next = s.seq.Next()
	s.held = tetromino.None
	s.canHold = true
	s.pacing = scoring.New()
	s.phase = NotStarted
	s.stats.reset()
	s.events.push(Event{Kind: EventReset})
}

// spawn deals the next kind into play, or ends the game if it does not fit.
func (s *Session) spawn() {
	kind := s.next
	p, ok := piece.Spawn(kind, &s.grid)
	if !ok {
		s.gameOver(kind)
		return
	}

	s.next = s.seq.Next()
	s.canHold = true
	s.setActive(p)
	s.stats.spawned(kind)
	s.events.push(Event{Kind: EventSpawned, Piece: kind})
}

func (s *Session) setActive(p piece.Piece) {
	ghost := piece.Ghost(p, &s.grid)
	s.active = &p
	s.ghost = &ghost
}

// step moves the active piece; a blocked downward step locks it.
func (s *Session) step(dir piece.Direction) {
	if s.active == nil {
		return
	}

	moved, ok := piece.Move(*s.active, &s.grid, dir)
	if ok {
		s.setActive(moved)
		s.events.push(Event{Kind: EventMoved, Piece: moved.Kind})
		return
	}

	if dir == piece.Down {
		s.lock(*s.active)
	}
}

func (s *Session) rotate() {
	if s.active == nil {
		return
	}

	rotated, ok := piece.Rotate(*s.active, &s.grid)
	if !ok {
		return
	}
	s.setActive(rotated)
	s.events.push(Event{Kind: EventRotated, Piece: rotated.Kind})
}

func (s *Session) hardDrop() {
	if s.active == nil {
		return
	}

	s.stats.hardDrops++
	s.lock(piece.HardDrop(*s.active, &s.grid))
}

// lock merges p into the grid, clears full rows and updates the pacing. The
// next piece arrives on the following tick.
func (s *Session) lock(p piece.Piece) {
	merged := p.Lock(s.grid)
	rows := merged.FullRows()

	var lines int
	s.grid, lines = merged.ClearFullRows()
	s.pacing = s.pacing.Apply(lines)
	s.active = nil
	s.ghost = nil

	s.stats.locked(lines)
	s.events.push(Event{Kind: EventLocked, Piece: p.Kind, Lines: lines, Rows: rows})
}

func (s *Session) gameOver(kind tetromino.Kind) {
	s.phase = GameOver
	s.events.push(Event{Kind: EventGameOver, Piece: kind})
}

// flush publishes the buffered events of the finished transition.
func (s *Session) flush() {
	if s.events.empty() {
		return
	}

	events := s.events.drain()
	if len(s.observers) == 0 {
		return
	}

	snap := s.Snapshot()
	for _, o := range s.observers {
		o.Observe(snap, events)
	}
}
