// Package piece implements the active-piece controller: spawning, shifting,
// rotating with wall kicks, and projecting the landing position.
//
// Every operation takes a Piece by value and returns a new one; a Piece is
// never modified in place.
package piece

import (
	"iter"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/tetromino"
)

// Direction is a single-step movement.
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) offset() board.Point {
	switch d {
	case Left:
		return board.Point{X: -1}
	case Right:
		return board.Point{X: 1}
	case Down:
		return board.Point{Y: 1}
	}
	return board.Point{}
}

// SpawnPosition is where every new piece's matrix is placed.
var SpawnPosition = board.Point{X: board.Width/2 - 2, Y: 0}

// Kicks are the offsets tried, in order, when a rotated shape collides.
var Kicks = [...]board.Point{
	{X: 0, Y: 0},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -2, Y: 0},
	{X: 2, Y: 0},
}

// Piece is a tetromino in play. Position is the grid coordinate of the top-left
// corner of Shape, and Rotation counts clockwise quarter turns modulo 4.
type Piece struct {
	Kind     tetromino.Kind
	Shape    tetromino.Shape
	Position board.Point
	Rotation int
}

// New returns a piece of kind in spawn orientation at SpawnPosition, without
// checking the grid.
func New(kind tetromino.Kind) Piece {
	return Piece{
		Kind:     kind,
		Shape:    tetromino.Preview(kind),
		Position: SpawnPosition,
	}
}

// Cells yields the grid coordinates covered by the piece.
func (p Piece) Cells() iter.Seq[board.Point] {
	return func(yield func(board.Point) bool) {
		for row, col := range p.Shape.Blocks() {
			if !yield(board.Point{X: p.Position.X + col, Y: p.Position.Y + row}) {
				return
			}
		}
	}
}

// Fits reports whether the piece can occupy its position on g.
func (p Piece) Fits(g *board.Grid) bool {
	return !g.Collides(p.Shape, p.Position)
}

// Lock returns g with the piece written into it.
func (p Piece) Lock(g board.Grid) board.Grid {
	return g.Merge(p.Kind, p.Shape, p.Position)
}

// Spawn places a new piece of kind at the spawn position. It returns false when
// the spawn position is already blocked, which ends the game.
func Spawn(kind tetromino.Kind, g *board.Grid) (Piece, bool) {
	p := New(kind)
	if !p.Fits(g) {
		return p, false
	}
	return p, true
}

// Move shifts p one step in dir. It returns false, and p unchanged, when the
// destination collides.
func Move(p Piece, g *board.Grid, dir Direction) (Piece, bool) {
	moved := p
	moved.Position = p.Position.Add(dir.offset())
	if !moved.Fits(g) {
		return p, false
	}
	return moved, true
}

// Rotate turns p a quarter turn clockwise, trying each of Kicks in order and
// keeping the first offset that fits. It returns false, and p unchanged, when
// no kick fits.
func Rotate(p Piece, g *board.Grid) (Piece, bool) {
	rotated := p.Shape.Rotate()
	for _, kick := range Kicks {
		pos := p.Position.Add(kick)
		if g.Collides(rotated, pos) {
			continue
		}
		return Piece{
			Kind:     p.Kind,
			Shape:    rotated,
			Position: pos,
			Rotation: (p.Rotation + 1) % 4,
		}, true
	}
	return p, false
}

// Ghost returns p moved straight down to the lowest row it can rest on.
func Ghost(p Piece, g *board.Grid) Piece {
	ghost := p
	for !g.Collides(ghost.Shape, ghost.Position.Add(board.Point{Y: 1})) {
		ghost.Position.Y++
	}
	return ghost
}

// HardDrop returns the position at which p locks when dropped instantly.
func HardDrop(p Piece, g *board.Grid) Piece {
	return Ghost(p, g)
}
