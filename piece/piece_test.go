package piece_test

import (
	"testing"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawn(t *testing.T) {
	var g board.Grid

	for _, kind := range tetromino.Kinds {
		p, ok := piece.Spawn(kind, &g)
		require.True(t, ok, "kind %s", kind)
		assert.Equal(t, board.Point{X: 3, Y: 0}, p.Position)
		assert.Equal(t, 0, p.Rotation)
		assert.Equal(t, tetromino.Preview(kind), p.Shape)
	}
}

func TestSpawnBlocked(t *testing.T) {
	var g board.Grid
	g[0][4] = board.CellOf(tetromino.Z)

	_, ok := piece.Spawn(tetromino.O, &g)
	assert.False(t, ok)

	// The I piece's top matrix row is empty, so only row 1 matters.
	_, ok = piece.Spawn(tetromino.I, &g)
	assert.True(t, ok)
	g[1][6] = board.CellOf(tetromino.Z)
	_, ok = piece.Spawn(tetromino.I, &g)
	assert.False(t, ok)
}

func TestMove(t *testing.T) {
	var g board.Grid
	p := piece.New(tetromino.T)

	left, ok := piece.Move(p, &g, piece.Left)
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 2, Y: 0}, left.Position)
	assert.Equal(t, board.Point{X: 3, Y: 0}, p.Position, "original is untouched")

	right, ok := piece.Move(p, &g, piece.Right)
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 4, Y: 0}, right.Position)

	down, ok := piece.Move(p, &g, piece.Down)
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 3, Y: 1}, down.Position)
}

func TestMoveBlockedByWalls(t *testing.T) {
	var g board.Grid
	p := piece.New(tetromino.O)

	for {
		next, ok := piece.Move(p, &g, piece.Left)
		if !ok {
			assert.Equal(t, p, next)
			break
		}
		p = next
	}
	assert.Equal(t, 0, p.Position.X)

	for {
		next, ok := piece.Move(p, &g, piece.Right)
		if !ok {
			break
		}
		p = next
	}
	assert.Equal(t, board.Width-2, p.Position.X)

	for {
		next, ok := piece.Move(p, &g, piece.Down)
		if !ok {
			break
		}
		p = next
	}
	assert.Equal(t, board.Height-2, p.Position.Y)
}

func TestRotateFourTimesRestoresPiece(t *testing.T) {
	var g board.Grid

	for _, kind := range tetromino.Kinds {
		start := piece.New(kind)
		start.Position = board.Point{X: 3, Y: 5}

		p := start
		for i := range 4 {
			var ok bool
			p, ok = piece.Rotate(p, &g)
			require.True(t, ok, "%s turn %d", kind, i)
			assert.Equal(t, (i+1)%4, p.Rotation)
			assert.Equal(t, start.Position, p.Position, "no kick needed in open space")
		}
		assert.Equal(t, start, p)
	}
}

func TestRotateKicksOffLeftWall(t *testing.T) {
	var g board.Grid
	// Vertical I hugging the left wall: its filled column is matrix column 2.
	p := piece.Piece{
		Kind:     tetromino.I,
		Shape:    tetromino.Orientation(tetromino.I, 1),
		Position: board.Point{X: -2, Y: 5},
		Rotation: 1,
	}
	require.True(t, p.Fits(&g))

	rotated, ok := piece.Rotate(p, &g)
	require.True(t, ok)
	assert.Equal(t, 2, rotated.Rotation)
	// (0,0), (-1,0) and (+1,0) still poke out; (0,-1) does too; (-2,0) worse; (+2,0) fits.
	assert.Equal(t, board.Point{X: 0, Y: 5}, rotated.Position)
	assert.True(t, rotated.Fits(&g))
}

func TestRotateKickOrder(t *testing.T) {
	// T pointing up above a block: the clockwise shape overlaps it, and the
	// first kick (-1,0) resolves it.
	g := board.MustParse(
		"..........",
		"....Z.....",
		"..........",
	)
	p := piece.Piece{
		Kind:     tetromino.T,
		Shape:    tetromino.Preview(tetromino.T),
		Position: board.Point{X: 3, Y: 16},
	}
	require.True(t, p.Fits(&g))
	require.True(t, g.Collides(p.Shape.Rotate(), p.Position))

	rotated, ok := piece.Rotate(p, &g)
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 2, Y: 16}, rotated.Position)
	assert.Equal(t, 1, rotated.Rotation)
}

func TestRotateUpKick(t *testing.T) {
	// Horizontal I one row above the floor: the vertical shape pokes through
	// the floor for every horizontal kick, so (0,-1) is used.
	var g board.Grid
	p := piece.Piece{
		Kind:     tetromino.I,
		Shape:    tetromino.Preview(tetromino.I),
		Position: board.Point{X: 3, Y: 17},
	}
	require.True(t, p.Fits(&g))

	rotated, ok := piece.Rotate(p, &g)
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 3, Y: 16}, rotated.Position)
	assert.Equal(t, 1, rotated.Rotation)
}

func TestRotateRejected(t *testing.T) {
	g := board.MustParse(
		"ZZZZ.ZZZZZ",
		"ZZZZ.ZZZZZ",
		"ZZZZ.ZZZZZ",
		"ZZZZ.ZZZZZ",
	)
	p := piece.Piece{
		Kind:     tetromino.I,
		Shape:    tetromino.Orientation(tetromino.I, 1),
		Position: board.Point{X: 2, Y: 16},
		Rotation: 1,
	}
	require.True(t, p.Fits(&g))

	rotated, ok := piece.Rotate(p, &g)
	assert.False(t, ok)
	assert.Equal(t, p, rotated)
}

func TestRotateRejectedAtCeiling(t *testing.T) {
	var g board.Grid
	// Horizontal I lifted so its filled row sits on row 0. Turning it vertical
	// needs the matrix's first row, which would be above the grid, and no kick
	// moves the piece down.
	p := piece.New(tetromino.I)
	p.Position.Y = -1
	require.True(t, p.Fits(&g))

	rotated, ok := piece.Rotate(p, &g)
	assert.False(t, ok)
	assert.Equal(t, p, rotated)
}

func TestGhost(t *testing.T) {
	g := board.MustParse(
		"..........",
		"....L.....",
		"..LLL.....",
	)
	p := piece.New(tetromino.O)

	ghost := piece.Ghost(p, &g)
	assert.Equal(t, board.Point{X: 3, Y: 16}, ghost.Position)
	assert.Equal(t, p.Shape, ghost.Shape)
	assert.Equal(t, p.Rotation, ghost.Rotation)
	assert.Equal(t, board.Point{X: 3, Y: 0}, p.Position)

	again := piece.Ghost(ghost, &g)
	assert.Equal(t, ghost, again, "a resting piece is its own ghost")
}

func TestGhostOnEmptyGrid(t *testing.T) {
	var g board.Grid
	for _, kind := range tetromino.Kinds {
		ghost := piece.Ghost(piece.New(kind), &g)
		lowest := 0
		for cell := range ghost.Cells() {
			lowest = max(lowest, cell.Y)
		}
		assert.Equal(t, board.Height-1, lowest, "kind %s", kind)
	}
}

func TestHardDropMatchesGhost(t *testing.T) {
	g := board.MustParse(
		"S.........",
		"SS...JJJ..",
		".S.....J..",
	)
	for _, kind := range tetromino.Kinds {
		p := piece.New(kind)
		assert.Equal(t, piece.Ghost(p, &g), piece.HardDrop(p, &g))
	}
}

func TestLock(t *testing.T) {
	var g board.Grid
	p := piece.HardDrop(piece.New(tetromino.J), &g)

	locked := p.Lock(g)
	assert.Equal(t, board.MustParse(
		"...J......",
		"...JJJ....",
	), locked)
	assert.Equal(t, 0, g.Occupied())
}

func TestCells(t *testing.T) {
	p := piece.New(tetromino.S)
	var cells []board.Point
	for cell := range p.Cells() {
		cells = append(cells, cell)
	}
	assert.Equal(t, []board.Point{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 1}}, cells)
}
