// Package board models the playfield: a fixed 20×10 grid of cells with
// collision testing, piece merging and full-row removal.
package board

import (
	"strings"

	"github.com/plus3/stackfall/tetromino"
)

const (
	Width  = 10
	Height = 20
)

// Cell is the content of one grid square: Empty or the kind of the piece that
// locked there.
type Cell uint8

const Empty Cell = 0

// Ghost marks ghost-projection squares in rendered overlays. Merge never
// writes it, so it never appears in a playfield grid.
const Ghost = Cell(tetromino.L + 1)

// CellOf returns the cell value a locked piece of kind leaves behind.
func CellOf(kind tetromino.Kind) Cell {
	return Cell(kind)
}

// Kind returns the piece kind stored in c, or tetromino.None for empty and
// ghost cells.
func (c Cell) Kind() tetromino.Kind {
	if c == Ghost {
		return tetromino.None
	}
	return tetromino.Kind(c)
}

// Filled reports whether the cell blocks movement.
func (c Cell) Filled() bool {
	return c != Empty && c != Ghost
}

// Point is an integer grid coordinate; Y grows downwards from row 0 at the top.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// InBounds reports whether x, y addresses a cell of the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Grid is the playfield, indexed [row][column]. Its zero value is an empty
// board and, being an array, it is copied by value.
type Grid [Height][Width]Cell

// At returns the cell at x, y. Out-of-bounds coordinates read as Empty.
func (g *Grid) At(x, y int) Cell {
	if !InBounds(x, y) {
		return Empty
	}
	return g[y][x]
}

// Collides reports whether shape placed with its top-left corner at pos
// overlaps a filled cell or leaves the grid. Rows above the top edge count as
// outside, so a shape is never allowed to poke out of the ceiling.
func (g *Grid) Collides(shape tetromino.Shape, pos Point) bool {
	for row, col := range shape.Blocks() {
		x := pos.X + col
		y := pos.Y + row

		if !InBounds(x, y) {
			return true
		}

		if g[y][x].Filled() {
			return true
		}
	}

	return false
}

// Merge returns a copy of g with every occupied cell of shape at pos set to
// kind. Cells falling outside the grid are dropped.
func (g Grid) Merge(kind tetromino.Kind, shape tetromino.Shape, pos Point) Grid {
	for row, col := range shape.Blocks() {
		x := pos.X + col
		y := pos.Y + row

		if InBounds(x, y) {
			g[y][x] = CellOf(kind)
		}
	}
	return g
}

// RowFull reports whether every cell of row y is filled.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for _, cell := range g[y] {
		if !cell.Filled() {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := range Height {
		if g.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullRows removes every full row at once and shifts the remaining rows
// down, filling the top with empty rows. It returns the new grid and the number
// of rows removed.
func (g Grid) ClearFullRows() (Grid, int) {
	var cleared Grid
	write := Height - 1
	count := 0

	for y := Height - 1; y >= 0; y-- {
		if g.RowFull(y) {
			count++
			continue
		}
		cleared[write] = g[y]
		write--
	}

	return cleared, count
}

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if g[y][x].Filled() {
				n++
			}
		}
	}
	return n
}

// String draws the grid one row per line using kind letters, '.' for empty
// and '+' for ghost cells.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range Height {
		for x := range Width {
			sb.WriteByte(cellRune(g[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	switch {
	case c == Empty:
		return '.'
	case c == Ghost:
		return '+'
	case c.Kind().Valid():
		return c.Kind().String()[0]
	}
	return '?'
}
