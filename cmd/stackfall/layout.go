package main

import "github.com/plus3/stackfall/board"

const (
	baseCellSize = 24
	baseMargin   = 20
	sidePanel    = 6
)

// layout holds pixel geometry for one window scale.
type layout struct {
	cell   int
	margin int
}

func newLayout(scale int) layout {
	return layout{
		cell:   baseCellSize * scale,
		margin: baseMargin * scale,
	}
}

// boardOrigin is the top-left pixel of grid cell (0, 0).
func (l layout) boardOrigin() (int, int) {
	return l.margin, l.margin
}

// panelOrigin is the top-left pixel of the score and preview column.
func (l layout) panelOrigin() (int, int) {
	return 2*l.margin + board.Width*l.cell, l.margin
}

func (l layout) screenSize() (int, int) {
	width := 3*l.margin + (board.Width+sidePanel)*l.cell
	height := 2*l.margin + board.Height*l.cell
	return width, height
}
