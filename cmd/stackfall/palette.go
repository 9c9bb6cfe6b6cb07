package main

import (
	"image/color"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/tetromino"
)

// Palette maps board cells to colours.
type Palette struct {
	Background color.RGBA
	Frame      color.RGBA
	Text       color.RGBA
	Cells      [board.Ghost + 1]color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{0x11, 0x11, 0x11, 0xff},
	Frame:      color.RGBA{0x80, 0x80, 0x80, 0xff},
	Text:       color.RGBA{0xff, 0xff, 0xff, 0xff},
	Cells: [...]color.RGBA{
		board.Empty:             {0x22, 0x22, 0x22, 0xff},
		board.Cell(tetromino.I): {0x00, 0xff, 0xff, 0xff},
		board.Cell(tetromino.O): {0xff, 0xff, 0x00, 0xff},
		board.Cell(tetromino.T): {0x80, 0x00, 0x80, 0xff},
		board.Cell(tetromino.S): {0x00, 0xff, 0x00, 0xff},
		board.Cell(tetromino.Z): {0xff, 0x00, 0x00, 0xff},
		board.Cell(tetromino.J): {0x00, 0x00, 0xff, 0xff},
		board.Cell(tetromino.L): {0xff, 0xa5, 0x00, 0xff},
		board.Ghost:             {0x80, 0x80, 0x80, 0x80},
	},
}

// Color returns the colour for c, falling back to the empty cell colour for
// values outside the palette.
func (p Palette) Color(c board.Cell) color.RGBA {
	if int(c) >= len(p.Cells) {
		return p.Cells[board.Empty]
	}
	return p.Cells[c]
}
