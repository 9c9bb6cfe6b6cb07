package board

import (
	"fmt"

	"github.com/plus3/stackfall/tetromino"
)

// Parse builds a grid from text rows in the String format ('.' empty, kind
// letters filled). Rows are aligned to the bottom of the grid, so callers only
// spell out the part of the stack they care about.
func Parse(rows ...string) (Grid, error) {
	var g Grid
	if len(rows) > Height {
		return g, fmt.Errorf("parse grid: %d rows exceeds height %d", len(rows), Height)
	}

	offset := Height - len(rows)
	for i, row := range rows {
		if len(row) != Width {
			return g, fmt.Errorf("parse grid: row %d has width %d, want %d", i, len(row), Width)
		}
		for x := range Width {
			cell, ok := parseCell(row[x])
			if !ok {
				return g, fmt.Errorf("parse grid: row %d column %d: unknown cell %q", i, x, row[x])
			}
			g[offset+i][x] = cell
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(rows ...string) Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

func parseCell(b byte) (Cell, bool) {
	if b == '.' {
		return Empty, true
	}
	for _, kind := range tetromino.Kinds {
		if kind.String()[0] == b {
			return CellOf(kind), true
		}
	}
	return Empty, false
}
