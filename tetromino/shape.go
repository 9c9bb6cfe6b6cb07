package tetromino

import "iter"

// MaxSize is the side length of the largest shape matrix (the I piece).
const MaxSize = 4

// Shape is a square occupancy matrix. Only the top-left Size×Size cells are
// meaningful; the rest are always false.
type Shape struct {
	Size  int
	Cells [MaxSize][MaxSize]bool
}

// Occupied reports whether the cell at row, col is filled. Coordinates outside
// the matrix are empty.
func (s Shape) Occupied(row, col int) bool {
	if row < 0 || col < 0 || row >= s.Size || col >= s.Size {
		return false
	}
	return s.Cells[row][col]
}

// Blocks yields the row and column of every occupied cell, row-major.
func (s Shape) Blocks() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := range s.Size {
			for col := range s.Size {
				if !s.Cells[row][col] {
					continue
				}
				if !yield(row, col) {
					return
				}
			}
		}
	}
}

// Rotate returns the shape turned a quarter turn clockwise: the source cell at
// (r, c) moves to (c, Size-1-r).
func (s Shape) Rotate() Shape {
	rotated := Shape{Size: s.Size}
	for row := range s.Size {
		for col := range s.Size {
			rotated.Cells[col][s.Size-1-row] = s.Cells[row][col]
		}
	}
	return rotated
}

// String draws the matrix with '#' for filled and '.' for empty cells, one
// line per row.
func (s Shape) String() string {
	buf := make([]byte, 0, s.Size*(s.Size+1))
	for row := range s.Size {
		for col := range s.Size {
			if s.Cells[row][col] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
