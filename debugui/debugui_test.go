package debugui

import (
	"testing"
	"time"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetromino"
	"github.com/stretchr/testify/assert"
)

func TestHistoryAverage(t *testing.T) {
	h := newHistory(4)
	assert.Equal(t, float32(0), h.average())

	h.push(10)
	h.push(20)
	assert.Equal(t, float32(15), h.average())

	for range 4 {
		h.push(8)
	}
	assert.Equal(t, float32(8), h.average())
	assert.Len(t, h.values, 4)
}

func TestHistoryMinimumSize(t *testing.T) {
	h := newHistory(0)
	h.push(3)
	assert.Equal(t, float32(3), h.average())
}

func TestPieceLabel(t *testing.T) {
	assert.Equal(t, "none", pieceLabel(nil))

	p := piece.New(tetromino.T)
	p.Position = board.Point{X: 2, Y: 7}
	p.Rotation = 3
	assert.Equal(t, "T at (2,7) rot 3", pieceLabel(&p))
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "-", kindLabel(tetromino.None))
	assert.Equal(t, "Z", kindLabel(tetromino.Z))
}

func TestClearName(t *testing.T) {
	assert.Equal(t, "Single", clearName(1))
	assert.Equal(t, "Tetris", clearName(4))
	assert.Equal(t, "5 lines", clearName(5))
}

func TestGravityLabel(t *testing.T) {
	assert.Equal(t, "Gravity: stopped", gravityLabel(session.DriverStats{}))
	assert.Equal(t, "Gravity: every 700ms", gravityLabel(session.DriverStats{Interval: 700 * time.Millisecond}))
}
