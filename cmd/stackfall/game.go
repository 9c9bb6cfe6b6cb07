package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/debugui"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetromino"
)

// Game implements ebiten.Game on top of a session.Driver. Update only maps
// keys to driver requests; the driver goroutine owns the session.
type Game struct {
	driver  *session.Driver
	overlay *debugui.Overlay
	layout  layout
	palette Palette

	pressDuration func(ebiten.Key) int
	lastUpdate    time.Time
}

func (g *Game) Update() error {
	select {
	case <-g.driver.Done():
		return ebiten.Termination
	default:
	}

	now := time.Now()
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	snap := g.driver.Snapshot()
	if g.overlay != nil {
		g.overlay.Update(debugui.Frame{
			Snapshot:  snap,
			Stats:     g.driver.GetStats(),
			DeltaTime: float32(dt.Seconds()),
		})
		if g.overlay.WantCaptureKeyboard() {
			return nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Reset()
		return nil
	}
	if !snap.Started() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.driver.Start()
		}
		return nil
	}

	for _, action := range pollActions(g.pressDuration) {
		g.driver.Send(action)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	snap := g.driver.Snapshot()
	g.drawBoard(screen, snap.Overlay())
	g.drawPanel(screen, snap)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) drawBoard(screen *ebiten.Image, grid board.Grid) {
	ox, oy := g.layout.boardOrigin()
	cell := float32(g.layout.cell)

	vector.StrokeRect(screen, float32(ox)-2, float32(oy)-2,
		cell*board.Width+4, cell*board.Height+4, 2, g.palette.Frame, false)

	for y := range board.Height {
		for x := range board.Width {
			g.drawCell(screen, ox+x*g.layout.cell, oy+y*g.layout.cell, g.palette.Color(grid[y][x]))
		}
	}
}

func (g *Game) drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	size := float32(g.layout.cell)
	vector.DrawFilledRect(screen, float32(x)+1, float32(y)+1, size-2, size-2, clr, false)
}

func (g *Game) drawPanel(screen *ebiten.Image, snap session.Snapshot) {
	px, py := g.layout.panelOrigin()
	line := g.layout.cell

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", snap.Score), px, py)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL\n%d", snap.Level), px, py+2*line)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", snap.Lines), px, py+4*line)

	ebitenutil.DebugPrintAt(screen, "NEXT", px, py+6*line)
	g.drawPreview(screen, snap.Next, px, py+7*line)
	ebitenutil.DebugPrintAt(screen, "HOLD", px, py+12*line)
	g.drawPreview(screen, snap.Held, px, py+13*line)

	ebitenutil.DebugPrintAt(screen, statusText(snap), px, py+18*line)
}

func (g *Game) drawPreview(screen *ebiten.Image, kind tetromino.Kind, x, y int) {
	if !kind.Valid() {
		return
	}
	clr := g.palette.Color(board.CellOf(kind))
	for row, col := range tetromino.Preview(kind).Blocks() {
		g.drawCell(screen, x+col*g.layout.cell, y+row*g.layout.cell, clr)
	}
}

func statusText(snap session.Snapshot) string {
	switch snap.Phase {
	case session.NotStarted:
		return "ENTER to start"
	case session.GameOver:
		return "GAME OVER\nENTER to retry"
	default:
		return "C hold\nSPACE drop"
	}
}
