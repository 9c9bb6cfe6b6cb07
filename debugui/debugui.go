// Package debugui provides Dear ImGui panels that inspect a running game.
// Panels draw into an overlay hosted by the ebiten front end.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/session"
)

// Frame is the data available to panels for one rendered frame.
type Frame struct {
	Snapshot  session.Snapshot
	Stats     session.DriverStats
	DeltaTime float32
}

// Panel is a Dear ImGui window drawn once per frame.
type Panel interface {
	Render(frame Frame)
}

// Overlay wraps the ebiten Dear ImGui backend and the panels drawn with it.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	panels  []Panel
}

// NewOverlay creates the backend window and registers panels in draw order.
func NewOverlay(title string, width, height int, panels ...Panel) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend: backend,
		panels:  panels,
	}
}

// Update builds this frame's ImGui draw lists.
func (o *Overlay) Update(frame Frame) {
	o.backend.BeginFrame()
	for _, panel := range o.panels {
		panel.Render(frame)
	}
	o.backend.EndFrame()
}

// Draw renders the overlay on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the window size to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantCaptureKeyboard reports whether an ImGui widget has keyboard focus, in
// which case game keys should be ignored.
func (o *Overlay) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
