package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/tetromino"
)

// SessionPanel shows the live game state and per-game counters.
type SessionPanel struct{}

func NewSessionPanel() *SessionPanel {
	return &SessionPanel{}
}

func (sp *SessionPanel) Render(frame Frame) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := frame.Snapshot
	imgui.Text(fmt.Sprintf("Phase: %s", snap.Phase))
	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", snap.Score, snap.Level, snap.Lines))
	imgui.Text(fmt.Sprintf("Drop Interval: %s", snap.DropInterval))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Active: %s", pieceLabel(snap.Active)))
	imgui.Text(fmt.Sprintf("Ghost: %s", pieceLabel(snap.Ghost)))
	imgui.Text(fmt.Sprintf("Next: %s", kindLabel(snap.Next)))
	imgui.Text(fmt.Sprintf("Held: %s (hold %s)", kindLabel(snap.Held), availability(snap.CanHold)))
	imgui.Text(fmt.Sprintf("Filled Cells: %d", snap.Grid.Occupied()))

	if imgui.TreeNodeStr("Pieces") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Dealt")
			imgui.TableHeadersRow()

			for _, kind := range tetromino.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", snap.Stats.Spawned[kind]))
			}

			imgui.EndTable()
		}
		imgui.Text(fmt.Sprintf("Total: %d", snap.Stats.Pieces))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Locks") {
		imgui.Text(fmt.Sprintf("Locks: %d", snap.Stats.Locks))
		imgui.Text(fmt.Sprintf("Hard Drops: %d", snap.Stats.HardDrops))
		imgui.Text(fmt.Sprintf("Holds: %d", snap.Stats.Holds))
		for lines := 1; lines < len(snap.Stats.Clears); lines++ {
			imgui.BulletText(fmt.Sprintf("%s: %d", clearName(lines), snap.Stats.Clears[lines]))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func pieceLabel(p *piece.Piece) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("%s at (%d,%d) rot %d", p.Kind, p.Position.X, p.Position.Y, p.Rotation)
}

func kindLabel(kind tetromino.Kind) string {
	if !kind.Valid() {
		return "-"
	}
	return kind.String()
}

func availability(ok bool) string {
	if ok {
		return "ready"
	}
	return "used"
}

var clearNames = [...]string{"", "Single", "Double", "Triple", "Tetris"}

func clearName(lines int) string {
	if lines <= 0 || lines >= len(clearNames) {
		return fmt.Sprintf("%d lines", lines)
	}
	return clearNames[lines]
}
