package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/session"
)

// PerformancePanel plots frame times and the driver's processing statistics.
type PerformancePanel struct {
	frames *history
}

func NewPerformancePanel(historyFrames int) *PerformancePanel {
	return &PerformancePanel{frames: newHistory(historyFrames)}
}

func (p *PerformancePanel) Render(frame Frame) {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.frames.push(frame.DeltaTime * 1000.0)

	avgFrameTime := p.frames.average()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}
	imgui.Text(gravityLabel(frame.Stats))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frames.values[0], int32(len(p.frames.values)))

	if imgui.TreeNodeStr("Driver") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("DriverStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Work")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, stats := range []session.ProcessStats{frame.Stats.Ticks, frame.Stats.Inputs, frame.Stats.Controls} {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(stats.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(stats.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(stats.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(stats.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func gravityLabel(stats session.DriverStats) string {
	if stats.Interval == 0 {
		return "Gravity: stopped"
	}
	return fmt.Sprintf("Gravity: every %s", stats.Interval)
}
