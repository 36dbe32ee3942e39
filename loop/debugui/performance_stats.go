package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// FrameHistory is a ring buffer of frame times in milliseconds.
type FrameHistory struct {
	frames []float32
	index  int
}

func NewFrameHistory(historyFrames int) *FrameHistory {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &FrameHistory{frames: make([]float32, historyFrames)}
}

// Record stores a frame time given in seconds.
func (h *FrameHistory) Record(deltaTime float32) {
	h.frames[h.index] = deltaTime * 1000.0
	h.index = (h.index + 1) % len(h.frames)
}

// Average returns the mean frame time in milliseconds.
func (h *FrameHistory) Average() float32 {
	var total float32
	for _, ft := range h.frames {
		total += ft
	}
	return total / float32(len(h.frames))
}

func NewPerformanceStatsComponent(scheduler *loop.Scheduler, historyFrames int) *PerformanceStatsComponent {
	return &PerformanceStatsComponent{
		scheduler: scheduler,
		timer:     NewFrameTimer(),
		history:   NewFrameHistory(historyFrames),
	}
}

func (ps *PerformanceStatsComponent) Render() {
	ps.history.Record(ps.timer.GetDeltaTime())

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Commands: %d applied, %d ignored", stats.Applied, stats.Ignored))
	imgui.Text(fmt.Sprintf("Gravity Drops: %d", stats.Drops))

	avgFrameTime := ps.history.Average()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.frames[0], int32(len(ps.history.frames)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
