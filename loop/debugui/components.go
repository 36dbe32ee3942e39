package debugui

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

type PerformanceStatsComponent struct {
	scheduler *loop.Scheduler
	timer     *FrameTimer
	history   *FrameHistory
}

type SessionInspectorComponent struct {
	clock   *loop.ClockSystem
	pending []tetris.Command
}

type BoardViewerComponent struct {
	cellSize float32
	showRows bool
}
