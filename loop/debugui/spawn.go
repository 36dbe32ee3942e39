package debugui

import "github.com/plus3/blockfall/loop"

// Install registers the debug windows on scheduler and returns the system
// that renders them. clock may be nil, which hides the gravity toggle.
func Install(scheduler *loop.Scheduler, clock *loop.ClockSystem) *ImguiSystem {
	session := scheduler.Driver().Session()

	inspector := NewSessionInspectorComponent(clock)
	board := NewBoardViewerComponent(12)
	stats := NewPerformanceStatsComponent(scheduler, 120)

	imguiSystem := &ImguiSystem{}
	imguiSystem.Add(func() { inspector.Render(session) })
	imguiSystem.Add(func() { board.Render(session) })
	imguiSystem.Add(stats.Render)

	scheduler.Register(inspector)
	scheduler.Register(imguiSystem)
	return imguiSystem
}
