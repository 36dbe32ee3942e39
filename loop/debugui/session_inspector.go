package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

func NewSessionInspectorComponent(clock *loop.ClockSystem) *SessionInspectorComponent {
	return &SessionInspectorComponent{clock: clock}
}

// Request schedules cmd for the next frame. Buttons call this from inside a
// deferred render, after the current frame has already been flushed.
func (si *SessionInspectorComponent) Request(cmd tetris.Command) {
	si.pending = append(si.pending, cmd)
}

// Execute forwards requested commands into the frame.
func (si *SessionInspectorComponent) Execute(frame *loop.Frame) {
	for _, cmd := range si.pending {
		frame.Commands.Queue(cmd)
	}
	si.pending = si.pending[:0]
}

func (si *SessionInspectorComponent) Render(session *tetris.Session) {
	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	cfg := session.Config()
	imgui.Text(fmt.Sprintf("Run: %s", session.RunID()))
	imgui.Text(fmt.Sprintf("State: %s", session.State()))
	imgui.Text(fmt.Sprintf("Board: %dx%d", cfg.Cols, cfg.Rows))
	imgui.Text(fmt.Sprintf("Score: %d", session.Score()))
	imgui.Text(fmt.Sprintf("Lines: %d", session.Lines()))
	imgui.Text(fmt.Sprintf("Pieces: %d", session.Pieces()))
	imgui.Text(fmt.Sprintf("Drop Timer: %s / %s", session.DropTimer(), cfg.DropInterval))

	imgui.Separator()
	if current, ok := session.Current(); ok {
		imgui.Text(fmt.Sprintf("Current: %s at (%d, %d), ghost row %d", current.Kind, current.Row, current.Col, session.GhostRow()))
	}
	if next, ok := session.Next(); ok {
		imgui.Text(fmt.Sprintf("Next: %s", next.Kind))
	}

	imgui.Separator()
	if si.clock != nil {
		imgui.Checkbox("Pause Gravity", &si.clock.Paused)
	}
	if imgui.Button("Restart") {
		si.Request(tetris.CommandRestart)
	}
	imgui.SameLine()
	if imgui.Button("Hard Drop") {
		si.Request(tetris.CommandHardDrop)
	}

	imgui.End()
}
