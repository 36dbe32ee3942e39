// Package debugui provides Dear ImGui debug windows for a running blockfall
// session. Windows are plain render functions collected by ImguiSystem and
// deferred until the frame's session events have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function and records the current
// input capture state. Register it after the systems whose state the
// windows display.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add appends a render function.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
