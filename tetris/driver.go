package tetris

import "time"

//go:generate go tool stringer -type=Command -trimprefix=Command

// Command is a discrete player input.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
	CommandRestart
)

var commandNames = map[string]Command{
	"move_left":  CommandMoveLeft,
	"move_right": CommandMoveRight,
	"soft_drop":  CommandSoftDrop,
	"rotate":     CommandRotate,
	"hard_drop":  CommandHardDrop,
	"restart":    CommandRestart,
}

// ParseCommand converts an action name such as "move_left" or "hard_drop"
// into a Command.
func ParseCommand(name string) (Command, bool) {
	cmd, ok := commandNames[name]
	return cmd, ok
}

// RenderSink receives a snapshot once per tick, after the tick's state
// changes are complete.
type RenderSink interface {
	Render(Snapshot)
}

// RenderSinkFunc adapts a plain function to RenderSink.
type RenderSinkFunc func(Snapshot)

func (f RenderSinkFunc) Render(snap Snapshot) { f(snap) }

// Driver feeds player commands and elapsed time into a Session.
type Driver struct {
	session *Session
	render  RenderSink
}

// NewDriver wraps session. render may be nil.
func NewDriver(session *Session, render RenderSink) *Driver {
	return &Driver{session: session, render: render}
}

// Session returns the driven session.
func (d *Driver) Session() *Session { return d.session }

// SetRenderSink replaces the render sink.
func (d *Driver) SetRenderSink(render RenderSink) { d.render = render }

// Handle applies a single command and reports whether the session changed.
// Unknown commands are ignored, and while the game is over only
// CommandRestart has any effect.
func (d *Driver) Handle(cmd Command) bool {
	switch cmd {
	case CommandMoveLeft:
		return d.session.Move(-1)
	case CommandMoveRight:
		return d.session.Move(1)
	case CommandSoftDrop:
		return d.session.SoftDrop()
	case CommandRotate:
		return d.session.Rotate()
	case CommandHardDrop:
		return d.session.HardDrop()
	case CommandRestart:
		d.session.Restart()
		return true
	default:
		return false
	}
}

// Tick advances gravity by delta and then hands a snapshot to the render
// sink. It reports whether a gravity drop ran.
func (d *Driver) Tick(delta time.Duration) bool {
	dropped := d.session.Tick(delta)
	d.Render()
	return dropped
}

// Render hands a snapshot of the current state to the render sink.
func (d *Driver) Render() {
	if d.render != nil {
		d.render.Render(d.session.Snapshot())
	}
}
