package loop

import "github.com/plus3/blockfall/tetris"

// Frame is handed to every system during one scheduler pass. Session is
// for reads only.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *tetris.Session
}

func newFrame(dt float64, session *tetris.Session) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   session,
	}
}
