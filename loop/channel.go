package loop

import "github.com/plus3/blockfall/tetris"

// ChannelInputSystem drains commands produced on other goroutines into the
// frame without blocking.
type ChannelInputSystem struct {
	Input <-chan tetris.Command
}

func (c *ChannelInputSystem) Execute(frame *Frame) {
	for {
		select {
		case cmd, ok := <-c.Input:
			if !ok {
				return
			}
			frame.Commands.Queue(cmd)
		default:
			return
		}
	}
}
