package loop

import "time"

// ClockSystem turns the frame delta into a gravity tick. Register it after
// input systems so a frame's commands are applied before its tick.
type ClockSystem struct {
	// Scale multiplies the frame delta; zero means 1.
	Scale float64
	// Paused stops gravity without blocking player commands. A paused clock
	// still queues an empty tick so every frame renders.
	Paused bool
}

func (c *ClockSystem) Execute(frame *Frame) {
	if c.Paused {
		frame.Commands.Tick(0)
		return
	}
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	frame.Commands.Tick(Seconds(frame.DeltaTime * scale))
}

// Seconds converts a float second count into a time.Duration.
func Seconds(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}
