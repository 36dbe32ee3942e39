package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Commands buffers session input for the end of a frame. Queued commands and
// ticks are replayed into the driver in the order they were added, so the
// session only ever sees one writer.
type Commands struct {
	events []event
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type event struct {
	cmd   tetris.Command
	delta time.Duration
	tick  bool
}

type deferCommand struct {
	fn func()
}

// FlushResult summarizes what a flush did to the session.
type FlushResult struct {
	Applied int
	Ignored int
	Drops   int
}

// Queue adds a player command.
func (c *Commands) Queue(cmd tetris.Command) {
	c.events = append(c.events, event{cmd: cmd})
}

// Tick adds a gravity tick of the given length.
func (c *Commands) Tick(delta time.Duration) {
	c.events = append(c.events, event{delta: delta, tick: true})
}

// Defer queues a function to run after all session events are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Len returns the number of pending session events.
func (c *Commands) Len() int {
	return len(c.events)
}

// Flush replays all buffered events into driver and then runs deferred
// functions, resetting the buffer state. If a command changed the session
// after the last tick, the driver renders once more so the frame ends on
// the latest state.
func (c *Commands) Flush(driver *tetris.Driver) FlushResult {
	var result FlushResult
	stale := false

	for _, ev := range c.events {
		if ev.tick {
			if driver.Tick(ev.delta) {
				result.Drops++
			}
			stale = false
			continue
		}
		if driver.Handle(ev.cmd) {
			result.Applied++
			stale = true
		} else {
			result.Ignored++
		}
	}

	if stale {
		driver.Render()
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.events = c.events[:0]
	c.defers = c.defers[:0]
	return result
}
