package loop

// System is a unit of per-frame behavior. Systems never mutate the session
// directly; they enqueue work on frame.Commands, which the scheduler flushes
// into the driver once every system has run.
type System interface {
	Execute(frame *Frame)
}
