package sfx

import (
	"github.com/google/uuid"
	"github.com/plus3/blockfall/tetris"
)

// Cuer plays sound cues.
type Cuer interface {
	Play(Cue)
}

// Watcher is a tetris.RenderSink that compares consecutive snapshots of a
// run and plays a cue for each change worth hearing. Snapshots are passed on
// to next unchanged. The four-row cue keys off the latest lock rather than
// the line total, since one frame may hold several locks.
type Watcher struct {
	cuer Cuer
	next tetris.RenderSink

	runID  uuid.UUID
	lines  int
	pieces int
	over   bool
}

// NewWatcher wraps next, which may be nil.
func NewWatcher(cuer Cuer, next tetris.RenderSink) *Watcher {
	return &Watcher{cuer: cuer, next: next}
}

func (w *Watcher) Render(snap tetris.Snapshot) {
	if snap.RunID == w.runID {
		w.cue(snap)
	}

	w.runID = snap.RunID
	w.lines = snap.Lines
	w.pieces = snap.Pieces
	w.over = snap.GameOver

	if w.next != nil {
		w.next.Render(snap)
	}
}

func (w *Watcher) cue(snap tetris.Snapshot) {
	cleared := snap.Lines - w.lines
	switch {
	case snap.GameOver && !w.over:
		w.cuer.Play(CueGameOver)
	case cleared > 0 && snap.LastClear >= 4:
		w.cuer.Play(CueTetris)
	case cleared > 0:
		w.cuer.Play(CueClear)
	case snap.Pieces > w.pieces:
		w.cuer.Play(CueLock)
	}
}
