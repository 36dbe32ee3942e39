package sfx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	cues []Cue
}

func (r *recorder) Play(cue Cue) { r.cues = append(r.cues, cue) }

func TestNotes(t *testing.T) {
	for _, cue := range []Cue{CueLock, CueClear, CueTetris, CueGameOver} {
		assert.NotEmpty(t, notes(cue), "cue %d", cue)
	}
	assert.Empty(t, notes(Cue(42)))
}

func TestPlayerSilentBeforeInitialize(t *testing.T) {
	p := NewPlayer(0.5)
	p.Play(CueClear)
	p.Close()
}

func TestWatcher(t *testing.T) {
	rec := &recorder{}
	var forwarded int
	w := NewWatcher(rec, tetris.RenderSinkFunc(func(tetris.Snapshot) { forwarded++ }))

	run := uuid.New()
	w.Render(tetris.Snapshot{RunID: run})
	assert.Empty(t, rec.cues)

	w.Render(tetris.Snapshot{RunID: run})
	w.Render(tetris.Snapshot{RunID: run, Pieces: 1})
	w.Render(tetris.Snapshot{RunID: run, Pieces: 2, Lines: 1})
	w.Render(tetris.Snapshot{RunID: run, Pieces: 3, Lines: 5, LastClear: 4})
	w.Render(tetris.Snapshot{RunID: run, Pieces: 4, Lines: 5, GameOver: true})
	w.Render(tetris.Snapshot{RunID: run, Pieces: 4, Lines: 5, GameOver: true})

	assert.Equal(t, []Cue{CueLock, CueClear, CueTetris, CueGameOver}, rec.cues)

	// A restart starts a new run and resets the baseline.
	w.Render(tetris.Snapshot{RunID: uuid.New()})
	assert.Len(t, rec.cues, 4)
	assert.Equal(t, 8, forwarded)
}

func TestWatcherSeveralClearsInOneFrame(t *testing.T) {
	rec := &recorder{}
	w := NewWatcher(rec, nil)

	run := uuid.New()
	w.Render(tetris.Snapshot{RunID: run})

	// Two doubles between renders add four lines but are not a four-row clear.
	w.Render(tetris.Snapshot{RunID: run, Pieces: 2, Lines: 4, LastClear: 2})
	// A four-row clear followed by a plain lock in the same frame.
	w.Render(tetris.Snapshot{RunID: run, Pieces: 4, Lines: 8, LastClear: 0})
	w.Render(tetris.Snapshot{RunID: run, Pieces: 5, Lines: 12, LastClear: 4})

	assert.Equal(t, []Cue{CueClear, CueClear, CueTetris}, rec.cues)
}
