package tetris_test

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(render tetris.RenderSink, kinds ...tetris.Kind) *tetris.Driver {
	session := tetris.NewSession(tetris.DefaultConfig(),
		tetris.WithSource(tetris.NewSequenceSource(kinds...)),
		tetris.WithLogger(log.New(io.Discard, "", 0)),
	)
	return tetris.NewDriver(session, render)
}

func TestParseCommand(t *testing.T) {
	tests := map[string]tetris.Command{
		"move_left":  tetris.CommandMoveLeft,
		"move_right": tetris.CommandMoveRight,
		"soft_drop":  tetris.CommandSoftDrop,
		"rotate":     tetris.CommandRotate,
		"hard_drop":  tetris.CommandHardDrop,
		"restart":    tetris.CommandRestart,
	}
	for name, expected := range tests {
		cmd, ok := tetris.ParseCommand(name)
		assert.True(t, ok, name)
		assert.Equal(t, expected, cmd)
	}

	_, ok := tetris.ParseCommand("hold")
	assert.False(t, ok)
}

func TestDriverHandle(t *testing.T) {
	d := newDriver(nil, tetris.KindT)
	s := d.Session()

	assert.True(t, d.Handle(tetris.CommandMoveLeft))
	current, _ := s.Current()
	assert.Equal(t, 2, current.Col)

	assert.True(t, d.Handle(tetris.CommandMoveRight))
	assert.True(t, d.Handle(tetris.CommandMoveRight))
	current, _ = s.Current()
	assert.Equal(t, 4, current.Col)

	assert.True(t, d.Handle(tetris.CommandSoftDrop))
	current, _ = s.Current()
	assert.Equal(t, 0, current.Row)

	assert.True(t, d.Handle(tetris.CommandRotate))
	current, _ = s.Current()
	assert.True(t, tetris.RotateClockwise(tetris.KindT.Shape()).Equal(current.Shape))

	assert.True(t, d.Handle(tetris.CommandHardDrop))
	assert.Equal(t, 1, s.Pieces())

	assert.False(t, d.Handle(tetris.CommandNone))
	assert.False(t, d.Handle(tetris.Command(99)))

	runID := s.RunID()
	assert.True(t, d.Handle(tetris.CommandRestart))
	assert.NotEqual(t, runID, s.RunID())
	assert.Zero(t, s.Pieces())
}

func TestDriverIgnoresInputAfterGameOver(t *testing.T) {
	d := newDriver(nil, tetris.KindO)
	s := d.Session()

	for !s.GameOver() {
		d.Handle(tetris.CommandHardDrop)
	}
	filled := s.Board().FilledCount()

	for _, cmd := range []tetris.Command{
		tetris.CommandMoveLeft,
		tetris.CommandMoveRight,
		tetris.CommandSoftDrop,
		tetris.CommandRotate,
		tetris.CommandHardDrop,
	} {
		assert.False(t, d.Handle(cmd), cmd.String())
	}
	assert.False(t, d.Tick(time.Minute))
	assert.Equal(t, filled, s.Board().FilledCount())

	assert.True(t, d.Handle(tetris.CommandRestart))
	assert.False(t, s.GameOver())
	assert.Zero(t, s.Board().FilledCount())
}

func TestDriverTickRenders(t *testing.T) {
	var frames []tetris.Snapshot
	d := newDriver(tetris.RenderSinkFunc(func(snap tetris.Snapshot) {
		frames = append(frames, snap)
	}), tetris.KindS)

	assert.False(t, d.Tick(500*time.Millisecond))
	assert.True(t, d.Tick(500*time.Millisecond))

	require.Len(t, frames, 2)
	assert.Equal(t, -1, frames[0].Current.Row)
	assert.Equal(t, 500*time.Millisecond, frames[0].DropTimer)
	assert.Equal(t, 0, frames[1].Current.Row)
	assert.Zero(t, frames[1].DropTimer)
}

func TestDriverSetRenderSink(t *testing.T) {
	d := newDriver(nil, tetris.KindS)
	d.Tick(time.Millisecond)

	calls := 0
	d.SetRenderSink(tetris.RenderSinkFunc(func(tetris.Snapshot) { calls++ }))
	d.Tick(time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "HardDrop", tetris.CommandHardDrop.String())
	assert.Equal(t, "GameOver", tetris.StateGameOver.String())
	assert.Equal(t, "Command(42)", tetris.Command(42).String())
}

func TestDriverRenderWithoutTick(t *testing.T) {
	var snaps []tetris.Snapshot
	d := newDriver(tetris.RenderSinkFunc(func(snap tetris.Snapshot) {
		snaps = append(snaps, snap)
	}), tetris.KindO)

	d.Handle(tetris.CommandHardDrop)
	d.Render()

	require.Len(t, snaps, 1)
	assert.Equal(t, 1, snaps[0].Pieces)
	assert.Zero(t, snaps[0].DropTimer)

	newDriver(nil, tetris.KindO).Render()
}
