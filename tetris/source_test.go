package tetris_test

import (
	"io"
	"log"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(source tetris.PieceSource, n int) []tetris.Kind {
	kinds := make([]tetris.Kind, n)
	for i := range kinds {
		kinds[i] = source.Next()
	}
	return kinds
}

func TestRandomSourceIsSeeded(t *testing.T) {
	a := draw(tetris.NewRandomSource(42), 100)
	b := draw(tetris.NewRandomSource(42), 100)
	c := draw(tetris.NewRandomSource(43), 100)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	seen := map[tetris.Kind]bool{}
	for _, kind := range draw(tetris.NewRandomSource(1), 1000) {
		assert.True(t, kind.Valid())
		seen[kind] = true
	}
	assert.Len(t, seen, 7)
}

func TestBagSourceDealsEveryKind(t *testing.T) {
	source := tetris.NewBagSource(9)

	for bag := 0; bag < 5; bag++ {
		counts := map[tetris.Kind]int{}
		for _, kind := range draw(source, 7) {
			counts[kind]++
		}
		assert.Len(t, counts, 7)
		for kind, n := range counts {
			assert.Equal(t, 1, n, "kind %s", kind)
		}
	}
}

func TestSequenceSource(t *testing.T) {
	source := tetris.NewSequenceSource(tetris.KindI, tetris.KindO)

	assert.Equal(t, []tetris.Kind{tetris.KindI, tetris.KindO, tetris.KindI}, draw(source, 3))
	assert.Equal(t, 3, source.Drawn())

	assert.Equal(t, tetris.KindI, tetris.NewSequenceSource().Next())
}

func TestSequenceSourceSkipsInvalidKinds(t *testing.T) {
	source := tetris.NewSequenceSource(tetris.KindNone, tetris.KindT, tetris.Kind(99))
	assert.Equal(t, []tetris.Kind{tetris.KindT, tetris.KindT}, draw(source, 2))

	assert.Equal(t, tetris.KindI, tetris.NewSequenceSource(tetris.KindNone).Next())
}

func TestSessionWithInvalidSource(t *testing.T) {
	sources := map[string]tetris.PieceSource{
		"none sequence": tetris.NewSequenceSource(tetris.KindNone),
		"none func":     tetris.PieceSourceFunc(func() tetris.Kind { return tetris.KindNone }),
		"out of range":  tetris.PieceSourceFunc(func() tetris.Kind { return tetris.Kind(42) }),
	}

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			s := tetris.NewSession(tetris.DefaultConfig(),
				tetris.WithSource(source),
				tetris.WithLogger(log.New(io.Discard, "", 0)),
			)

			current, ok := s.Current()
			require.True(t, ok)
			assert.Equal(t, tetris.KindI, current.Kind)
			assert.Equal(t, 18, s.GhostRow())

			require.True(t, s.HardDrop())
			assert.Equal(t, 1, s.Pieces())
			assert.Equal(t, 4, s.Board().RowFill(19))
		})
	}
}

func TestPieceSourceFunc(t *testing.T) {
	source := tetris.PieceSourceFunc(func() tetris.Kind { return tetris.KindZ })
	assert.Equal(t, tetris.KindZ, source.Next())
}

func TestLineScore(t *testing.T) {
	tests := []struct {
		lines int
		score int
	}{
		{0, 0},
		{1, 100},
		{2, 250},
		{3, 450},
		{4, 700},
		{5, 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.score, tetris.LineScore(tt.lines), "lines=%d", tt.lines)
	}
}

func TestConfig(t *testing.T) {
	cfg := tetris.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.SpawnCol())

	cfg.Cols = 3
	assert.Error(t, cfg.Validate())

	cfg = tetris.DefaultConfig()
	cfg.Rows = 1
	assert.Error(t, cfg.Validate())

	cfg = tetris.DefaultConfig()
	cfg.DropInterval = 0
	assert.Error(t, cfg.Validate())
}
