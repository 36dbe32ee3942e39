package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("blockfall", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, tetris.DefaultConfig(), cfg.Game)
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BLOCKFALL_COLS", "12")
	t.Setenv("BLOCKFALL_DROP_INTERVAL", "500ms")
	t.Setenv("BLOCKFALL_RANDOMIZER", "bag")
	t.Setenv("BLOCKFALL_DEBUG", "true")
	t.Setenv("BLOCKFALL_SEED", "99")

	cfg, err := config.Load("blockfall", nil)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Game.Cols)
	assert.Equal(t, 20, cfg.Game.Rows)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.DropInterval)
	assert.Equal(t, config.RandomizerBag, cfg.Randomizer)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BLOCKFALL_COLS", "12")
	t.Setenv("BLOCKFALL_AUDIO", "false")

	cfg, err := config.Load("blockfall", []string{"-cols", "8", "-rows", "16", "-volume", "0.5"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Game.Cols)
	assert.Equal(t, 16, cfg.Game.Rows)
	assert.False(t, cfg.Audio)
	assert.Equal(t, 0.5, cfg.Volume)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BLOCKFALL_ROWS", "30")

	contents := "BLOCKFALL_CELL_SIZE=16\nBLOCKFALL_ROWS=10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(contents), 0o644))
	t.Cleanup(func() { os.Unsetenv("BLOCKFALL_CELL_SIZE") })

	cfg, err := config.Load("blockfall", nil)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.CellSize)
	// Variables already in the environment win over the file.
	assert.Equal(t, 30, cfg.Game.Rows)
}

func TestLoadCustomEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "game.env")
	require.NoError(t, os.WriteFile(path, []byte("BLOCKFALL_TICK_RATE=10ms\n"), 0o644))
	t.Setenv("BLOCKFALL_ENV_FILE", path)
	t.Cleanup(func() { os.Unsetenv("BLOCKFALL_TICK_RATE") })

	cfg, err := config.Load("blockfall", nil)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.TickRate)
}

func TestLoadExtraFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	var duration time.Duration
	cfg, err := config.Load("blockfall-stress", []string{"-duration", "3s", "-seed", "7"}, func(fs *flag.FlagSet) {
		fs.DurationVar(&duration, "duration", time.Second, "")
	})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, duration)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad env int", map[string]string{"BLOCKFALL_COLS": "wide"}, nil},
		{"bad env duration", map[string]string{"BLOCKFALL_DROP_INTERVAL": "soon"}, nil},
		{"unknown flag", nil, []string{"-nope"}},
		{"narrow board", nil, []string{"-cols", "3"}},
		{"zero interval", nil, []string{"-drop-interval", "0s"}},
		{"unknown randomizer", nil, []string{"-randomizer", "history"}},
		{"loud", nil, []string{"-volume", "2"}},
		{"zero tick rate", nil, []string{"-tick-rate", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load("blockfall", tt.args)
			assert.Error(t, err)
		})
	}
}

func TestSource(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5

	a, b := cfg.Source(), cfg.Source()
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}

	cfg.Randomizer = config.RandomizerBag
	bag := cfg.Source()
	seen := map[tetris.Kind]bool{}
	for i := 0; i < 7; i++ {
		seen[bag.Next()] = true
	}
	assert.Len(t, seen, 7)
}
