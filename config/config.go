// Package config resolves blockfall settings from defaults, an optional .env
// file, BLOCKFALL_* environment variables and command line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/tetris"
)

const envPrefix = "BLOCKFALL_"

// Randomizer names accepted by Config.Randomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Config holds the game rules plus front-end settings.
type Config struct {
	Game tetris.Config

	// Seed feeds the piece randomizer; zero seeds from the clock.
	Seed       uint64
	Randomizer string

	Debug    bool
	LogFile  string
	Audio    bool
	Volume   float64
	CellSize int
	TickRate time.Duration
}

// Default returns the reference settings.
func Default() Config {
	return Config{
		Game:       tetris.DefaultConfig(),
		Randomizer: RandomizerUniform,
		Audio:      true,
		Volume:     0.3,
		CellSize:   28,
		TickRate:   time.Second / 60,
	}
}

// Load builds a Config for the program called name. args excludes the
// program name. extra registers program specific flags on the same set.
// A missing .env file is not an error.
func Load(name string, args []string, extra ...func(*flag.FlagSet)) (Config, error) {
	cfg := Default()

	envFile := os.Getenv(envPrefix + "ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.IntVar(&cfg.Game.Cols, "cols", cfg.Game.Cols, "Board width in cells.")
	flags.IntVar(&cfg.Game.Rows, "rows", cfg.Game.Rows, "Board height in cells.")
	flags.DurationVar(&cfg.Game.DropInterval, "drop-interval", cfg.Game.DropInterval, "Time between gravity drops.")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Randomizer seed, 0 for time based.")
	flags.StringVar(&cfg.Randomizer, "randomizer", cfg.Randomizer, "Piece randomizer: uniform or bag.")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug output and overlays.")
	flags.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write logs to this file.")
	flags.BoolVar(&cfg.Audio, "audio", cfg.Audio, "Enable sound effects.")
	flags.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Sound effect volume between 0 and 1.")
	flags.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "Cell size in pixels.")
	flags.DurationVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "Frame interval for headless and terminal loops.")
	for _, register := range extra {
		register(flags)
	}
	if err := flags.Parse(args); err != nil {
		return cfg, fmt.Errorf("parsing flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	for _, v := range []struct {
		key   string
		apply func(string) error
	}{
		{"COLS", intVar(&c.Game.Cols)},
		{"ROWS", intVar(&c.Game.Rows)},
		{"DROP_INTERVAL", durationVar(&c.Game.DropInterval)},
		{"SEED", func(s string) (err error) {
			c.Seed, err = strconv.ParseUint(s, 10, 64)
			return err
		}},
		{"RANDOMIZER", func(s string) error {
			c.Randomizer = s
			return nil
		}},
		{"DEBUG", boolVar(&c.Debug)},
		{"LOG_FILE", func(s string) error {
			c.LogFile = s
			return nil
		}},
		{"AUDIO", boolVar(&c.Audio)},
		{"VOLUME", func(s string) (err error) {
			c.Volume, err = strconv.ParseFloat(s, 64)
			return err
		}},
		{"CELL_SIZE", intVar(&c.CellSize)},
		{"TICK_RATE", durationVar(&c.TickRate)},
	} {
		value, ok := os.LookupEnv(envPrefix + v.key)
		if !ok || value == "" {
			continue
		}
		if err := v.apply(value); err != nil {
			return fmt.Errorf("%s%s=%q: %w", envPrefix, v.key, value, err)
		}
	}
	return nil
}

func intVar(dst *int) func(string) error {
	return func(s string) (err error) {
		*dst, err = strconv.Atoi(s)
		return err
	}
}

func boolVar(dst *bool) func(string) error {
	return func(s string) (err error) {
		*dst, err = strconv.ParseBool(s)
		return err
	}
}

func durationVar(dst *time.Duration) func(string) error {
	return func(s string) (err error) {
		*dst, err = time.ParseDuration(s)
		return err
	}
}

// Validate checks the game rules and front-end settings.
func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}
	if c.Randomizer != RandomizerUniform && c.Randomizer != RandomizerBag {
		return fmt.Errorf("unknown randomizer %q", c.Randomizer)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range [0, 1]", c.Volume)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %s", c.TickRate)
	}
	return nil
}

// Source builds the configured piece randomizer.
func (c Config) Source() tetris.PieceSource {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if c.Randomizer == RandomizerBag {
		return tetris.NewBagSource(seed)
	}
	return tetris.NewRandomSource(seed)
}
