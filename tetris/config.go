package tetris

import (
	"fmt"
	"time"
)

const (
	DefaultCols         = 10
	DefaultRows         = 20
	DefaultDropInterval = 800 * time.Millisecond

	// SpawnRow places new pieces one row above the visible board.
	SpawnRow = -1
)

// Config holds the fixed parameters of a session.
type Config struct {
	Cols         int
	Rows         int
	DropInterval time.Duration
}

// DefaultConfig returns the reference 10×20 board with an 800ms gravity
// interval.
func DefaultConfig() Config {
	return Config{
		Cols:         DefaultCols,
		Rows:         DefaultRows,
		DropInterval: DefaultDropInterval,
	}
}

// SpawnCol is the column new pieces are anchored at, two cells left of the
// horizontal center.
func (c Config) SpawnCol() int {
	return c.Cols/2 - 2
}

// Validate rejects boards that cannot hold the widest piece.
func (c Config) Validate() error {
	if c.Cols < 4 {
		return fmt.Errorf("board needs at least 4 columns, got %d", c.Cols)
	}
	if c.Rows < 2 {
		return fmt.Errorf("board needs at least 2 rows, got %d", c.Rows)
	}
	if c.DropInterval <= 0 {
		return fmt.Errorf("drop interval must be positive, got %s", c.DropInterval)
	}
	return nil
}
