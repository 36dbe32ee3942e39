package tetris_test

import (
	"fmt"
	"io"
	"log"

	"github.com/plus3/blockfall/tetris"
)

// ExampleDriver plays three pieces that together complete the bottom row.
func ExampleDriver() {
	session := tetris.NewSession(tetris.DefaultConfig(),
		tetris.WithSource(tetris.NewSequenceSource(tetris.KindI, tetris.KindI, tetris.KindO)),
		tetris.WithLogger(log.New(io.Discard, "", 0)),
		tetris.WithStatSink(tetris.StatSinkFunc(func(score, lines int) {
			fmt.Printf("score=%d lines=%d\n", score, lines)
		})),
	)
	driver := tetris.NewDriver(session, nil)

	commands := []string{
		"move_left", "move_left", "move_left", "hard_drop",
		"move_right", "hard_drop",
		"move_right", "move_right", "move_right", "move_right", "move_right", "hard_drop",
	}
	for _, name := range commands {
		if cmd, ok := tetris.ParseCommand(name); ok {
			driver.Handle(cmd)
		}
	}

	// Output:
	// score=0 lines=0
	// score=100 lines=1
}
