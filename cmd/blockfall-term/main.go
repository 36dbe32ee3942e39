package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/sfx"
	"github.com/plus3/blockfall/term"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg, err := config.Load("blockfall-term", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(cfg); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("blockfall-term: %v", err)
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var sink tetris.RenderSink = term.NewRenderer(screen)
	if cfg.Audio {
		player := sfx.NewPlayer(cfg.Volume)
		if err := player.Initialize(); err != nil {
			log.Printf("[Audio] initialization failed, continuing without sound: %v", err)
		}
		defer player.Close()
		sink = sfx.NewWatcher(player, sink)
	}

	session := tetris.NewSession(cfg.Game,
		tetris.WithSource(cfg.Source()),
		tetris.WithStatSink(tetris.StatSinkFunc(func(score, lines int) {
			log.Printf("[Stats] score=%d lines=%d", score, lines)
		})),
	)
	driver := tetris.NewDriver(session, sink)
	sink.Render(session.Snapshot())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commands := make(chan tetris.Command, 64)
	go pollEvents(screen, commands, cancel)

	scheduler := loop.NewScheduler(driver)
	scheduler.Register(&loop.ChannelInputSystem{Input: commands})
	scheduler.Register(&loop.ClockSystem{})

	log.Printf("[Driver] running at %s per frame", cfg.TickRate)
	scheduler.Run(ctx, cfg.TickRate)

	stats := scheduler.GetStats()
	log.Printf("[Driver] stopped after %d frames: score=%d lines=%d", stats.Frames, session.Score(), session.Lines())
	return nil
}

// pollEvents forwards key presses until the player quits or the screen is
// finalized.
func pollEvents(screen tcell.Screen, commands chan<- tetris.Command, quit func()) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if term.IsQuit(ev) {
				quit()
				return
			}
			if cmd, ok := term.Translate(ev); ok {
				select {
				case commands <- cmd:
				default:
					log.Printf("[Driver] input queue full, dropping %s", cmd)
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
