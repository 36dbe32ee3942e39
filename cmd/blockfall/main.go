package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/loop/debugui"
	debugui_ebiten "github.com/plus3/blockfall/loop/debugui/ebiten"
	"github.com/plus3/blockfall/sfx"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg, err := config.Load("blockfall", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	renderer := NewRenderer(cfg.CellSize)
	width, height := renderer.ScreenSize(cfg.Game)

	var sink tetris.RenderSink = renderer
	if cfg.Audio {
		player := sfx.NewPlayer(cfg.Volume)
		if err := player.Initialize(); err != nil {
			log.Printf("[Audio] initialization failed, continuing without sound: %v", err)
		}
		defer player.Close()
		sink = sfx.NewWatcher(player, renderer)
	}

	session := tetris.NewSession(cfg.Game,
		tetris.WithSource(cfg.Source()),
		tetris.WithStatSink(tetris.StatSinkFunc(func(score, lines int) {
			log.Printf("[Stats] score=%d lines=%d", score, lines)
		})),
	)
	driver := tetris.NewDriver(session, sink)
	sink.Render(session.Snapshot())

	scheduler := loop.NewScheduler(driver)
	input := NewInputSystem(DefaultBindings())
	clock := &loop.ClockSystem{}
	scheduler.Register(input)
	scheduler.Register(clock)

	game := &Game{
		scheduler: scheduler,
		renderer:  renderer,
	}

	if cfg.Debug {
		backend := debugui_ebiten.NewImguiBackend("Blockfall (debug)", width*2, height)
		imguiSystem := debugui.Install(scheduler, clock)
		input.capture = &imguiSystem.InputState
		game.imgui = backend
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
