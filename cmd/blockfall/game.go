package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/loop"
	debugui_ebiten "github.com/plus3/blockfall/loop/debugui/ebiten"
)

// Game implements ebiten.Game on top of the frame scheduler.
type Game struct {
	scheduler *loop.Scheduler
	renderer  *Renderer
	imgui     *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
