package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/loop/debugui"
	debugui_ebiten "github.com/plus3/blockfall/loop/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game and overlays the debug windows on a session.
type Game struct {
	scheduler    *loop.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after the deferred windows have rendered
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("blockfall debug", 1280, 720)

	session := tetris.NewSession(tetris.DefaultConfig())
	scheduler := loop.NewScheduler(tetris.NewDriver(session, nil))

	clock := &loop.ClockSystem{}
	scheduler.Register(clock)
	debugui.Install(scheduler, clock)

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
