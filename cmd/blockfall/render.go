package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardOffset  = 40
	sidePanel    = 160
	previewCells = 4
)

var (
	backgroundColor = color.RGBA{16, 16, 24, 255}
	gridColor       = color.RGBA{32, 32, 44, 255}
	borderColor     = color.RGBA{128, 128, 128, 255}
	ghostColor      = color.RGBA{255, 255, 255, 60}
	outlineColor    = color.RGBA{0, 0, 0, 255}
)

// Renderer keeps the latest snapshot and draws it on demand.
type Renderer struct {
	cellSize float32
	snap     tetris.Snapshot
	ready    bool
}

func NewRenderer(cellSize int) *Renderer {
	return &Renderer{cellSize: float32(cellSize)}
}

func (r *Renderer) Render(snap tetris.Snapshot) {
	r.snap = snap
	r.ready = true
}

// ScreenSize returns the window size for a board.
func (r *Renderer) ScreenSize(cfg tetris.Config) (int, int) {
	width := boardOffset*2 + int(r.cellSize)*cfg.Cols + sidePanel
	height := boardOffset*2 + int(r.cellSize)*cfg.Rows
	return width, height
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if !r.ready {
		return
	}
	snap := r.snap
	size := r.cellSize

	boardW := float32(snap.Cols) * size
	boardH := float32(snap.Rows) * size
	vector.DrawFilledRect(screen, boardOffset, boardOffset, boardW, boardH, gridColor, false)
	vector.StrokeRect(screen, boardOffset-2, boardOffset-2, boardW+4, boardH+4, 2, borderColor, false)

	for row, cells := range snap.Board {
		for col, kind := range cells {
			if kind != tetris.KindNone {
				r.drawCell(screen, boardOffset, boardOffset, row, col, kind.Color())
			}
		}
	}

	if snap.Current != nil && !snap.GameOver {
		ghost := snap.Current.Clone()
		ghost.Row = snap.GhostRow
		for _, cell := range ghost.Cells() {
			if cell.Row >= 0 {
				x := boardOffset + float32(cell.Col)*size
				y := boardOffset + float32(cell.Row)*size
				vector.DrawFilledRect(screen, x, y, size, size, ghostColor, false)
			}
		}
	}

	if snap.Current != nil {
		for _, cell := range snap.Current.Cells() {
			if cell.Row >= 0 {
				r.drawCell(screen, boardOffset, boardOffset, cell.Row, cell.Col, snap.Current.Kind.Color())
			}
		}
	}

	textX := boardOffset + int(boardW) + 20
	ebitenutil.DebugPrintAt(screen, "NEXT", textX, boardOffset)
	if snap.Next != nil {
		for _, cell := range snap.Next.Cells() {
			r.drawCell(screen, float32(textX), boardOffset+20, cell.Row-snap.Next.Row, cell.Col-snap.Next.Col, snap.Next.Kind.Color())
		}
	}

	statsY := boardOffset + 20 + previewCells*int(size) + 20
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", snap.Score), textX, statsY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", snap.Lines), textX, statsY+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES\n%d", snap.Pieces), textX, statsY+80)

	if snap.GameOver {
		midY := boardOffset + int(boardH)/2
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardOffset+int(boardW)/2-27, midY-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", boardOffset+int(boardW)/2-54, midY+10)
	}
}

func (r *Renderer) drawCell(screen *ebiten.Image, originX, originY float32, row, col int, c color.RGBA) {
	x := originX + float32(col)*r.cellSize
	y := originY + float32(row)*r.cellSize
	vector.DrawFilledRect(screen, x, y, r.cellSize, r.cellSize, c, false)
	vector.StrokeRect(screen, x, y, r.cellSize, r.cellSize, 1, outlineColor, false)
}
