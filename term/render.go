// Package term draws blockfall sessions on a tcell screen and translates
// terminal key events into commands.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	originX   = 2
	originY   = 1
	cellWidth = 2
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 90))
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer is a tetris.RenderSink that redraws a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func kindStyle(kind tetris.Kind) tcell.Style {
	c := kind.Color()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// CellAt converts a board cell to screen coordinates.
func CellAt(row, col int) (int, int) {
	return originX + 1 + col*cellWidth, originY + 1 + row
}

func (r *Renderer) Render(snap tetris.Snapshot) {
	r.screen.Clear()

	r.drawBorder(snap.Cols, snap.Rows)

	for row, cells := range snap.Board {
		for col, kind := range cells {
			if kind != tetris.KindNone {
				r.drawCell(row, col, '█', kindStyle(kind))
			}
		}
	}

	if snap.Current != nil {
		if !snap.GameOver {
			ghost := snap.Current.Clone()
			ghost.Row = snap.GhostRow
			for _, cell := range ghost.Cells() {
				if cell.Row >= 0 {
					r.drawCell(cell.Row, cell.Col, '░', ghostStyle)
				}
			}
		}
		for _, cell := range snap.Current.Cells() {
			if cell.Row >= 0 {
				r.drawCell(cell.Row, cell.Col, '█', kindStyle(snap.Current.Kind))
			}
		}
	}

	panelX := originX + snap.Cols*cellWidth + 4
	r.drawText(panelX, originY, "NEXT", textStyle)
	if snap.Next != nil {
		for _, cell := range snap.Next.Cells() {
			x := panelX + (cell.Col-snap.Next.Col)*cellWidth
			y := originY + 2 + cell.Row - snap.Next.Row
			r.screen.SetContent(x, y, '█', nil, kindStyle(snap.Next.Kind))
			r.screen.SetContent(x+1, y, '█', nil, kindStyle(snap.Next.Kind))
		}
	}

	r.drawText(panelX, originY+7, fmt.Sprintf("SCORE  %d", snap.Score), textStyle)
	r.drawText(panelX, originY+8, fmt.Sprintf("LINES  %d", snap.Lines), textStyle)
	r.drawText(panelX, originY+9, fmt.Sprintf("PIECES %d", snap.Pieces), textStyle)

	if snap.GameOver {
		r.drawText(panelX, originY+11, "GAME OVER", alertStyle)
		r.drawText(panelX, originY+12, "r to restart, q to quit", textStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder(cols, rows int) {
	right := originX + 1 + cols*cellWidth
	bottom := originY + 1 + rows
	for y := originY + 1; y < bottom; y++ {
		r.screen.SetContent(originX, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX + 1; x < right; x++ {
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	r.screen.SetContent(originX, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawCell(row, col int, ch rune, style tcell.Style) {
	x, y := CellAt(row, col)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
