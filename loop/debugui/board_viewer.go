package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

func NewBoardViewerComponent(cellSize float32) *BoardViewerComponent {
	return &BoardViewerComponent{cellSize: cellSize}
}

func kindColor(kind tetris.Kind, alpha float32) uint32 {
	c := kind.Color()
	return imgui.ColorU32Vec4(imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha))
}

func (bv *BoardViewerComponent) Render(session *tetris.Session) {
	if !imgui.BeginV("Board Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	board := session.Board()
	imgui.Checkbox("Row Table", &bv.showRows)

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := bv.cellSize

	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.2, 1))
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			color := empty
			if kind := board.At(r, c); kind != tetris.KindNone {
				color = kindColor(kind, 1)
			}
			topLeft := imgui.NewVec2(origin.X+float32(c)*size, origin.Y+float32(r)*size)
			drawList.AddRectFilled(topLeft, imgui.NewVec2(topLeft.X+size-1, topLeft.Y+size-1), color)
		}
	}

	if current, ok := session.Current(); ok {
		color := kindColor(current.Kind, 0.8)
		for _, cell := range current.Cells() {
			if cell.Row < 0 {
				continue
			}
			topLeft := imgui.NewVec2(origin.X+float32(cell.Col)*size, origin.Y+float32(cell.Row)*size)
			drawList.AddRectFilled(topLeft, imgui.NewVec2(topLeft.X+size-1, topLeft.Y+size-1), color)
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(board.Cols())*size, float32(board.Rows())*size))

	if bv.showRows {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowFillTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Filled")
			imgui.TableHeadersRow()

			for r := 0; r < board.Rows(); r++ {
				fill := board.RowFill(r)
				if fill == 0 {
					continue
				}
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", r))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d/%d", fill, board.Cols()))

				barWidth := float32(fill) / float32(board.Cols()) * 80.0
				imgui.SameLine()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				imgui.WindowDrawList().AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.EndTable()
		}
	}

	imgui.End()
}
