package tetris

// IsValidPosition reports whether the piece, shifted by offsetRow and
// offsetCol, fits on the board. Filled cells left or right of the board, or
// below its last row, are invalid; so are cells that overlap an occupied
// board cell. Cells above the top row are always valid so that pieces can
// spawn and rotate partially off-screen.
func IsValidPosition(p *Piece, b *Board, offsetRow, offsetCol int) bool {
	for r, row := range p.Shape {
		for c, filled := range row {
			if !filled {
				continue
			}

			boardRow := p.Row + r + offsetRow
			boardCol := p.Col + c + offsetCol

			if boardCol < 0 || boardCol >= b.Cols() || boardRow >= b.Rows() {
				return false
			}

			if boardRow >= 0 && b.IsOccupied(boardRow, boardCol) {
				return false
			}
		}
	}

	return true
}
