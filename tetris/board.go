package tetris

// Board is a fixed-size grid of cells. A cell holds KindNone when empty or
// the kind of the piece that was locked into it.
type Board struct {
	cols  int
	rows  int
	cells [][]Kind
}

// NewBoard creates an empty board of cols×rows cells.
func NewBoard(cols, rows int) *Board {
	cells := make([][]Kind, rows)
	for r := range cells {
		cells[r] = make([]Kind, cols)
	}
	return &Board{cols: cols, rows: rows, cells: cells}
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

func (b *Board) inRange(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the content of a cell, KindNone when empty or out of range.
func (b *Board) At(row, col int) Kind {
	if !b.inRange(row, col) {
		return KindNone
	}
	return b.cells[row][col]
}

// Set overwrites a single cell. Out of range coordinates are ignored.
func (b *Board) Set(row, col int, kind Kind) {
	if !b.inRange(row, col) {
		return
	}
	b.cells[row][col] = kind
}

// IsOccupied reports whether the cell is in range and non-empty.
func (b *Board) IsOccupied(row, col int) bool {
	return b.At(row, col) != KindNone
}

// Place commits cells to the board with the given kind. Legality must have
// been checked by the caller; no bounds checking happens here.
func (b *Board) Place(cells []Cell, kind Kind) {
	for _, cell := range cells {
		b.cells[cell.Row][cell.Col] = kind
	}
}

func (b *Board) rowFull(row int) bool {
	for _, cell := range b.cells[row] {
		if cell == KindNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting an empty row on top. It returns the number of rows removed.
//
// The scan runs bottom-up and re-tests the same index after a removal, since
// the row above has just shifted into it.
func (b *Board) ClearFullRows() int {
	if b.cols == 0 {
		return 0
	}
	cleared := 0
	for r := b.rows - 1; r >= 0; {
		if !b.rowFull(r) {
			r--
			continue
		}

		removed := b.cells[r]
		copy(b.cells[1:r+1], b.cells[:r])
		for c := range removed {
			removed[c] = KindNone
		}
		b.cells[0] = removed
		cleared++
	}
	return cleared
}

// RowFill returns the number of occupied cells in a row.
func (b *Board) RowFill(row int) int {
	if row < 0 || row >= b.rows {
		return 0
	}
	n := 0
	for _, cell := range b.cells[row] {
		if cell != KindNone {
			n++
		}
	}
	return n
}

// FilledCount returns the number of occupied cells on the whole board.
func (b *Board) FilledCount() int {
	n := 0
	for r := range b.cells {
		n += b.RowFill(r)
	}
	return n
}

// Cells returns a deep copy of the grid, indexed [row][col].
func (b *Board) Cells() [][]Kind {
	out := make([][]Kind, b.rows)
	for r := range b.cells {
		out[r] = make([]Kind, b.cols)
		copy(out[r], b.cells[r])
	}
	return out
}
