package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestIsValidPosition(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	b.Set(10, 5, tetris.KindO)

	// O occupies the full 2x2 box.
	piece := func(row, col int) *tetris.Piece {
		p := tetris.NewPiece(tetris.KindO)
		p.Row = row
		p.Col = col
		return &p
	}

	tests := []struct {
		name      string
		piece     *tetris.Piece
		offsetRow int
		offsetCol int
		valid     bool
	}{
		{"open space", piece(0, 0), 0, 0, true},
		{"left wall", piece(0, 0), 0, -1, false},
		{"right edge", piece(0, 8), 0, 0, true},
		{"right wall", piece(0, 8), 0, 1, false},
		{"floor", piece(18, 0), 0, 0, true},
		{"below floor", piece(18, 0), 1, 0, false},
		{"above board", piece(-2, 4), 0, 0, true},
		{"partly above board", piece(-1, 4), 0, 0, true},
		{"above board still checks walls", piece(-2, -1), 0, 0, false},
		{"overlaps block", piece(9, 4), 0, 0, false},
		{"offset into block", piece(8, 5), 1, 0, false},
		{"next to block", piece(9, 6), 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tetris.IsValidPosition(tt.piece, b, tt.offsetRow, tt.offsetCol))
		})
	}
}

func TestIsValidPositionIgnoresEmptyCells(t *testing.T) {
	b := tetris.NewBoard(10, 20)

	// The I piece's bottom two rows are empty, so it may hang below the floor.
	p := tetris.NewPiece(tetris.KindI)
	p.Row = 18
	assert.True(t, tetris.IsValidPosition(&p, b, 0, 0))
	assert.False(t, tetris.IsValidPosition(&p, b, 1, 0))
}
