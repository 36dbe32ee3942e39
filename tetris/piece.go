package tetris

import "image/color"

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies one of the seven tetromino shapes. KindNone doubles as
// the empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Shape is a square bitmask, indexed [row][col].
type Shape [][]bool

type catalogEntry struct {
	shape Shape
	color color.RGBA
}

var catalog = [...]catalogEntry{
	KindI: {
		shape: Shape{
			{false, false, false, false},
			{true, true, true, true},
			{false, false, false, false},
			{false, false, false, false},
		},
		color: color.RGBA{0x0d, 0xd6, 0xff, 0xff},
	},
	KindO: {
		shape: Shape{
			{true, true},
			{true, true},
		},
		color: color.RGBA{0xff, 0xef, 0x5c, 0xff},
	},
	KindT: {
		shape: Shape{
			{false, true, false},
			{true, true, true},
			{false, false, false},
		},
		color: color.RGBA{0xaf, 0x7c, 0xff, 0xff},
	},
	KindS: {
		shape: Shape{
			{false, true, true},
			{true, true, false},
			{false, false, false},
		},
		color: color.RGBA{0x6d, 0xf5, 0x8c, 0xff},
	},
	KindZ: {
		shape: Shape{
			{true, true, false},
			{false, true, true},
			{false, false, false},
		},
		color: color.RGBA{0xff, 0x70, 0x82, 0xff},
	},
	KindJ: {
		shape: Shape{
			{true, false, false},
			{true, true, true},
			{false, false, false},
		},
		color: color.RGBA{0x5c, 0x8b, 0xff, 0xff},
	},
	KindL: {
		shape: Shape{
			{false, false, true},
			{true, true, true},
			{false, false, false},
		},
		color: color.RGBA{0xff, 0xb3, 0x47, 0xff},
	},
}

var allKinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Kinds returns the seven playable kinds in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// Shape returns a copy of the kind's base bitmask, or nil for KindNone.
func (k Kind) Shape() Shape {
	if !k.Valid() {
		return nil
	}
	return catalog[k].shape.Clone()
}

// Color returns the display color of the kind. KindNone is transparent.
func (k Kind) Color() color.RGBA {
	if !k.Valid() {
		return color.RGBA{}
	}
	return catalog[k].color
}

// ParseKind converts a single-letter name ("I", "O", ...) into a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range allKinds {
		if k.String() == s {
			return k, true
		}
	}
	return KindNone, false
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for r := range s {
		out[r] = make([]bool, len(s[r]))
		copy(out[r], s[r])
	}
	return out
}

// Equal reports whether both shapes have the same size and filled cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns the N×N shape rotated 90° clockwise. The input is
// left untouched.
func RotateClockwise(shape Shape) Shape {
	size := len(shape)
	rotated := make(Shape, size)
	for i := range rotated {
		rotated[i] = make([]bool, size)
	}

	for r := range size {
		for c := range size {
			rotated[c][size-1-r] = shape[r][c]
		}
	}

	return rotated
}

// Cell is an absolute board coordinate.
type Cell struct {
	Row, Col int
}

// Piece is a tetromino positioned on the board. Row and Col anchor the
// top-left corner of its shape.
type Piece struct {
	Kind  Kind
	Shape Shape
	Row   int
	Col   int
}

// NewPiece returns a piece of the given kind with its own copy of the
// catalog shape, anchored at the origin.
func NewPiece(kind Kind) Piece {
	return Piece{Kind: kind, Shape: kind.Shape()}
}

// Clone returns a deep copy of the piece.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells returns the absolute coordinates of every filled cell.
func (p Piece) Cells() []Cell {
	cells := make([]Cell, 0, 4)
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				cells = append(cells, Cell{Row: p.Row + r, Col: p.Col + c})
			}
		}
	}
	return cells
}
