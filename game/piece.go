package game

import "github.com/lixenwraith/blockfall/core"

// Piece is the live tetromino: a kind, an orientation, a color and a top-left anchor
type Piece struct {
	Kind     Kind
	Rotation int
	Color    core.RGB
	X, Y     int
}

// Shape returns the current orientation matrix
func (p Piece) Shape() Matrix {
	return Rotation(p.Kind, p.Rotation)
}

// Moved returns a copy translated by (dx, dy)
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned one quarter clockwise in place
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % RotationCount
	return p
}

// Cells returns the absolute board coordinates the piece covers
func (p Piece) Cells() [4]Point {
	cells := p.Shape().Cells()
	for i := range cells {
		cells[i].Row += p.Y
		cells[i].Col += p.X
	}
	return cells
}
