package render

import (
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/game"
)

// Layout maps grid cells to surface units
type Layout struct {
	// Size of one grid cell
	CellWidth  int
	CellHeight int

	// Board origin on the surface
	OriginX int
	OriginY int

	// Text metrics
	CharWidth  int
	LineHeight int

	// HUD anchor (score, level)
	HUDX int
	HUDY int

	Background core.RGB
	Foreground core.RGB

	// Side walls, drawn when DrawWalls is set
	Wall      core.RGB
	DrawWalls bool
}

// CellRect returns the surface rectangle of grid cell (row, col)
func (l Layout) CellRect(row, col int) (x, y, w, h int) {
	return l.OriginX + col*l.CellWidth, l.OriginY + row*l.CellHeight, l.CellWidth, l.CellHeight
}

// BoardSize returns the surface extent of a rows x cols board
func (l Layout) BoardSize(rows, cols int) (w, h int) {
	return cols * l.CellWidth, rows * l.CellHeight
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Board *game.Board
	Piece game.Piece

	Score int
	Level int
	Lines int

	GameOver bool
	Layout   Layout
}

// NewRenderContext snapshots a session for one frame
func NewRenderContext(s *game.Session, layout Layout) RenderContext {
	return RenderContext{
		Board:    s.Board,
		Piece:    s.Piece,
		Score:    s.Score,
		Level:    s.Level,
		Lines:    s.Lines,
		GameOver: !s.Playing(),
		Layout:   layout,
	}
}
