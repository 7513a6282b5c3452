package render

import (
	"fmt"

	"github.com/lixenwraith/blockfall/core"
)

// BoardRenderer draws every locked cell in its stored color
type BoardRenderer struct{}

func (r *BoardRenderer) Render(ctx RenderContext, s Surface) {
	l := ctx.Layout
	b := ctx.Board
	if l.DrawWalls {
		w, h := l.BoardSize(b.Rows(), b.Cols())
		s.FillRect(l.OriginX-l.CellWidth, l.OriginY, l.CellWidth, h, l.Wall)
		s.FillRect(l.OriginX+w, l.OriginY, l.CellWidth, h, l.Wall)
	}
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			cell := b.Cell(row, col)
			if !cell.Filled {
				continue
			}
			color := cell.Color
			if ctx.GameOver {
				color = color.Scale(0.5)
			}
			x, y, w, h := l.CellRect(row, col)
			s.FillRect(x, y, w, h, color)
		}
	}
}

// PieceRenderer draws the live piece; hidden once the session ends
type PieceRenderer struct{}

func (r *PieceRenderer) IsVisible(ctx RenderContext) bool {
	return !ctx.GameOver
}

func (r *PieceRenderer) Render(ctx RenderContext, s Surface) {
	for _, pt := range ctx.Piece.Cells() {
		if !ctx.Board.InBounds(pt.Row, pt.Col) {
			continue
		}
		x, y, w, h := ctx.Layout.CellRect(pt.Row, pt.Col)
		s.FillRect(x, y, w, h, ctx.Piece.Color)
	}
}

// HUDRenderer draws score, level and cleared lines
type HUDRenderer struct{}

func (r *HUDRenderer) Render(ctx RenderContext, s Surface) {
	l := ctx.Layout
	s.DrawText(l.HUDX, l.HUDY, fmt.Sprintf("Score: %d", ctx.Score), l.Foreground)
	s.DrawText(l.HUDX, l.HUDY+l.LineHeight, fmt.Sprintf("Level: %d", ctx.Level), l.Foreground)
	s.DrawText(l.HUDX, l.HUDY+2*l.LineHeight, fmt.Sprintf("Lines: %d", ctx.Lines), l.Foreground)
}

// Game-over screen text
const (
	GameOverText = "Game Over"
	RestartHint  = "Enter: new game  Esc: quit"
)

var gameOverColor = core.RGB{R: 220, G: 40, B: 40}

// GameOverRenderer draws the terminal message centered over the board
type GameOverRenderer struct{}

func (r *GameOverRenderer) IsVisible(ctx RenderContext) bool {
	return ctx.GameOver
}

func (r *GameOverRenderer) Render(ctx RenderContext, s Surface) {
	l := ctx.Layout
	w, h := l.BoardSize(ctx.Board.Rows(), ctx.Board.Cols())
	cx, cy := l.OriginX+w/2, l.OriginY+h/2
	lines := []string{GameOverText, fmt.Sprintf("Score: %d", ctx.Score), RestartHint}
	for i, text := range lines {
		color := l.Foreground
		if i == 0 {
			color = gameOverColor
		}
		s.DrawText(cx-len(text)*l.CharWidth/2, cy+(i-1)*l.LineHeight, text, color)
	}
}
