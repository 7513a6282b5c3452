package game

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/blockfall/core"
)

// Sentinel errors
var (
	ErrPlacementConflict = errors.New("placement onto occupied cell")
	ErrOutOfBounds       = errors.New("cell outside board")
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
)

// Cell is either empty or a locked block of one color
type Cell struct {
	Color  core.RGB
	Filled bool
}

// Board is a fixed-size grid of locked blocks, row 0 at the top
type Board struct {
	rows, cols int
	grid       [][]Cell
}

// NewBoard creates an all-empty board
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	b := &Board{rows: rows, cols: cols, grid: make([][]Cell, rows)}
	for r := range b.grid {
		b.grid[r] = make([]Cell, cols)
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) addresses a cell
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsOccupied reports whether the cell holds a locked block
// Callers check InBounds first; out-of-range access panics
func (b *Board) IsOccupied(row, col int) bool {
	return b.grid[row][col].Filled
}

// Cell returns the cell at (row, col)
func (b *Board) Cell(row, col int) Cell {
	return b.grid[row][col]
}

// Set writes a locked block, used to seed boards
func (b *Board) Set(row, col int, color core.RGB) {
	b.grid[row][col] = Cell{Color: color, Filled: true}
}

// Place writes the piece color into every covered cell
// A target outside the board or already filled is an upstream collision bug and panics
func (b *Board) Place(p Piece) {
	cells := p.Cells()
	for _, pt := range cells {
		if !b.InBounds(pt.Row, pt.Col) {
			panic(fmt.Errorf("%w: place %s at (%d,%d)", ErrOutOfBounds, p.Kind, pt.Row, pt.Col))
		}
		if b.grid[pt.Row][pt.Col].Filled {
			panic(fmt.Errorf("%w: place %s at (%d,%d)", ErrPlacementConflict, p.Kind, pt.Row, pt.Col))
		}
	}
	for _, pt := range cells {
		b.grid[pt.Row][pt.Col] = Cell{Color: p.Color, Filled: true}
	}
}

// IsRowFull reports whether every cell in the row is occupied
func (b *Board) IsRowFull(row int) bool {
	for _, c := range b.grid[row] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// FullRows returns the indices of every full row, top to bottom
func (b *Board) FullRows() []int {
	var full []int
	for r := 0; r < b.rows; r++ {
		if b.IsRowFull(r) {
			full = append(full, r)
		}
	}
	return full
}

// ClearFullRows removes all rows that are full at call time in one pass
// Surviving rows keep their order and sink; empty rows refill the top
func (b *Board) ClearFullRows() int {
	return len(b.clearRows(b.FullRows()))
}

func (b *Board) clearRows(full []int) []int {
	if len(full) == 0 {
		return nil
	}
	next := make([][]Cell, 0, b.rows)
	for range full {
		next = append(next, make([]Cell, b.cols))
	}
	fi := 0
	for r, row := range b.grid {
		if fi < len(full) && full[fi] == r {
			fi++
			continue
		}
		next = append(next, row)
	}
	b.grid = next
	return full
}

// FilledCount returns the number of locked blocks
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.grid {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}
