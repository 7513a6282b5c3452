package game

import (
	"math/rand/v2"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
)

// Spawner produces the next live piece
type Spawner interface {
	Generate() Piece
}

// Generator picks kinds uniformly and bright random colors
type Generator struct {
	rng  *rand.Rand
	cols int
}

// NewGenerator creates a generator for a board of the given width
// Equal seeds produce equal piece sequences
func NewGenerator(cols int, seed uint64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		cols: cols,
	}
}

// Generate returns a new piece centered horizontally on row 0
func (g *Generator) Generate() Piece {
	kind := Kind(g.rng.IntN(int(KindCount)))
	return SpawnPiece(kind, g.randomColor(), g.cols)
}

func (g *Generator) randomColor() core.RGB {
	span := constants.ColorChannelMax - constants.ColorChannelMin + 1
	return core.RGB{
		R: uint8(constants.ColorChannelMin + g.rng.IntN(span)),
		G: uint8(constants.ColorChannelMin + g.rng.IntN(span)),
		B: uint8(constants.ColorChannelMin + g.rng.IntN(span)),
	}
}

// SpawnPiece positions kind in its spawn orientation at the top center
func SpawnPiece(kind Kind, color core.RGB, cols int) Piece {
	shape := Rotation(kind, 0)
	return Piece{
		Kind:  kind,
		Color: color,
		X:     cols/2 - shape.Width/2,
		Y:     0,
	}
}
