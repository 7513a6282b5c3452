package game

import (
	"testing"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorSpawnPosition(t *testing.T) {
	g := NewGenerator(20, 1)
	for i := 0; i < 100; i++ {
		p := g.Generate()
		shape := p.Shape()
		assert.Equal(t, 0, p.Rotation)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, 20/2-shape.Width/2, p.X, "%s", p.Kind)
	}
}

func TestGeneratorColorRange(t *testing.T) {
	g := NewGenerator(20, 2)
	for i := 0; i < 500; i++ {
		c := g.Generate().Color
		for _, ch := range []uint8{c.R, c.G, c.B} {
			require.GreaterOrEqual(t, int(ch), constants.ColorChannelMin)
			require.LessOrEqual(t, int(ch), constants.ColorChannelMax)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a, b := NewGenerator(20, 42), NewGenerator(20, 42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGeneratorCoversAllKinds(t *testing.T) {
	const draws = 7000
	g := NewGenerator(20, 99)
	counts := make(map[Kind]int)
	for i := 0; i < draws; i++ {
		counts[g.Generate().Kind]++
	}
	require.Len(t, counts, int(KindCount))
	for k, n := range counts {
		assert.InDelta(t, draws/int(KindCount), n, 250, "%s drawn %d times", k, n)
	}
}
