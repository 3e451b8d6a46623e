package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cost(t *testing.T, g *Grid, x, y int) int {
	t.Helper()

	v, err := g.Cost(Pt(x, y))
	require.NoError(t, err)
	return v
}

func TestNormalizeInfluence(t *testing.T) {
	g := gridFromRows(t,
		"1203",
		"0450",
		"9001",
	)

	require.NoError(t, g.NormalizeInfluence(7))
	assert.Equal(t, 7, g.NormalInfluence())

	sum, positive := 0, 0
	for _, col := range g.Map() {
		for _, v := range col {
			sum += v
			if v > 0 {
				positive++
			}
		}
	}
	assert.Equal(t, 7*7, sum)
	assert.Equal(t, 7, positive)

	assert.ErrorIs(t, g.NormalizeInfluence(0), ErrInvalidInfluence)
}

func TestAddInfluenceLinearFalloff(t *testing.T) {
	g := openGrid(t, 11, 11, 1)
	g.CreateBlock(Vec2{X: 4, Y: 5}, 1, 1)

	require.NoError(t, g.AddInfluence([]Point{Pt(5, 5)}, 10, 2))

	assert.Equal(t, 11, cost(t, g, 5, 5))
	assert.Equal(t, 6, cost(t, g, 6, 5))
	assert.Equal(t, 3, cost(t, g, 6, 6))
	assert.Equal(t, 1, cost(t, g, 7, 5))
	assert.Equal(t, 0, cost(t, g, 4, 5), "blocked cells stay blocked")
}

func TestAddInfluenceRejectsOutOfBounds(t *testing.T) {
	g := openGrid(t, 4, 4, 1)
	before := g.Map()

	err := g.AddInfluence([]Point{Pt(1, 1), Pt(4, 0)}, 10, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, before, g.Map())
}

func TestAddInfluenceFlat(t *testing.T) {
	g := openGrid(t, 11, 11, 1)
	g.CreateBlock(Vec2{X: 4, Y: 5}, 1, 1)

	require.NoError(t, g.AddInfluenceFlat([]Point{Pt(5, 5)}, 7, 2))

	assert.Equal(t, 8, cost(t, g, 5, 5))
	assert.Equal(t, 8, cost(t, g, 6, 5))
	assert.Equal(t, 8, cost(t, g, 6, 6))
	assert.Equal(t, 1, cost(t, g, 7, 5))
	assert.Equal(t, 1, cost(t, g, 7, 6))
	assert.Equal(t, 0, cost(t, g, 4, 5))
}

func TestAddInfluenceFlatHollow(t *testing.T) {
	g := openGrid(t, 11, 11, 1)

	require.NoError(t, g.AddInfluenceFlatHollow([]Point{Pt(5, 5)}, 3, 1, 3))

	assert.Equal(t, 1, cost(t, g, 5, 5))
	assert.Equal(t, 1, cost(t, g, 6, 5))
	assert.Equal(t, 4, cost(t, g, 6, 6))
	assert.Equal(t, 4, cost(t, g, 7, 5))
	assert.Equal(t, 1, cost(t, g, 8, 5))
}

func TestAddInfluenceFading(t *testing.T) {
	g := openGrid(t, 11, 11, 1)

	require.NoError(t, g.AddInfluenceFading([]Point{Pt(5, 5)}, 10, 1, 3))

	assert.Equal(t, 11, cost(t, g, 5, 5))
	assert.Equal(t, 11, cost(t, g, 6, 5))
	assert.Equal(t, 8, cost(t, g, 6, 6))
	assert.Equal(t, 6, cost(t, g, 7, 5))
	assert.Equal(t, 1, cost(t, g, 8, 5))
}

func TestAddWalkInfluence(t *testing.T) {
	g := gridFromRows(t, "11111")

	require.NoError(t, g.AddWalkInfluence([]Point{Pt(0, 0)}, 10, 4))
	assert.Equal(t, [][]int{{11}, {8}, {6}, {3}, {1}}, g.Map())

	blocked := gridFromRows(t, "01111")
	require.NoError(t, blocked.AddWalkInfluence([]Point{Pt(0, 0)}, 10, 4))
	assert.Equal(t, [][]int{{0}, {1}, {1}, {1}, {1}}, blocked.Map())
}

func TestAddWalkInfluenceFlatCorrectsSource(t *testing.T) {
	g := gridFromRows(t, "0111")

	require.NoError(t, g.AddWalkInfluenceFlat([]Point{Pt(0, 0)}, 5, 1))
	assert.Equal(t, [][]int{{0}, {6}, {6}, {1}}, g.Map())
}

func TestBlocks(t *testing.T) {
	g := openGrid(t, 10, 10, 1)

	g.CreateBlock(Vec2{X: 5.5, Y: 5.5}, 2, 2)
	for _, p := range []Point{Pt(4, 4), Pt(4, 5), Pt(5, 4), Pt(5, 5)} {
		assert.False(t, g.Passable(p), p)
	}
	assert.True(t, g.Passable(Pt(6, 6)))
	assert.True(t, g.Passable(Pt(3, 3)))

	require.NoError(t, g.NormalizeInfluence(3))
	g.RemoveBlock(Vec2{X: 5.5, Y: 5.5}, 2, 2)
	assert.Equal(t, 3, cost(t, g, 4, 4))
	assert.Equal(t, 3, cost(t, g, 5, 5))

	g.CreateBlocks([]Vec2{{X: 0, Y: 0}, {X: 9, Y: 9}}, 4, 4)
	assert.False(t, g.Passable(Pt(0, 0)))
	assert.False(t, g.Passable(Pt(3, 3)))
	assert.True(t, g.Passable(Pt(4, 4)))
	assert.False(t, g.Passable(Pt(9, 9)))

	g.RemoveBlocks([]Vec2{{X: 0, Y: 0}, {X: 9, Y: 9}}, 4, 4)
	assert.Equal(t, 3, cost(t, g, 0, 0))
	assert.Equal(t, 3, cost(t, g, 9, 9))
}
