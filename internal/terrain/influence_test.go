package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/sc2pathlib/internal/pathfind"
)

func gridCost(t *testing.T, m *Map, mt MapType, x, y int) int {
	t.Helper()

	g, err := m.Grid(mt)
	require.NoError(t, err)
	v, err := g.Cost(pathfind.Point{X: x, Y: y})
	require.NoError(t, err)
	return v
}

func TestInfluenceGroups(t *testing.T) {
	m := plateauMap(t, 40, 0)
	require.NoError(t, m.NormalizeInfluence(5))

	src := []pathfind.Vec2{{X: 2, Y: 2}}
	require.NoError(t, m.AddInfluenceFading(AirGroup, src, 10, 1, 3))
	assert.Equal(t, 15, gridCost(t, m, Air, 2, 2))
	assert.Equal(t, 5, gridCost(t, m, Ground, 2, 2), "ground is not in the air group")
	assert.Equal(t, 5, gridCost(t, m, Colossus, 2, 2), "colossus is opt-in")

	m.SetInfluenceColossus(true)
	require.NoError(t, m.AddInfluenceFading(AirGroup, src, 10, 1, 3))
	assert.Equal(t, 25, gridCost(t, m, Air, 2, 2))
	assert.Equal(t, 15, gridCost(t, m, Colossus, 2, 2))

	m.SetInfluenceReaper(true)
	require.NoError(t, m.AddInfluenceFading(PureGround, src, 10, 1, 3))
	assert.Equal(t, 15, gridCost(t, m, Ground, 2, 2))
	assert.Equal(t, 15, gridCost(t, m, Reaper, 2, 2))
	assert.Equal(t, 15, gridCost(t, m, Colossus, 2, 2), "pure ground skips colossus")

	err := m.AddInfluenceFading(InfluenceGroup(9), src, 10, 1, 3)
	assert.ErrorIs(t, err, ErrUnknownMapType)
}

func TestAddInfluenceWalk(t *testing.T) {
	m := plateauMap(t, 40, 0)
	require.NoError(t, m.NormalizeInfluence(5))

	require.NoError(t, m.AddInfluenceWalk([]pathfind.Vec2{{X: 2, Y: 2}}, 10, 4))

	assert.Equal(t, 15, gridCost(t, m, Ground, 2, 2))
	assert.Equal(t, 12, gridCost(t, m, Ground, 3, 2))
	assert.Equal(t, 5, gridCost(t, m, Ground, 8, 8), "beyond the walk distance")
	assert.Equal(t, 5, gridCost(t, m, Air, 2, 2))
	assert.Equal(t, 0, gridCost(t, m, Ground, 4, 4), "blocked cells stay blocked")

	err := m.AddInfluenceWalk([]pathfind.Vec2{{X: 40, Y: 2}}, 10, 4)
	assert.ErrorIs(t, err, pathfind.ErrOutOfBounds)
}

func TestAddInfluenceFlatHollow(t *testing.T) {
	m := plateauMap(t, 40, 0)

	require.NoError(t, m.AddInfluenceFlatHollow([]pathfind.Vec2{{X: 2, Y: 7}}, 6, 0.5, 2.5))

	assert.Equal(t, 1, gridCost(t, m, Ground, 2, 7), "the hole is untouched")
	assert.Equal(t, 7, gridCost(t, m, Ground, 3, 7))
	assert.Equal(t, 1, gridCost(t, m, Ground, 6, 7))
}

func TestNormalizeInfluenceRejectsZero(t *testing.T) {
	m := plateauMap(t, 40, 0)

	assert.ErrorIs(t, m.NormalizeInfluence(0), pathfind.ErrInvalidInfluence)
}

func TestQueryWrappers(t *testing.T) {
	m := chokeMap(t)

	path, err := m.FindPath(Ground, pathfind.Vec2{X: 5.4, Y: 9.6}, pathfind.Vec2{X: 14.5, Y: 9.4}, pathfind.Octile)
	require.NoError(t, err)
	require.True(t, path.Found())
	assert.Equal(t, pathfind.Point{X: 5, Y: 10}, path.Cells[0])
	assert.Equal(t, pathfind.Point{X: 15, Y: 9}, path.Cells[len(path.Cells)-1])

	closer, err := m.FindPathCloserThan(Ground, pathfind.Vec2{X: 5, Y: 10}, pathfind.Vec2{X: 15, Y: 9}, pathfind.Octile, 3)
	require.NoError(t, err)
	require.True(t, closer.Found())
	assert.Less(t, closer.Distance, path.Distance)

	large, err := m.FindPathLarge(Ground, pathfind.Vec2{X: 5, Y: 10}, pathfind.Vec2{X: 15, Y: 9}, pathfind.Octile)
	require.NoError(t, err)
	assert.True(t, large.Found(), "a four cell gap lets large units through")

	air, err := m.FindPathInfluence(Air, pathfind.Vec2{X: 5, Y: 5}, pathfind.Vec2{X: 14, Y: 5}, pathfind.Octile)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, air.Distance, 1e-9, "air flies over the wall")

	_, err = m.FindPath(Ground, pathfind.Vec2{X: -2, Y: 5}, pathfind.Vec2{X: 5, Y: 5}, pathfind.Octile)
	assert.ErrorIs(t, err, pathfind.ErrOutOfBounds)

	_, err = m.FindPath(MapType(7), pathfind.Vec2{X: 5, Y: 5}, pathfind.Vec2{X: 6, Y: 5}, pathfind.Octile)
	assert.ErrorIs(t, err, ErrUnknownMapType)
}

func TestLowestInfluenceQueries(t *testing.T) {
	m := plateauMap(t, 40, 0)
	require.NoError(t, m.NormalizeInfluence(5))

	g, err := m.Grid(Ground)
	require.NoError(t, err)
	g.Raise(pathfind.Point{X: 2, Y: 2}, 10)

	p, d, err := m.LowestInfluence(Ground, pathfind.Vec2{X: 2.5, Y: 2.5}, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, gridCost(t, m, Ground, p.X, p.Y))
	assert.NotEqual(t, pathfind.Point{X: 2, Y: 2}, p)
	assert.InDelta(t, 1.0, d, 1e-9)

	w, wd, err := m.LowestInfluenceWalk(Ground, pathfind.Vec2{X: 2, Y: 2}, 2)
	require.NoError(t, err)
	assert.NotEqual(t, pathfind.Point{X: 2, Y: 2}, w)
	assert.InDelta(t, 1.0, wd, 1e-9)

	_, _, err = m.LowestInfluence(MapType(5), pathfind.Vec2{X: 2, Y: 2}, 3)
	assert.ErrorIs(t, err, ErrUnknownMapType)
}
