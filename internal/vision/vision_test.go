package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/sc2pathlib/internal/pathfind"
	"github.com/udisondev/sc2pathlib/internal/terrain"
)

var _ Terrain = (*terrain.Map)(nil)

type stubTerrain struct {
	w, h    int
	wall    func(x, y int) bool
	heights func(x, y int) int
}

func (s stubTerrain) Width() int             { return s.w }
func (s stubTerrain) Height() int            { return s.h }
func (s stubTerrain) HeightAt(x, y int) int  { return s.heights(x, y) }
func (s stubTerrain) Walkable(x, y int) bool { return !s.wall(x, y) }

func flatHeight(int, int) int { return 20 }
func noWall(int, int) bool    { return false }

// walled is a 40x20 flat map with a wall column at x=23.
func walled() stubTerrain {
	return stubTerrain{w: 40, h: 20, wall: func(x, _ int) bool { return x == 23 }, heights: flatHeight}
}

func status(t *testing.T, m *Map, x, y int) Status {
	t.Helper()

	s, err := m.Status(x, y)
	require.NoError(t, err)
	return s
}

func TestGroundVisionStopsAtWalls(t *testing.T) {
	tr := walled()
	m := New(tr.w, tr.h)
	m.AddUnit(Unit{Position: pathfind.Vec2{X: 19, Y: 8}, SightRange: 10})

	require.NoError(t, m.Calculate(tr))

	assert.Equal(t, Seen, status(t, m, 19, 8))
	assert.Equal(t, Seen, status(t, m, 20, 8))
	assert.Equal(t, Seen, status(t, m, 12, 8))
	assert.Equal(t, NotSeen, status(t, m, 23, 8), "the wall itself is not seen")
	assert.Equal(t, NotSeen, status(t, m, 25, 8))
	assert.Equal(t, NotSeen, status(t, m, 27, 8))
}

func TestFlyingVisionIgnoresWalls(t *testing.T) {
	tr := walled()
	m := New(tr.w, tr.h)
	m.AddUnit(Unit{Flying: true, Position: pathfind.Vec2{X: 19, Y: 8}, SightRange: 10})

	require.NoError(t, m.Calculate(tr))

	assert.Equal(t, Seen, status(t, m, 27, 8))
	assert.Equal(t, Seen, status(t, m, 29, 8))
	assert.Equal(t, NotSeen, status(t, m, 31, 8))
	assert.Equal(t, NotSeen, status(t, m, 27, 14), "octile distance is above the sight range")
}

func TestDetectionOverridesSight(t *testing.T) {
	tr := stubTerrain{w: 20, h: 20, wall: noWall, heights: flatHeight}
	m := New(tr.w, tr.h)
	m.AddUnit(Unit{Flying: true, Position: pathfind.Vec2{X: 5, Y: 5}, SightRange: 3})
	m.AddUnit(Unit{Flying: true, Detector: true, Position: pathfind.Vec2{X: 7, Y: 5}, SightRange: 1})
	m.AddUnit(Unit{Flying: true, Position: pathfind.Vec2{X: 7, Y: 5}, SightRange: 2})

	require.NoError(t, m.Calculate(tr))

	assert.Equal(t, Seen, status(t, m, 5, 5))
	assert.Equal(t, Detected, status(t, m, 7, 5))
	assert.Equal(t, Detected, status(t, m, 8, 5), "seen never downgrades detected")
	assert.Equal(t, Seen, status(t, m, 9, 5))
	assert.Equal(t, NotSeen, status(t, m, 10, 5))
}

func TestGroundVisionHeightBands(t *testing.T) {
	tr := stubTerrain{w: 20, h: 10, wall: noWall, heights: func(x, _ int) int {
		if x >= 10 {
			return 40
		}
		return 20
	}}
	m := New(tr.w, tr.h)
	m.AddUnit(Unit{Detector: true, Position: pathfind.Vec2{X: 6, Y: 5}, SightRange: 8})

	require.NoError(t, m.Calculate(tr))

	assert.Equal(t, Detected, status(t, m, 9, 5))
	assert.Equal(t, NotSeen, status(t, m, 10, 5), "higher ground is hidden")

	m.Clear()
	m.AddUnit(Unit{Detector: true, Position: pathfind.Vec2{X: 12, Y: 5}, SightRange: 8})
	require.NoError(t, m.Calculate(tr))

	assert.Equal(t, Detected, status(t, m, 8, 5), "lower ground is visible")
}

func TestMaxVisibleHeight(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{0, 7},
		{3, 7},
		{4, 15},
		{16, 23},
		{19, 23},
		{20, 31},
		{23, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maxVisibleHeight(tt.height), "height %d", tt.height)
	}
}

func TestCalculateRecomputes(t *testing.T) {
	tr := stubTerrain{w: 10, h: 10, wall: noWall, heights: flatHeight}
	m := New(tr.w, tr.h)
	m.AddUnit(Unit{Flying: true, Position: pathfind.Vec2{X: 2, Y: 2}, SightRange: 1})
	require.NoError(t, m.Calculate(tr))
	require.Equal(t, Seen, status(t, m, 2, 2))

	m.Clear()
	assert.Equal(t, 0, m.Units())
	assert.Equal(t, NotSeen, status(t, m, 2, 2))

	m.AddUnit(Unit{Flying: true, Position: pathfind.Vec2{X: 7, Y: 7}, SightRange: 1})
	require.NoError(t, m.Calculate(tr))
	assert.Equal(t, NotSeen, status(t, m, 2, 2))
	assert.Equal(t, 1, m.Draw()[7][7])
}

func TestVisionErrors(t *testing.T) {
	m := New(10, 10)

	_, err := m.Status(10, 0)
	assert.ErrorIs(t, err, pathfind.ErrOutOfBounds)

	err = m.Calculate(stubTerrain{w: 5, h: 10, wall: noWall, heights: flatHeight})
	assert.ErrorIs(t, err, ErrSizeMismatch)

	assert.Equal(t, "detected", Detected.String())
}

func TestVisionOnTerrainMap(t *testing.T) {
	pathing := make([][]int, 12)
	placement := make([][]int, 12)
	heights := make([][]int, 12)
	for x := range pathing {
		pathing[x] = make([]int, 12)
		placement[x] = make([]int, 12)
		heights[x] = make([]int, 12)
		for y := range pathing[x] {
			if x != 6 {
				pathing[x][y] = 1
			}
			heights[x][y] = 20
		}
	}
	tm, err := terrain.New(pathing, placement, heights, terrain.Area{XStart: 1, YStart: 1, XEnd: 10, YEnd: 10})
	require.NoError(t, err)

	m := New(tm.Width(), tm.Height())
	m.AddUnit(Unit{Position: pathfind.Vec2{X: 3, Y: 5}, SightRange: 6})
	require.NoError(t, m.Calculate(tm))

	assert.Equal(t, Seen, status(t, m, 5, 5))
	assert.Equal(t, NotSeen, status(t, m, 7, 5))
}
