package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid where rows[y][x] is the cell value as a digit.
func gridFromRows(t testing.TB, rows ...string) *Grid {
	t.Helper()

	cells := make([][]int, len(rows[0]))
	for x := range cells {
		cells[x] = make([]int, len(rows))
		for y, row := range rows {
			cells[x][y] = int(row[x] - '0')
		}
	}
	g, err := NewGrid(cells)
	require.NoError(t, err)
	return g
}

func openGrid(t testing.TB, w, h, v int) *Grid {
	t.Helper()

	cells := make([][]int, w)
	for x := range cells {
		cells[x] = make([]int, h)
		for y := range cells[x] {
			cells[x][y] = v
		}
	}
	g, err := NewGrid(cells)
	require.NoError(t, err)
	return g
}

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]int{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]int{{1, 1}, {1}})
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = NewGrid([][]int{{1, -1}})
	assert.ErrorIs(t, err, ErrNegativeCost)

	g, err := NewGrid([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.True(t, g.AutoCorrect())
	assert.Equal(t, DefaultNormalInfluence, g.NormalInfluence())

	v, err := g.Cost(Pt(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	_, err = g.Cost(Pt(2, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGridOptions(t *testing.T) {
	g, err := NewGrid([][]int{{1}}, WithAutoCorrect(false), WithAngleWeight(0.5), WithLowInsideRadius(7))
	require.NoError(t, err)
	assert.False(t, g.AutoCorrect())
	assert.Equal(t, 0.5, g.angleWeight)
	assert.Equal(t, 7.0, g.lowInsideRadius)
}

func TestGridMapIsACopy(t *testing.T) {
	g := gridFromRows(t, "12", "34")

	m := g.Map()
	assert.Equal(t, [][]int{{1, 3}, {2, 4}}, m)

	m[0][0] = 9
	v, _ := g.Cost(Pt(0, 0))
	assert.Equal(t, 1, v)
}

func TestSetMapAndReset(t *testing.T) {
	g := gridFromRows(t, "11", "11")

	require.NoError(t, g.SetMap([][]int{{0, 2}, {3, 0}}))
	assert.Equal(t, [][]int{{0, 2}, {3, 0}}, g.Map())

	err := g.SetMap([][]int{{1, 1, 1}, {1, 1, 1}})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	require.NoError(t, g.NormalizeInfluence(5))
	g.Reset()
	assert.Equal(t, [][]int{{1, 1}, {1, 1}}, g.Map())
	assert.Equal(t, DefaultNormalInfluence, g.NormalInfluence())
}

func TestResetAfterQueriesAndMutations(t *testing.T) {
	g := openGrid(t, 12, 12, 1)
	before := g.Map()

	require.NoError(t, g.AddInfluence([]Point{Pt(5, 5)}, 20, 4))
	g.CreateBlock(Vec2{X: 3, Y: 3}, 2, 2)
	_, err := g.FindPathInfluence(Pt(0, 0), Pt(11, 11), Octile)
	require.NoError(t, err)

	g.Reset()
	assert.Equal(t, before, g.Map())
}

func TestCloneIsIndependent(t *testing.T) {
	g := openGrid(t, 3, 3, 1)
	c := g.Clone()
	c.CreateBlock(Vec2{X: 1, Y: 1}, 1, 1)

	assert.True(t, g.Passable(Pt(1, 1)))
	assert.False(t, c.Passable(Pt(1, 1)))
}
