package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// layers builds pathing, placement and height layers from predicates.
func layers(w, h int, walkable func(x, y int) bool, height func(x, y int) int) (pathing, placement, heights [][]int) {
	pathing = newLayer(w, h)
	placement = newLayer(w, h)
	heights = newLayer(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if walkable(x, y) {
				pathing[x][y] = 1
			}
			heights[x][y] = height(x, y)
		}
	}
	return pathing, placement, heights
}

func buildMap(t testing.TB, w, h int, area Area, walkable func(x, y int) bool, height func(x, y int) int) *Map {
	t.Helper()

	pathing, placement, heights := layers(w, h, walkable, height)
	m, err := New(pathing, placement, heights, area)
	require.NoError(t, err)
	return m
}

func flat(int, int) int { return 20 }

// chokeMap is a 20x20 map split by a two-cell wall at x=9..10 with a four
// cell gap at y=8..11.
func chokeMap(t testing.TB) *Map {
	t.Helper()

	return buildMap(t, 20, 20, Area{XStart: 2, YStart: 2, XEnd: 17, YEnd: 17},
		func(x, y int) bool {
			if x < 2 || y < 2 || x > 17 || y > 17 {
				return false
			}
			if (x == 9 || x == 10) && (y < 8 || y > 11) {
				return false
			}
			return true
		}, flat)
}

// cliffMap is a 12x8 map with a one-cell wall at x=5 separating height 10
// on the left from height 26 on the right.
func cliffMap(t testing.TB) *Map {
	t.Helper()

	return buildMap(t, 12, 8, Area{XStart: 1, YStart: 1, XEnd: 10, YEnd: 6},
		func(x, _ int) bool { return x != 5 },
		func(x, _ int) int {
			if x <= 5 {
				return 10
			}
			return 26
		})
}

// plateauMap is a 10x10 flat map at height 20 with a raised 2x2 block at
// (4..5, 4..5). peak is the block height; rim, when non-zero, is the height
// of the walkable cell (6, 4).
func plateauMap(t testing.TB, peak, rim int) *Map {
	t.Helper()

	block := func(x, y int) bool { return x >= 4 && x <= 5 && y >= 4 && y <= 5 }
	return buildMap(t, 10, 10, Area{XStart: 1, YStart: 1, XEnd: 8, YEnd: 8},
		func(x, y int) bool { return !block(x, y) },
		func(x, y int) int {
			switch {
			case block(x, y):
				return peak
			case rim != 0 && x == 6 && y == 4:
				return rim
			}
			return 20
		})
}
