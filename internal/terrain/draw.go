package terrain

import "github.com/udisondev/sc2pathlib/internal/pathfind"

// DrawClimbs renders walkable cells by cliff tag (2 plain, 3 low, 4 both,
// 5 high) and non-walkable cells as 1 when climbable or 6 when part of an
// overlord spot. Walkability is read from the live ground grid, so blocks
// show up.
func (m *Map) DrawClimbs() [][]int {
	out := newLayer(m.width, m.height)
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			p := m.at(x, y)
			switch {
			case m.ground.Passable(pathfind.Point{X: x, Y: y}):
				switch p.Cliff {
				case CliffHigh:
					out[x][y] = 5
				case CliffBoth:
					out[x][y] = 4
				case CliffLow:
					out[x][y] = 3
				default:
					out[x][y] = 2
				}
			case p.Climbable:
				out[x][y] = 1
			case p.OverlordSpot:
				out[x][y] = 6
			}
		}
	}
	return out
}

// DrawChokes renders borders as 255, borders inside a choke as 175 and other
// choke cells as 100.
func (m *Map) DrawChokes() [][]int {
	out := newLayer(m.width, m.height)
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			p := m.at(x, y)
			switch {
			case p.IsBorder && p.IsChoke:
				out[x][y] = 175
			case p.IsBorder:
				out[x][y] = 255
			case p.IsChoke:
				out[x][y] = 100
			}
		}
	}
	return out
}
