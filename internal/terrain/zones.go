package terrain

import (
	"fmt"
	"math"

	"github.com/udisondev/sc2pathlib/internal/pathfind"
)

// CalculateZones assigns zone indices 1..n to the walkable cells around
// the given base locations, in order. Each zone floods outward from its
// base over cells of the same height band. It stops at choke cells and
// beyond the configured radius. A cell already taken by an earlier zone
// changes hands only when the walk to the new base is strictly shorter
// than the walk to its current one.
func (m *Map) CalculateZones(bases []pathfind.Vec2) error {
	seeds := make([]pathfind.Point, len(bases))
	for i, b := range bases {
		p := b.Floor()
		if !m.inBounds(p.X, p.Y) {
			return fmt.Errorf("zone base %d: %w: (%d, %d)", i, pathfind.ErrOutOfBounds, p.X, p.Y)
		}
		seeds[i] = p
	}

	for i := range m.points {
		m.points[i].ZoneIndex = 0
	}

	visited := make([]int, len(m.points))
	for i, seed := range seeds {
		m.floodZone(i+1, seed, bases[i], seeds, visited)
	}
	return nil
}

func (m *Map) floodZone(zone int, seed pathfind.Point, origin pathfind.Vec2, seeds []pathfind.Point, visited []int) {
	target := m.at(seed.X, seed.Y).Height
	tolerance := m.cfg.ZoneHeightTolerance

	queue := []pathfind.Point{seed}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		idx := c.X*m.height + c.Y
		if visited[idx] == zone {
			continue
		}
		visited[idx] = zone

		p := m.at(c.X, c.Y)
		if !p.Walkable || p.ZoneIndex == zone {
			continue
		}
		if p.ZoneIndex > 0 && !m.closerToSeed(c, seed, seeds[p.ZoneIndex-1]) {
			continue
		}
		p.ZoneIndex = zone

		if abs(target-p.Height) > tolerance || p.IsChoke {
			continue
		}
		if pathfind.Distance(origin, c.Vec()) > m.cfg.ZoneRadius {
			continue
		}

		for _, d := range orthogonal {
			n := c.Add(d)
			if m.inBounds(n.X, n.Y) && visited[n.X*m.height+n.Y] != zone {
				queue = append(queue, n)
			}
		}
	}
}

// closerToSeed reports whether c walks strictly shorter to seed than to
// current on the reaper grid.
func (m *Map) closerToSeed(c, seed, current pathfind.Point) bool {
	return m.walkDistance(c, seed) < m.walkDistance(c, current)
}

func (m *Map) walkDistance(from, to pathfind.Point) float64 {
	path, err := m.reaper.FindPath(from, to, pathfind.Euclidean)
	if err != nil || !path.Found() {
		return math.Inf(1)
	}
	return path.Distance
}

// DrawZones renders zones: 255 for walkable cells without a zone and
// 50+20*zone for zoned cells.
func (m *Map) DrawZones() [][]int {
	out := newLayer(m.width, m.height)
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			p := m.at(x, y)
			if !p.Walkable {
				continue
			}
			out[x][y] = 255
			if p.ZoneIndex > 0 {
				out[x][y] = 50 + 20*p.ZoneIndex
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
