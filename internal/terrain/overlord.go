package terrain

import "github.com/udisondev/sc2pathlib/internal/pathfind"

// resolveOverlordSpots grows every overlord seed into its same-height
// region. A region surrounded only by terrain at least one cliff level
// lower is kept and its centroid recorded; otherwise its cells lose the
// overlord flag.
func (m *Map) resolveOverlordSpots() {
	handled := make([]bool, len(m.points))
	seen := make([]int, len(m.points))
	stamp := 0

	a := m.area
	for x := a.XStart; x < a.XEnd; x++ {
		for y := a.YStart; y < a.YEnd; y++ {
			if handled[x*m.height+y] || !m.at(x, y).OverlordSpot {
				continue
			}
			stamp++
			region, ok := m.floodPlateau(pathfind.Point{X: x, Y: y}, seen, stamp)

			var sx, sy float64
			for _, p := range region {
				handled[p.X*m.height+p.Y] = true
				m.at(p.X, p.Y).OverlordSpot = ok
				sx += float64(p.X)
				sy += float64(p.Y)
			}
			if ok {
				n := float64(len(region))
				m.overlordSpots = append(m.overlordSpots, pathfind.Vec2{X: sx / n, Y: sy / n})
			}
		}
	}
}

// floodPlateau collects the 4-connected cells sharing the height of start.
// ok is false if any cell bordering the plateau is less than one cliff
// level below it.
func (m *Map) floodPlateau(start pathfind.Point, seen []int, stamp int) ([]pathfind.Point, bool) {
	target := m.at(start.X, start.Y).Height
	ok := true

	var region []pathfind.Point
	stack := []pathfind.Point{start}
	seen[start.X*m.height+start.Y] = stamp
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if h := m.at(p.X, p.Y).Height; h != target {
			if target < h+CliffLevel {
				ok = false
			}
			continue
		}
		region = append(region, p)

		for _, d := range orthogonal {
			n := p.Add(d)
			if !m.inBounds(n.X, n.Y) || seen[n.X*m.height+n.Y] == stamp {
				continue
			}
			seen[n.X*m.height+n.Y] = stamp
			stack = append(stack, n)
		}
	}
	return region, ok
}
