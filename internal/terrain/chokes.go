package terrain

import (
	"math"
	"slices"

	"github.com/udisondev/sc2pathlib/internal/pathfind"
)

// Line is a straight segment between two border cells.
type Line struct {
	A, B pathfind.Point
}

// Length returns the Euclidean length of the line in cells.
func (l Line) Length() float64 {
	return float64(pathfind.EuclideanDistance(l.A, l.B)) / pathfind.MultF
}

func (l Line) flip() Line { return Line{A: l.B, B: l.A} }

// Choke is a cluster of parallel border-to-border lines spanning one gap.
// Side1 holds the A ends of the lines and Side2 the B ends; MainLine joins
// the average of each side.
type Choke struct {
	Lines     []Line
	Side1     []pathfind.Point
	Side2     []pathfind.Point
	MainLine  [2]pathfind.Vec2
	MinLength float64
	Pixels    []pathfind.Point
}

// Center returns the midpoint of the main line.
func (c Choke) Center() pathfind.Vec2 {
	return pathfind.Vec2{
		X: (c.MainLine[0].X + c.MainLine[1].X) / 2,
		Y: (c.MainLine[0].Y + c.MainLine[1].Y) / 2,
	}
}

// findChokeLines casts lines from every border cell to border cells on the
// other side of a gap. Two borders form a line when they are not connected
// by a short walk along the borders and the straight segment between them
// only crosses walkable cells.
func (m *Map) findChokeLines(border *pathfind.Grid) []Line {
	a := m.area
	reach := int(m.cfg.ChokeDistance)
	reached := make([]int, len(m.points))
	stamp := 0

	var lines []Line
	for x := a.XStart; x < a.XEnd; x++ {
		for y := a.YStart; y < a.YEnd; y++ {
			if !m.at(x, y).IsBorder {
				continue
			}
			start := pathfind.Point{X: x, Y: y}
			dests, err := border.Reachable(start, pathfind.Walk(), m.cfg.ChokeBorderDistance)
			if err != nil {
				continue
			}
			stamp++
			for _, d := range dests {
				reached[d.Point.X*m.height+d.Point.Y] = stamp
			}

			xMin, xMax := max(x-reach, a.XStart), min(x+reach+1, a.XEnd)
			yMin, yMax := max(y-reach, a.YStart), min(y+reach, a.YEnd)
			for nx := xMin; nx < xMax; nx++ {
				for ny := yMin; ny < yMax; ny++ {
					if (nx+ny)%2 == 0 || !m.at(nx, ny).IsBorder {
						continue
					}
					end := pathfind.Point{X: nx, Y: ny}
					dist := float64(pathfind.EuclideanDistance(start, end)) / pathfind.MultF
					if dist > m.cfg.ChokeDistance || dist < 2 {
						continue
					}
					if reached[nx*m.height+ny] == stamp {
						continue
					}
					if _, open := m.sampleLine(start, end); open {
						lines = append(lines, Line{A: start, B: end})
					}
				}
			}
		}
	}
	return lines
}

// sampleLine walks the segment a-b in unit steps and returns the cells in
// between. open is false as soon as a sampled cell is not walkable.
func (m *Map) sampleLine(a, b pathfind.Point) ([]pathfind.Point, bool) {
	dist := float64(pathfind.EuclideanDistance(a, b)) / pathfind.MultF
	if dist == 0 {
		return nil, true
	}
	ux := float64(b.X-a.X) / dist
	uy := float64(b.Y-a.Y) / dist

	var cells []pathfind.Point
	for i := 1; i < int(dist); i++ {
		c := pathfind.Point{
			X: int(float64(a.X) + ux*float64(i)),
			Y: int(float64(a.Y) + uy*float64(i)),
		}
		if c == a || c == b {
			continue
		}
		if !m.walkableAt(c.X, c.Y) {
			return nil, false
		}
		cells = append(cells, c)
	}
	return cells, true
}

// adjacentEnds reports whether two endpoints are at most one step apart.
func adjacentEnds(p, q pathfind.Point) bool {
	return pathfind.OctileDistance(p, q) <= pathfind.Sqrt2
}

// absorb adds l to the cluster if it runs alongside one of its lines, flipping
// it to match the cluster's orientation when needed.
func absorb(cluster []Line, l Line) ([]Line, bool) {
	for _, e := range cluster {
		if adjacentEnds(e.A, l.A) && adjacentEnds(e.B, l.B) {
			return append(cluster, l), true
		}
		if adjacentEnds(e.A, l.B) && adjacentEnds(e.B, l.A) {
			return append(cluster, l.flip()), true
		}
	}
	return cluster, false
}

// groupChokes clusters raw lines until no line joins any cluster, then
// finalizes each cluster into a Choke.
func (m *Map) groupChokes(lines []Line) []Choke {
	remaining := slices.Clone(lines)

	var chokes []Choke
	for len(remaining) > 0 {
		cluster := []Line{remaining[0]}
		remaining = remaining[1:]

		for changed := true; changed; {
			changed = false
			rest := make([]Line, 0, len(remaining))
			for _, l := range remaining {
				var joined bool
				if cluster, joined = absorb(cluster, l); joined {
					changed = true
					continue
				}
				rest = append(rest, l)
			}
			remaining = rest
		}

		if c, ok := m.finalizeChoke(cluster); ok {
			chokes = append(chokes, c)
		}
	}
	return chokes
}

// finalizeChoke prunes lines much longer than the shortest one, drops
// clusters with too few lines and marks the swept cells as choke cells.
func (m *Map) finalizeChoke(cluster []Line) (Choke, bool) {
	minLength := math.Inf(1)
	for _, l := range cluster {
		minLength = min(minLength, l.Length())
	}
	limit := minLength * m.cfg.ChokeLengthTolerance

	c := Choke{MinLength: minLength}
	for _, l := range cluster {
		if l.Length() <= limit {
			c.Lines = append(c.Lines, l)
		}
	}
	if len(c.Lines) < m.cfg.ChokeMinLines {
		return Choke{}, false
	}

	var s1, s2 pathfind.Vec2
	seen := make(map[pathfind.Point]struct{})
	mark := func(p pathfind.Point) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		c.Pixels = append(c.Pixels, p)
		m.at(p.X, p.Y).IsChoke = true
	}
	for _, l := range c.Lines {
		c.Side1 = append(c.Side1, l.A)
		c.Side2 = append(c.Side2, l.B)
		s1.X += float64(l.A.X)
		s1.Y += float64(l.A.Y)
		s2.X += float64(l.B.X)
		s2.Y += float64(l.B.Y)

		mark(l.A)
		cells, open := m.sampleLine(l.A, l.B)
		if !open {
			cells, _ = m.sampleLine(l.B, l.A)
		}
		for _, p := range cells {
			mark(p)
		}
		mark(l.B)
	}

	n := float64(len(c.Lines))
	c.MainLine = [2]pathfind.Vec2{
		{X: s1.X / n, Y: s1.Y / n},
		{X: s2.X / n, Y: s2.Y / n},
	}
	return c, true
}
