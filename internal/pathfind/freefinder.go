package pathfind

// freeOffsets lists the offsets tried by the nearest-free search, nearest first.
// Within a distance band axis-aligned offsets come before diagonal ones.
var freeOffsets = [...]Point{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
	{-2, 0}, {2, 0}, {0, -2}, {0, 2},
	{-2, 1}, {2, -1}, {-1, -2}, {1, 2}, {-2, -1}, {2, 1}, {1, -2}, {-1, 2},
	{2, 2}, {-2, -2}, {2, -2}, {-2, 2},
	{-3, 0}, {3, 0}, {0, -3}, {0, 3},
	{-3, 1}, {3, -1}, {-1, -3}, {1, 3}, {-3, -1}, {3, 1}, {1, -3}, {-1, 3},
	{-3, 2}, {3, -2}, {-2, -3}, {2, 3}, {-3, -2}, {3, 2}, {2, -3}, {-2, 3},
	{-4, 0}, {4, 0}, {0, -4}, {0, 4},
	{-4, 1}, {4, -1}, {-1, -4}, {1, 4}, {-4, -1}, {4, 1}, {1, -4}, {-1, 4},
}

// NearestFree returns the first traversable cell around p. If p is already
// traversable or nothing free lies within reach, p is returned unchanged.
func (g *Grid) NearestFree(p Point) Point {
	if g.Passable(p) {
		return p
	}
	for _, off := range freeOffsets {
		if c := p.Add(off); g.Passable(c) {
			return c
		}
	}
	return p
}

// closestPathable applies NearestFree only when auto-correct is enabled.
func (g *Grid) closestPathable(p Point) Point {
	if !g.autoCorrect {
		return p
	}
	return g.NearestFree(p)
}
