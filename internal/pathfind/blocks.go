package pathfind

// CreateBlock zeroes a w x h rectangle around center.
func (g *Grid) CreateBlock(center Vec2, w, h int) {
	g.fill(RectAround(center, w, h, g.width, g.height), 0)
}

// CreateBlocks zeroes a w x h rectangle around every center.
func (g *Grid) CreateBlocks(centers []Vec2, w, h int) {
	for _, c := range centers {
		g.CreateBlock(c, w, h)
	}
}

// RemoveBlock sets a w x h rectangle around center back to the normal
// influence.
func (g *Grid) RemoveBlock(center Vec2, w, h int) {
	g.fill(RectAround(center, w, h, g.width, g.height), g.normalInfluence)
}

// RemoveBlocks calls RemoveBlock for every center.
func (g *Grid) RemoveBlocks(centers []Vec2, w, h int) {
	for _, c := range centers {
		g.RemoveBlock(c, w, h)
	}
}

func (g *Grid) fill(r Rect, v int) {
	for x := r.X; x < r.XEnd; x++ {
		for y := r.Y; y < r.YEnd; y++ {
			g.set(x, y, v)
		}
	}
}
