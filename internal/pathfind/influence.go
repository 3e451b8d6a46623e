package pathfind

import "fmt"

// NormalizeInfluence sets every traversable cell to value and makes value
// the new baseline cost. Blocked cells are left untouched.
func (g *Grid) NormalizeInfluence(value int) error {
	if value < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidInfluence, value)
	}
	for i, v := range g.cells {
		if v > 0 {
			g.cells[i] = value
		}
	}
	g.normalInfluence = value
	return nil
}

func (g *Grid) checkAll(positions []Point) error {
	for _, p := range positions {
		if err := g.check(p); err != nil {
			return err
		}
	}
	return nil
}

// AddInfluence adds peak*(1 - d/distance) to every traversable cell whose
// octile distance d to a source is below distance.
func (g *Grid) AddInfluence(positions []Point, peak, distance float64) error {
	if err := g.checkAll(positions); err != nil {
		return err
	}
	if distance <= 0 {
		return nil
	}
	mult := 1 / (distance * MultF)
	diameter := int(distance*2) + 2

	for _, p := range positions {
		r := RectAroundPoint(p, diameter, diameter, g.width, g.height)
		for x := r.X; x < r.XEnd; x++ {
			for y := r.Y; y < r.YEnd; y++ {
				if g.at(x, y) == 0 {
					continue
				}
				value := peak * (1 - float64(OctileDistance(p, Point{X: x, Y: y}))*mult)
				if value > 0 {
					g.set(x, y, g.at(x, y)+int(value))
				}
			}
		}
	}
	return nil
}

// AddInfluenceFlat adds peak to every traversable cell within octile
// distance of a source.
func (g *Grid) AddInfluenceFlat(positions []Point, peak, distance float64) error {
	return g.AddInfluenceFlatHollow(positions, peak, -1, distance)
}

// AddInfluenceFlatHollow adds peak to traversable cells whose octile
// distance d to a source satisfies minDistance < d < maxDistance.
func (g *Grid) AddInfluenceFlatHollow(positions []Point, peak, minDistance, maxDistance float64) error {
	if err := g.checkAll(positions); err != nil {
		return err
	}
	value := int(peak)
	lo := minDistance * MultF
	hi := maxDistance * MultF
	diameter := int(maxDistance*2) + 2

	for _, p := range positions {
		r := RectAroundPoint(p, diameter, diameter, g.width, g.height)
		for x := r.X; x < r.XEnd; x++ {
			for y := r.Y; y < r.YEnd; y++ {
				if g.at(x, y) == 0 {
					continue
				}
				d := float64(OctileDistance(p, Point{X: x, Y: y}))
				if d > lo && d < hi {
					g.set(x, y, g.at(x, y)+value)
				}
			}
		}
	}
	return nil
}

// AddInfluenceFading adds the full value within minDistance and a linearly
// fading share of it up to maxDistance.
func (g *Grid) AddInfluenceFading(positions []Point, influence, minDistance, maxDistance float64) error {
	if err := g.checkAll(positions); err != nil {
		return err
	}
	flat := int(influence)
	span := maxDistance - minDistance
	diameter := int(maxDistance*2) + 2

	for _, p := range positions {
		r := RectAroundPoint(p, diameter, diameter, g.width, g.height)
		for x := r.X; x < r.XEnd; x++ {
			for y := r.Y; y < r.YEnd; y++ {
				if g.at(x, y) == 0 {
					continue
				}
				d := float64(OctileDistance(p, Point{X: x, Y: y})) / MultF
				switch {
				case d < minDistance:
					g.set(x, y, g.at(x, y)+flat)
				case d < maxDistance && span > 0:
					if v := int(influence * (1 - (d-minDistance)/span)); v > 0 {
						g.set(x, y, g.at(x, y)+v)
					}
				}
			}
		}
	}
	return nil
}

// AddWalkInfluence adds peak to each source and peak*(1 - d/distance) to
// every cell at walk distance d < distance from it. Sources on blocked
// cells are skipped.
func (g *Grid) AddWalkInfluence(positions []Point, peak, distance float64) error {
	if err := g.checkAll(positions); err != nil {
		return err
	}
	for _, p := range positions {
		if g.at(p.X, p.Y) == 0 {
			continue
		}
		dests := g.dijkstra(p, Walk(), cutoff(distance))
		g.set(p.X, p.Y, g.at(p.X, p.Y)+int(peak))
		for _, d := range dests {
			if d.Distance < distance {
				x, y := d.Point.X, d.Point.Y
				g.set(x, y, g.at(x, y)+int(peak*(1-d.Distance/distance)))
			}
		}
	}
	return nil
}

// AddWalkInfluenceFlat adds peak to each source and every cell within walk
// distance of it. Sources are corrected to a nearby free cell first.
func (g *Grid) AddWalkInfluenceFlat(positions []Point, peak, distance float64) error {
	if err := g.checkAll(positions); err != nil {
		return err
	}
	value := int(peak)
	for _, p := range positions {
		p = g.closestPathable(p)
		if g.at(p.X, p.Y) == 0 {
			continue
		}
		dests := g.dijkstra(p, Walk(), cutoff(distance))
		g.set(p.X, p.Y, g.at(p.X, p.Y)+value)
		for _, d := range dests {
			g.set(d.Point.X, d.Point.Y, g.at(d.Point.X, d.Point.Y)+value)
		}
	}
	return nil
}

// Raise adds v to p if p is traversable. It is a no-op for blocked or
// out-of-grid cells.
func (g *Grid) Raise(p Point, v int) {
	if g.Passable(p) {
		g.set(p.X, p.Y, g.at(p.X, p.Y)+v)
	}
}
