package pathfind

// NoLowPoint is the distance reported by FindLowInsideWalk when no
// traversable cell exists around the target.
const NoLowPoint = -1.0

// LowestInfluence scans a size x size square around center and returns the
// traversable cell with the smallest value, preferring cells closer to
// center on ties. The distance is the octile distance to the center cell.
// If the square holds no traversable cell, the center cell and NoLowPoint
// are returned.
func (g *Grid) LowestInfluence(center Vec2, size int) (Point, float64, error) {
	target := center.Floor()
	if err := g.check(target); err != nil {
		return Point{}, 0, err
	}

	r := RectAround(center, size, size, g.width, g.height)
	if r.Empty() {
		return target, NoLowPoint, nil
	}
	best, bestValue, bestDist := target, 0, 0
	found := false
	for x := r.X; x < r.XEnd; x++ {
		for y := r.Y; y < r.YEnd; y++ {
			v := g.at(x, y)
			if v == 0 {
				continue
			}
			p := Point{X: x, Y: y}
			d := OctileDistance(target, p)
			if !found || v < bestValue || (v == bestValue && d < bestDist) {
				best, bestValue, bestDist, found = p, v, d, true
			}
		}
	}
	if !found {
		return target, NoLowPoint, nil
	}
	return best, float64(bestDist) / MultF, nil
}

// LowestInfluenceWalk returns the cheapest cell within walk distance of
// center, preferring shorter walks on ties. The (corrected) center itself is
// a candidate at distance 0.
func (g *Grid) LowestInfluenceWalk(center Point, distance float64) (Point, float64, error) {
	if err := g.check(center); err != nil {
		return Point{}, 0, err
	}
	start := g.closestPathable(center)
	best, bestDist := start, 0.0
	bestValue := g.at(start.X, start.Y)

	for _, d := range g.dijkstra(start, Walk(), cutoff(distance)) {
		v := g.at(d.Point.X, d.Point.Y)
		if bestValue == 0 || v < bestValue || (v == bestValue && d.Distance < bestDist) {
			best, bestValue, bestDist = d.Point, v, d.Distance
		}
	}
	return best, bestDist, nil
}

// FindLowInsideWalk looks for a low-influence cell near target that can be
// approached from start on roughly the same bearing as the straight line.
//
// By default the traversable cell around target that is closest to start
// wins. Once start is within distance+4 of target, cells within the low
// inside radius of start compete as well, each scored as
// influence * (1 + angleDistance*angleWeight), where angleDistance is the
// deviation of the cell's bearing to target from start's bearing to target.
//
// The returned position is a cell center. With no traversable cell around
// target the result is the zero Vec2 and NoLowPoint.
func (g *Grid) FindLowInsideWalk(start, target Vec2, distance float64) (Vec2, float64, error) {
	startCell, targetCell := start.Floor(), target.Floor()
	if err := g.check(startCell); err != nil {
		return Vec2{}, 0, err
	}
	if err := g.check(targetCell); err != nil {
		return Vec2{}, 0, err
	}

	correctedStart := g.closestPathable(startCell)
	correctedTarget := g.closestPathable(targetCell)
	approach := bearing(start, target)

	size := int(distance)
	r := RectAroundPoint(correctedTarget, size, size, g.width, g.height)
	if r.Empty() {
		return Vec2{}, NoLowPoint, nil
	}

	var (
		backup     Point
		backupDist int
		found      bool
	)
	for x := r.X; x < r.XEnd; x++ {
		for y := r.Y; y < r.YEnd; y++ {
			if g.at(x, y) == 0 {
				continue
			}
			p := Point{X: x, Y: y}
			d := OctileDistance(startCell, p)
			if !found || d < backupDist {
				backup, backupDist, found = p, d, true
			}
		}
	}
	if !found {
		return Vec2{}, NoLowPoint, nil
	}

	bestPos := backup.Center()
	bestDist := float64(backupDist) / MultF

	if Distance(start, target) < distance+lowInsideSlack {
		deviation := angleDistance(approach, bearing(bestPos, target))
		bestScore := float64(g.at(backup.X, backup.Y)) * (1 + deviation*g.angleWeight)

		for _, d := range g.dijkstra(correctedStart, Walk(), cutoff(g.lowInsideRadius)) {
			pos := d.Point.Center()
			deviation := angleDistance(approach, bearing(pos, target))
			score := float64(g.at(d.Point.X, d.Point.Y)) * (1 + deviation*g.angleWeight)
			if score < bestScore {
				bestScore, bestPos, bestDist = score, pos, d.Distance
			}
		}
	}
	return bestPos, bestDist, nil
}
