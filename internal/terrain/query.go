package terrain

import "github.com/udisondev/sc2pathlib/internal/pathfind"

// The query wrappers below round real-valued positions to the nearest cell
// and forward to the grid selected by t.

func (m *Map) FindPath(t MapType, start, end pathfind.Vec2, h pathfind.Heuristic) (pathfind.Path, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Path{}, err
	}
	return g.FindPath(start.Round(), end.Round(), h)
}

func (m *Map) FindPathLarge(t MapType, start, end pathfind.Vec2, h pathfind.Heuristic) (pathfind.Path, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Path{}, err
	}
	return g.FindPathLarge(start.Round(), end.Round(), h)
}

func (m *Map) FindPathInfluence(t MapType, start, end pathfind.Vec2, h pathfind.Heuristic) (pathfind.Path, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Path{}, err
	}
	return g.FindPathInfluence(start.Round(), end.Round(), h)
}

func (m *Map) FindPathInfluenceLarge(t MapType, start, end pathfind.Vec2, h pathfind.Heuristic) (pathfind.Path, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Path{}, err
	}
	return g.FindPathInfluenceLarge(start.Round(), end.Round(), h)
}

func (m *Map) FindPathCloserThan(t MapType, start, end pathfind.Vec2, h pathfind.Heuristic, distance float64) (pathfind.Path, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Path{}, err
	}
	return g.FindPathCloserThan(start.Round(), end.Round(), h, distance)
}

func (m *Map) FindPathLargeCloserThan(t MapType, start, end pathfind.Vec2, h pathfind.Heuristic, distance float64) (pathfind.Path, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Path{}, err
	}
	return g.FindPathLargeCloserThan(start.Round(), end.Round(), h, distance)
}

func (m *Map) FindPathInfluenceCloserThan(t MapType, start, end pathfind.Vec2, h pathfind.Heuristic, distance float64) (pathfind.Path, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Path{}, err
	}
	return g.FindPathInfluenceCloserThan(start.Round(), end.Round(), h, distance)
}

func (m *Map) FindPathInfluenceLargeCloserThan(t MapType, start, end pathfind.Vec2, h pathfind.Heuristic, distance float64) (pathfind.Path, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Path{}, err
	}
	return g.FindPathInfluenceLargeCloserThan(start.Round(), end.Round(), h, distance)
}

// LowestInfluence returns the cheapest cell in a size x size square around
// center and its distance to the center.
func (m *Map) LowestInfluence(t MapType, center pathfind.Vec2, size int) (pathfind.Point, float64, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Point{}, 0, err
	}
	return g.LowestInfluence(center, size)
}

// LowestInfluenceWalk returns the cheapest cell within walk distance of center.
func (m *Map) LowestInfluenceWalk(t MapType, center pathfind.Vec2, distance float64) (pathfind.Point, float64, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Point{}, 0, err
	}
	return g.LowestInfluenceWalk(center.Round(), distance)
}

// FindLowInsideWalk trades low influence near target against keeping the
// approach bearing from start.
func (m *Map) FindLowInsideWalk(t MapType, start, target pathfind.Vec2, distance float64) (pathfind.Vec2, float64, error) {
	g, err := m.Grid(t)
	if err != nil {
		return pathfind.Vec2{}, 0, err
	}
	return g.FindLowInsideWalk(start, target, distance)
}
