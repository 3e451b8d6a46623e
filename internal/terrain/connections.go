package terrain

import (
	"fmt"

	"github.com/udisondev/sc2pathlib/internal/pathfind"
)

// CalculateConnections marks every ground cell within the configured walk
// distance of location as connected and clears the flag everywhere else.
func (m *Map) CalculateConnections(location pathfind.Vec2) error {
	dests, err := m.ground.Djiktra(location, m.cfg.ConnectionDistance)
	if err != nil {
		return fmt.Errorf("calculating connections: %w", err)
	}

	for i := range m.points {
		m.points[i].Connected = false
	}
	start := location.Floor()
	m.at(start.X, start.Y).Connected = true
	for _, d := range dests {
		m.at(d.Point.X, d.Point.Y).Connected = true
	}
	return nil
}

// IsConnected reports the connected flag of the cell nearest to location.
func (m *Map) IsConnected(location pathfind.Vec2) (bool, error) {
	p, err := m.cell(location)
	if err != nil {
		return false, err
	}
	return p.Connected, nil
}

// RemoveConnection clears the connected flag of the cell nearest to location.
func (m *Map) RemoveConnection(location pathfind.Vec2) error {
	p, err := m.cell(location)
	if err != nil {
		return err
	}
	p.Connected = false
	return nil
}

func (m *Map) cell(location pathfind.Vec2) (*MapPoint, error) {
	c := location.Round()
	if !m.inBounds(c.X, c.Y) {
		return nil, fmt.Errorf("%w: (%d, %d) outside %dx%d", pathfind.ErrOutOfBounds, c.X, c.Y, m.width, m.height)
	}
	return m.at(c.X, c.Y), nil
}
