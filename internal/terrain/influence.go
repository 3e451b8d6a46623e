package terrain

import (
	"fmt"

	"github.com/udisondev/sc2pathlib/internal/pathfind"
)

// SetInfluenceColossus includes the colossus grid in ground and air
// influence updates.
func (m *Map) SetInfluenceColossus(on bool) { m.influenceColossus = on }

// SetInfluenceReaper includes the reaper grid in ground influence updates.
func (m *Map) SetInfluenceReaper(on bool) { m.influenceReaper = on }

func (m *Map) influenceGrids(group InfluenceGroup) ([]*pathfind.Grid, error) {
	var grids []*pathfind.Grid
	switch group {
	case PureGround:
		grids = append(grids, m.ground)
		if m.influenceReaper {
			grids = append(grids, m.reaper)
		}
	case GroundGroup:
		grids = append(grids, m.ground)
		if m.influenceColossus {
			grids = append(grids, m.colossus)
		}
		if m.influenceReaper {
			grids = append(grids, m.reaper)
		}
	case AirGroup:
		grids = append(grids, m.air)
		if m.influenceColossus {
			grids = append(grids, m.colossus)
		}
	case BothGroups:
		grids = append(grids, m.ground, m.air)
		if m.influenceColossus {
			grids = append(grids, m.colossus)
		}
		if m.influenceReaper {
			grids = append(grids, m.reaper)
		}
	default:
		return nil, fmt.Errorf("%w: influence group %d", ErrUnknownMapType, uint8(group))
	}
	return grids, nil
}

func roundAll(positions []pathfind.Vec2) []pathfind.Point {
	out := make([]pathfind.Point, len(positions))
	for i, p := range positions {
		out[i] = p.Round()
	}
	return out
}

// NormalizeInfluence normalizes all four grids to value.
func (m *Map) NormalizeInfluence(value int) error {
	for _, g := range []*pathfind.Grid{m.ground, m.air, m.colossus, m.reaper} {
		if err := g.NormalizeInfluence(value); err != nil {
			return err
		}
	}
	return nil
}

// AddInfluenceWalk adds influence*(1 - d/distance) at ground walk distance
// d from each position, and the full influence at the position itself, to
// every grid of the ground group.
func (m *Map) AddInfluenceWalk(positions []pathfind.Vec2, influence, distance float64) error {
	grids, err := m.influenceGrids(GroundGroup)
	if err != nil {
		return err
	}
	for _, src := range roundAll(positions) {
		if !m.ground.Passable(src) {
			if !m.ground.InBounds(src) {
				return fmt.Errorf("%w: (%d, %d)", pathfind.ErrOutOfBounds, src.X, src.Y)
			}
			continue
		}
		dests, err := m.ground.FindDestinationsIn(src, distance)
		if err != nil {
			return err
		}
		for _, g := range grids {
			g.Raise(src, int(influence))
			for _, d := range dests {
				if d.Distance < distance {
					g.Raise(d.Point, int(influence*(1-d.Distance/distance)))
				}
			}
		}
	}
	return nil
}

// AddInfluenceFlatHollow adds influence to the ring min < d < max around each
// position on every grid of the ground group.
func (m *Map) AddInfluenceFlatHollow(positions []pathfind.Vec2, influence, minDistance, maxDistance float64) error {
	grids, err := m.influenceGrids(GroundGroup)
	if err != nil {
		return err
	}
	pts := roundAll(positions)
	for _, g := range grids {
		if err := g.AddInfluenceFlatHollow(pts, influence, minDistance, maxDistance); err != nil {
			return err
		}
	}
	return nil
}

// AddInfluenceFading adds influence within minDistance of each position and
// a linearly fading share of it up to maxDistance, on every grid of group.
func (m *Map) AddInfluenceFading(group InfluenceGroup, positions []pathfind.Vec2, influence, minDistance, maxDistance float64) error {
	grids, err := m.influenceGrids(group)
	if err != nil {
		return err
	}
	pts := roundAll(positions)
	for _, g := range grids {
		if err := g.AddInfluenceFading(pts, influence, minDistance, maxDistance); err != nil {
			return err
		}
	}
	return nil
}
