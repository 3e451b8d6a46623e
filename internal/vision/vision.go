// Package vision computes which cells a set of units can see.
//
// Flying units see every cell within sight range. Ground units cast rays
// that stop at non-walkable cells and at terrain above the height band the
// unit stands on.
package vision

import (
	"errors"
	"fmt"
	"math"

	"github.com/udisondev/sc2pathlib/internal/pathfind"
)

// ErrSizeMismatch is returned by Calculate when the terrain and the vision
// map differ in size.
var ErrSizeMismatch = errors.New("vision: terrain size mismatch")

// Height banding of ground line of sight. A unit sees up to the top of its
// band, or one band higher when it stands in the upper half of its band.
const (
	heightBand     = 8
	heightHalfBand = 4
)

// Terrain is the read-only view of the map needed for ray casting.
type Terrain interface {
	Width() int
	Height() int
	HeightAt(x, y int) int
	Walkable(x, y int) bool
}

// Status is the visibility of a cell.
type Status uint8

const (
	NotSeen Status = iota
	Seen
	Detected
)

func (s Status) String() string {
	switch s {
	case NotSeen:
		return "not seen"
	case Seen:
		return "seen"
	case Detected:
		return "detected"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Unit is a sight source.
type Unit struct {
	Detector   bool
	Flying     bool
	Position   pathfind.Vec2
	SightRange float64
}

// Map holds the units and the statuses of the last calculation.
type Map struct {
	width, height int
	units         []Unit
	points        []Status
}

// New returns an empty vision map of the given size.
func New(width, height int) *Map {
	return &Map{
		width:  width,
		height: height,
		points: make([]Status, width*height),
	}
}

// AddUnit registers a unit for the next Calculate.
func (m *Map) AddUnit(u Unit) { m.units = append(m.units, u) }

// Units returns the number of registered units.
func (m *Map) Units() int { return len(m.units) }

// Clear drops all units and resets every cell to NotSeen.
func (m *Map) Clear() {
	m.units = m.units[:0]
	clear(m.points)
}

// Calculate recomputes every status from the registered units.
func (m *Map) Calculate(t Terrain) error {
	if t.Width() != m.width || t.Height() != m.height {
		return fmt.Errorf("%w: terrain %dx%d, vision %dx%d", ErrSizeMismatch, t.Width(), t.Height(), m.width, m.height)
	}

	clear(m.points)
	for _, u := range m.units {
		mark := Seen
		if u.Detector {
			mark = Detected
		}
		if u.Flying {
			m.markRadius(u, mark)
		} else {
			m.castRays(t, u, mark)
		}
	}
	return nil
}

// Status returns the visibility of cell (x, y).
func (m *Map) Status(x, y int) (Status, error) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return NotSeen, fmt.Errorf("%w: (%d, %d) outside %dx%d", pathfind.ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.points[x*m.height+y], nil
}

// Draw renders the statuses as 0, 1 and 2.
func (m *Map) Draw() [][]int {
	out := make([][]int, m.width)
	for x := range out {
		out[x] = make([]int, m.height)
		for y := range out[x] {
			out[x][y] = int(m.points[x*m.height+y])
		}
	}
	return out
}

func (m *Map) mark(x, y int, s Status) {
	idx := x*m.height + y
	if s == Detected || m.points[idx] == NotSeen {
		m.points[idx] = s
	}
}

func (m *Map) markRadius(u Unit, s Status) {
	c := u.Position.Round()
	r := int(u.SightRange)
	limit := int(u.SightRange * pathfind.MultF)

	for x := max(0, c.X-r); x <= min(m.width-1, c.X+r); x++ {
		for y := max(0, c.Y-r); y <= min(m.height-1, c.Y+r); y++ {
			if pathfind.OctileDistance(c, pathfind.Point{X: x, Y: y}) <= limit {
				m.mark(x, y, s)
			}
		}
	}
}

func (m *Map) castRays(t Terrain, u Unit, s Status) {
	c := u.Position.Round()
	ceiling := maxVisibleHeight(t.HeightAt(c.X, c.Y))

	rays := int(2 * math.Pi * u.SightRange)
	steps := int(u.SightRange)
	for i := 0; i < rays; i++ {
		angle := float64(i) / float64(rays) * 2 * math.Pi
		vx, vy := math.Sin(angle), math.Cos(angle)

		for step := 0; step < steps; step++ {
			x := int(math.Floor(u.Position.X + vx*float64(step)))
			y := int(math.Floor(u.Position.Y + vy*float64(step)))
			if x < 0 || y < 0 || x >= m.width || y >= m.height {
				break
			}
			if !t.Walkable(x, y) || t.HeightAt(x, y) > ceiling {
				break
			}
			m.mark(x, y, s)
		}
	}
}

// maxVisibleHeight is the highest terrain a ground unit standing at height
// h can see.
func maxVisibleHeight(h int) int {
	ceiling := h/heightBand*heightBand + heightBand - 1
	if h%heightBand >= heightHalfBand {
		ceiling += heightBand
	}
	return ceiling
}
