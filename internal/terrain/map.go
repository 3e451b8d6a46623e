package terrain

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/sc2pathlib/internal/config"
	"github.com/udisondev/sc2pathlib/internal/pathfind"
)

// Area is the playable rectangle of a map, inclusive on both ends.
type Area struct {
	XStart, YStart int
	XEnd, YEnd     int
}

// Map is an analysed game map: four cost grids and the per-cell features
// derived from the raw pathing, placement and height layers.
//
// Like pathfind.Grid, a Map has a single owner; callers must serialize
// mutation.
type Map struct {
	width, height int
	area          Area
	cfg           config.Engine

	points []MapPoint // x-major, like pathfind.Grid

	ground   *pathfind.Grid
	air      *pathfind.Grid
	colossus *pathfind.Grid
	reaper   *pathfind.Grid

	overlordSpots []pathfind.Vec2
	chokes        []Choke

	influenceColossus bool
	influenceReaper   bool
}

// New analyses a map with the default tuning. Layers are columns:
// layer[x][y].
func New(pathing, placement, heights [][]int, area Area) (*Map, error) {
	return NewWithConfig(pathing, placement, heights, area, config.DefaultEngine())
}

// NewWithConfig analyses a map with explicit tuning.
func NewWithConfig(pathing, placement, heights [][]int, area Area, cfg config.Engine) (*Map, error) {
	started := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	width, height, err := layerSize(pathing, placement, heights)
	if err != nil {
		return nil, err
	}
	if area.XStart < 0 || area.YStart < 0 || area.XStart >= area.XEnd || area.YStart >= area.YEnd ||
		area.XEnd >= width || area.YEnd >= height {
		return nil, fmt.Errorf("%w: (%d, %d)-(%d, %d) on %dx%d", ErrInvalidArea,
			area.XStart, area.YStart, area.XEnd, area.YEnd, width, height)
	}

	m := &Map{
		width:  width,
		height: height,
		area:   area,
		cfg:    cfg,
		points: make([]MapPoint, width*height),
	}

	b := m.classify(pathing, placement, heights)
	m.detectFeatures(b)

	border, err := pathfind.NewGrid(b.border)
	if err != nil {
		return nil, fmt.Errorf("building border grid: %w", err)
	}
	m.resolveClimbs(b)
	lines := m.findChokeLines(border)
	m.resolveCliffs()
	m.resolveOverlordSpots()
	m.chokes = m.groupChokes(lines)

	opts := []pathfind.Option{
		pathfind.WithAutoCorrect(cfg.AutoCorrect),
		pathfind.WithAngleWeight(cfg.LowInsideAngleWeight),
		pathfind.WithLowInsideRadius(cfg.LowInsideWalkRadius),
	}
	grids := []struct {
		dst   **pathfind.Grid
		cells [][]int
		name  string
	}{
		{&m.ground, b.walk, "ground"},
		{&m.air, b.fly, "air"},
		{&m.colossus, b.reaper, "colossus"},
		{&m.reaper, b.reaper, "reaper"},
	}
	for _, g := range grids {
		grid, err := pathfind.NewGrid(g.cells, opts...)
		if err != nil {
			return nil, fmt.Errorf("building %s grid: %w", g.name, err)
		}
		*g.dst = grid
	}

	slog.Info("terrain analysed",
		"width", width,
		"height", height,
		"borders", len(m.Borders()),
		"choke_lines", len(lines),
		"chokes", len(m.chokes),
		"overlord_spots", len(m.overlordSpots),
		"elapsed", time.Since(started))

	return m, nil
}

func layerSize(layers ...[][]int) (int, int, error) {
	if len(layers[0]) == 0 || len(layers[0][0]) == 0 {
		return 0, 0, pathfind.ErrEmptyGrid
	}
	width, height := len(layers[0]), len(layers[0][0])
	for i, layer := range layers {
		if len(layer) != width {
			return 0, 0, fmt.Errorf("%w: layer %d has %d columns, want %d", ErrShapeMismatch, i, len(layer), width)
		}
		for x, col := range layer {
			if len(col) != height {
				return 0, 0, fmt.Errorf("%w: layer %d column %d has %d cells, want %d",
					ErrShapeMismatch, i, x, len(col), height)
			}
		}
	}
	return width, height, nil
}

// builder holds the raw cost layers while the passes run.
type builder struct {
	walk   [][]int
	fly    [][]int
	reaper [][]int
	border [][]int
}

func newLayer(width, height int) [][]int {
	l := make([][]int, width)
	for x := range l {
		l[x] = make([]int, height)
	}
	return l
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m *Map) at(x, y int) *MapPoint { return &m.points[x*m.height+y] }

// walkableAt is false outside the grid.
func (m *Map) walkableAt(x, y int) bool {
	return m.inBounds(x, y) && m.at(x, y).Walkable
}

// classify sets walkable, pathable and height, and seeds the cost layers.
func (m *Map) classify(pathing, placement, heights [][]int) *builder {
	b := &builder{
		walk:   newLayer(m.width, m.height),
		fly:    newLayer(m.width, m.height),
		reaper: newLayer(m.width, m.height),
		border: newLayer(m.width, m.height),
	}
	a := m.area
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			p := m.at(x, y)
			p.Walkable = pathing[x][y] > 0 || placement[x][y] > 0
			p.Pathable = a.XStart <= x && x <= a.XEnd && a.YStart <= y && y <= a.YEnd
			p.Height = heights[x][y]

			if p.Pathable {
				b.fly[x][y] = 1
			}
			if p.Walkable {
				b.walk[x][y] = 1
				b.reaper[x][y] = 1
			}
			if x == a.XStart-1 || x == a.XEnd || y == a.YStart-1 || y == a.YEnd {
				b.border[x][y] = 1
			}
		}
	}
	return b
}

var climbDirs = [...]pathfind.Point{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}}

var orthogonal = [...]pathfind.Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

var around = [...]pathfind.Point{
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 0}, {X: -1, Y: 0},
	{X: 1, Y: -1}, {X: -1, Y: -1}, {X: 0, Y: 1}, {X: 0, Y: -1},
}

// detectFeatures marks borders, overlord seeds and climbable walls.
func (m *Map) detectFeatures(b *builder) {
	a := m.area
	for x := a.XStart; x < a.XEnd; x++ {
		for y := a.YStart; y < a.YEnd; y++ {
			p := m.at(x, y)
			if p.Walkable {
				for _, d := range climbDirs {
					m.modifyClimb(x, y, d.X, d.Y)
				}
				continue
			}

			for _, d := range orthogonal {
				nx, ny := x+d.X, y+d.Y
				if !m.inBounds(nx, ny) {
					continue
				}
				if h := m.at(nx, ny).Height; h > 0 && p.Height >= h+CliffLevel {
					p.OverlordSpot = true
					break
				}
			}

			for _, d := range around {
				if m.walkableAt(x+d.X, y+d.Y) {
					p.IsBorder = true
					b.border[x][y] = 1
					break
				}
			}
		}
	}
}

// resolveClimbs keeps only climbable cells with a climbable 4-neighbour and
// opens them on the reaper layer.
func (m *Map) resolveClimbs(b *builder) {
	a := m.area
	for x := a.XStart; x < a.XEnd; x++ {
		for y := a.YStart; y < a.YEnd; y++ {
			p := m.at(x, y)
			if !p.Climbable {
				continue
			}
			p.Climbable = false
			for _, d := range orthogonal {
				nx, ny := x+d.X, y+d.Y
				if m.inBounds(nx, ny) && m.at(nx, ny).Climbable {
					p.Climbable = true
					break
				}
			}
			if p.Climbable {
				b.reaper[x][y] = 1
			}
		}
	}
}

// resolveCliffs drops cliff tags that no 4-neighbour shares.
func (m *Map) resolveCliffs() {
	a := m.area
	for x := a.XStart; x < a.XEnd; x++ {
		for y := a.YStart; y < a.YEnd; y++ {
			p := m.at(x, y)
			if p.Cliff == CliffNone {
				continue
			}
			shared := false
			for _, d := range orthogonal {
				nx, ny := x+d.X, y+d.Y
				if m.inBounds(nx, ny) && m.at(nx, ny).Cliff == p.Cliff {
					shared = true
					break
				}
			}
			if !shared {
				p.Cliff = CliffNone
			}
		}
	}
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Area returns the playable rectangle.
func (m *Map) Area() Area { return m.area }

// Point returns the features of cell (x, y).
func (m *Map) Point(x, y int) (MapPoint, error) {
	if !m.inBounds(x, y) {
		return MapPoint{}, fmt.Errorf("%w: (%d, %d) outside %dx%d", pathfind.ErrOutOfBounds, x, y, m.width, m.height)
	}
	return *m.at(x, y), nil
}

// HeightAt returns the terrain height of (x, y), or 0 outside the map.
func (m *Map) HeightAt(x, y int) int {
	if !m.inBounds(x, y) {
		return 0
	}
	return m.at(x, y).Height
}

// Walkable reports whether (x, y) is ground-walkable terrain.
func (m *Map) Walkable(x, y int) bool { return m.walkableAt(x, y) }

// Borders returns every non-walkable cell touching walkable ground.
func (m *Map) Borders() []pathfind.Point {
	var out []pathfind.Point
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if m.at(x, y).IsBorder {
				out = append(out, pathfind.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// OverlordSpots returns the centroids of elevated blind spots.
func (m *Map) OverlordSpots() []pathfind.Vec2 { return m.overlordSpots }

// Chokes returns the detected chokepoints.
func (m *Map) Chokes() []Choke { return m.chokes }

// Grid returns the cost grid of the given type.
func (m *Map) Grid(t MapType) (*pathfind.Grid, error) {
	switch t {
	case Ground:
		return m.ground, nil
	case Reaper:
		return m.reaper, nil
	case Colossus:
		return m.colossus, nil
	case Air:
		return m.air, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMapType, uint8(t))
}

// Reset restores all four grids to their analysed state.
func (m *Map) Reset() {
	m.ground.Reset()
	m.air.Reset()
	m.colossus.Reset()
	m.reaper.Reset()
}

// CreateBlock blocks a w x h rectangle on every grid but air.
func (m *Map) CreateBlock(center pathfind.Vec2, w, h int) {
	for _, g := range m.surfaceGrids() {
		g.CreateBlock(center, w, h)
	}
}

// CreateBlocks blocks a w x h rectangle around each center on every grid but air.
func (m *Map) CreateBlocks(centers []pathfind.Vec2, w, h int) {
	for _, g := range m.surfaceGrids() {
		g.CreateBlocks(centers, w, h)
	}
}

// RemoveBlocks reopens w x h rectangles on every grid but air.
func (m *Map) RemoveBlocks(centers []pathfind.Vec2, w, h int) {
	for _, g := range m.surfaceGrids() {
		g.RemoveBlocks(centers, w, h)
	}
}

func (m *Map) surfaceGrids() []*pathfind.Grid {
	return []*pathfind.Grid{m.ground, m.colossus, m.reaper}
}
