package pathfind

import (
	"fmt"
	"slices"
)

// Grid is a rectangular cost map together with the query engine that runs
// over it. Cell value 0 is blocked; any positive value is traversable and,
// for influence-aware searches, is the per-step cost multiplier.
//
// Cells are stored x-major: index = x*height + y.
//
// A Grid is not safe for concurrent mutation. Read-only queries may run
// concurrently as long as no mutating method is called.
type Grid struct {
	width, height int

	cells    []int
	original []int

	normalInfluence int
	autoCorrect     bool

	angleWeight     float64
	lowInsideRadius float64
}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithAutoCorrect enables nearest-free correction of blocked endpoints.
func WithAutoCorrect(on bool) Option {
	return func(g *Grid) { g.autoCorrect = on }
}

// WithAngleWeight sets the bearing penalty weight used by FindLowInsideWalk.
func WithAngleWeight(w float64) Option {
	return func(g *Grid) { g.angleWeight = w }
}

// WithLowInsideRadius sets the walk radius around the start used by
// FindLowInsideWalk.
func WithLowInsideRadius(r float64) Option {
	return func(g *Grid) { g.lowInsideRadius = r }
}

// NewGrid builds a grid from columns: cells[x][y]. The input is copied; the
// copy is also kept as the snapshot restored by Reset.
func NewGrid(cells [][]int, opts ...Option) (*Grid, error) {
	width, height, err := validate(cells)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		width:           width,
		height:          height,
		cells:           make([]int, width*height),
		normalInfluence: DefaultNormalInfluence,
		autoCorrect:     true,
		angleWeight:     DefaultAngleWeight,
		lowInsideRadius: DefaultLowInsideRadius,
	}
	for x, col := range cells {
		copy(g.cells[x*height:(x+1)*height], col)
	}
	g.original = slices.Clone(g.cells)

	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func validate(cells [][]int) (int, int, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	height := len(cells[0])
	for x, col := range cells {
		if len(col) != height {
			return 0, 0, fmt.Errorf("%w: column %d has %d cells, want %d", ErrNonRectangular, x, len(col), height)
		}
		for y, v := range col {
			if v < 0 {
				return 0, 0, fmt.Errorf("%w: (%d, %d) = %d", ErrNegativeCost, x, y, v)
			}
		}
	}
	return len(cells), height, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the whole grid as a rectangle.
func (g *Grid) Bounds() Rect { return Rect{XEnd: g.width, YEnd: g.height} }

// NormalInfluence returns the baseline cost of a traversable cell.
func (g *Grid) NormalInfluence() int { return g.normalInfluence }

// AutoCorrect reports whether blocked endpoints are moved to a nearby free cell.
func (g *Grid) AutoCorrect() bool { return g.autoCorrect }

// SetAutoCorrect toggles endpoint correction.
func (g *Grid) SetAutoCorrect(on bool) { g.autoCorrect = on }

// InBounds reports whether p is a cell of the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g *Grid) check(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
	}
	return nil
}

func (g *Grid) index(x, y int) int { return x*g.height + y }

func (g *Grid) at(x, y int) int { return g.cells[x*g.height+y] }

func (g *Grid) set(x, y, v int) { g.cells[x*g.height+y] = v }

// Cost returns the value of cell p.
func (g *Grid) Cost(p Point) (int, error) {
	if err := g.check(p); err != nil {
		return 0, err
	}
	return g.at(p.X, p.Y), nil
}

// Passable reports whether p is inside the grid and traversable.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.at(p.X, p.Y) > 0
}

// Map returns a copy of the current cells as columns: result[x][y].
func (g *Grid) Map() [][]int {
	out := make([][]int, g.width)
	for x := range out {
		out[x] = slices.Clone(g.cells[x*g.height : (x+1)*g.height])
	}
	return out
}

// SetMap replaces the current cells without touching the Reset snapshot.
func (g *Grid) SetMap(cells [][]int) error {
	width, height, err := validate(cells)
	if err != nil {
		return err
	}
	if width != g.width || height != g.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShapeMismatch, width, height, g.width, g.height)
	}
	for x, col := range cells {
		copy(g.cells[x*height:(x+1)*height], col)
	}
	return nil
}

// Reset restores the cells captured at construction and the default
// normal influence.
func (g *Grid) Reset() {
	copy(g.cells, g.original)
	g.normalInfluence = DefaultNormalInfluence
}

// Clone returns an independent copy of the grid, snapshot included.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = slices.Clone(g.cells)
	c.original = slices.Clone(g.original)
	return &c
}
