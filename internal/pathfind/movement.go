package pathfind

// Step is a successor cell together with the fixed-point cost of reaching it.
type Step struct {
	To   Point
	Cost int
}

// Movement decides which neighbours a searcher may step to, what each step
// costs and how far the goal is estimated to be.
type Movement interface {
	// Successors appends the legal moves out of p, restricted to win, to out.
	Successors(g *Grid, p Point, win Rect, out []Step) []Step
	// Estimate returns a fixed-point estimate of the remaining cost.
	Estimate(h Heuristic, from, to Point) int
}

// Footprint is the size of the moving agent.
type Footprint uint8

const (
	// Small agents occupy one cell and may not cut blocked corners.
	Small Footprint = iota
	// Large agents additionally need a free 2x2 block for every cardinal move.
	Large
)

// CostModel selects how a cell value is turned into a step cost.
type CostModel uint8

const (
	// UnitCost treats every positive cell as cost 1.
	UnitCost CostModel = iota
	// CellCost multiplies the step length by the target cell's value.
	CellCost
	// InvertedCost treats zero cells as traversable at cost 1.
	InvertedCost
)

// Policy is the stock Movement implementation.
type Policy struct {
	Footprint Footprint
	Costs     CostModel
	// Scale multiplies the heuristic; it should equal the grid's normal
	// influence for CellCost so the estimate stays comparable to the costs.
	Scale int
}

// Walk is a one-cell agent on unit costs.
func Walk() Policy { return Policy{Footprint: Small, Costs: UnitCost, Scale: 1} }

// WalkLarge is a 2x2 agent on unit costs.
func WalkLarge() Policy { return Policy{Footprint: Large, Costs: UnitCost, Scale: 1} }

// Weighted is a one-cell agent paying the cell value per step.
func Weighted(scale int) Policy {
	return Policy{Footprint: Small, Costs: CellCost, Scale: max(1, scale)}
}

// WeightedLarge is a 2x2 agent paying the cell value per step.
func WeightedLarge(scale int) Policy {
	return Policy{Footprint: Large, Costs: CellCost, Scale: max(1, scale)}
}

// Inverted walks the blocked cells of the grid on unit costs.
func Inverted() Policy { return Policy{Footprint: Small, Costs: InvertedCost, Scale: 1} }

// weight returns the cost multiplier of cell (x, y), or 0 when the cell may
// not be entered.
func (m Policy) weight(g *Grid, x, y int, win Rect) int {
	if !win.Contains(Point{X: x, Y: y}) {
		return 0
	}
	v := g.at(x, y)
	switch m.Costs {
	case CellCost:
		return v
	case InvertedCost:
		if v == 0 {
			return 1
		}
		return 0
	default:
		if v > 0 {
			return 1
		}
		return 0
	}
}

// Successors implements Movement. A diagonal needs both adjacent cardinals
// free. For Large agents a cardinal also needs one of its flanking
// diagonals to be legal.
func (m Policy) Successors(g *Grid, p Point, win Rect, out []Step) []Step {
	x, y := p.X, p.Y

	left := m.weight(g, x-1, y, win)
	right := m.weight(g, x+1, y, win)
	down := m.weight(g, x, y-1, win)
	up := m.weight(g, x, y+1, win)

	var leftUp, rightUp, leftDown, rightDown int
	if left > 0 && up > 0 {
		leftUp = m.weight(g, x-1, y+1, win)
	}
	if right > 0 && up > 0 {
		rightUp = m.weight(g, x+1, y+1, win)
	}
	if left > 0 && down > 0 {
		leftDown = m.weight(g, x-1, y-1, win)
	}
	if right > 0 && down > 0 {
		rightDown = m.weight(g, x+1, y-1, win)
	}

	large := m.Footprint == Large
	if left > 0 && (!large || leftUp > 0 || leftDown > 0) {
		out = append(out, Step{To: Point{X: x - 1, Y: y}, Cost: left * Mult})
	}
	if right > 0 && (!large || rightUp > 0 || rightDown > 0) {
		out = append(out, Step{To: Point{X: x + 1, Y: y}, Cost: right * Mult})
	}
	if down > 0 && (!large || leftDown > 0 || rightDown > 0) {
		out = append(out, Step{To: Point{X: x, Y: y - 1}, Cost: down * Mult})
	}
	if up > 0 && (!large || leftUp > 0 || rightUp > 0) {
		out = append(out, Step{To: Point{X: x, Y: y + 1}, Cost: up * Mult})
	}

	if leftUp > 0 {
		out = append(out, Step{To: Point{X: x - 1, Y: y + 1}, Cost: leftUp * Sqrt2})
	}
	if rightUp > 0 {
		out = append(out, Step{To: Point{X: x + 1, Y: y + 1}, Cost: rightUp * Sqrt2})
	}
	if leftDown > 0 {
		out = append(out, Step{To: Point{X: x - 1, Y: y - 1}, Cost: leftDown * Sqrt2})
	}
	if rightDown > 0 {
		out = append(out, Step{To: Point{X: x + 1, Y: y - 1}, Cost: rightDown * Sqrt2})
	}
	return out
}

// Estimate implements Movement.
func (m Policy) Estimate(h Heuristic, from, to Point) int {
	if m.Costs == CellCost {
		return h.Distance(from, to) * m.Scale
	}
	return h.Distance(from, to)
}
