package pathfind

import "math"

// Heuristic selects the A* distance estimate.
type Heuristic uint8

const (
	Manhattan Heuristic = iota
	Octile
	Euclidean
)

// HeuristicFromCode maps the integer selector used by callers:
// 0 is Manhattan, 1 is Octile, anything else is Euclidean.
func HeuristicFromCode(code int) Heuristic {
	switch code {
	case 0:
		return Manhattan
	case 1:
		return Octile
	default:
		return Euclidean
	}
}

func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Octile:
		return "octile"
	default:
		return "euclidean"
	}
}

// Distance returns the fixed-point estimate between a and b.
func (h Heuristic) Distance(a, b Point) int {
	switch h {
	case Manhattan:
		return ManhattanDistance(a, b)
	case Octile:
		return OctileDistance(a, b)
	default:
		return EuclideanDistance(a, b)
	}
}

// ManhattanDistance is (|dx|+|dy|)*Mult. It overestimates diagonal moves.
func ManhattanDistance(a, b Point) int {
	return (absInt(a.X-b.X) + absInt(a.Y-b.Y)) * Mult
}

// OctileDistance is the exact cost of an unobstructed 8-way walk.
func OctileDistance(a, b Point) int {
	dx := absInt(a.X - b.X)
	dy := absInt(a.Y - b.Y)
	if dx > dy {
		return Mult*dx + DiagonalMinusCardinal*dy
	}
	return Mult*dy + DiagonalMinusCardinal*dx
}

// EuclideanDistance is the straight-line distance times Mult, truncated.
func EuclideanDistance(a, b Point) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Sqrt(dx*dx+dy*dy) * MultF)
}

// Distance returns the straight-line distance between two positions.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
