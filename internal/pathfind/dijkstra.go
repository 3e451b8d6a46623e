package pathfind

import (
	"container/heap"
	"math"
)

// Destination is a reachable cell and its walk distance from the query start.
type Destination struct {
	Point    Point
	Distance float64
}

// FindDestinationsIn returns every cell reachable from start within the
// given walk distance, in order of increasing distance. The start cell
// itself is not included. Start is used as given, without correction.
func (g *Grid) FindDestinationsIn(start Point, distance float64) ([]Destination, error) {
	return g.Reachable(start, Walk(), distance)
}

// FindAllDestinations is FindDestinationsIn without a cutoff.
func (g *Grid) FindAllDestinations(start Point) ([]Destination, error) {
	return g.Reachable(start, Walk(), math.Inf(1))
}

// Djiktra is FindDestinationsIn from a real-valued position.
func (g *Grid) Djiktra(start Vec2, distance float64) ([]Destination, error) {
	return g.Reachable(start.Floor(), Walk(), distance)
}

// InvertDjiktra walks the blocked cells of the grid instead of the open ones.
func (g *Grid) InvertDjiktra(start Vec2, distance float64) ([]Destination, error) {
	return g.Reachable(start.Floor(), Inverted(), distance)
}

// Reachable runs a bounded Dijkstra with the given movement policy. The
// search stops once the cheapest open node lies beyond distance.
func (g *Grid) Reachable(start Point, mv Movement, distance float64) ([]Destination, error) {
	if err := g.check(start); err != nil {
		return nil, err
	}
	return g.dijkstra(start, mv, cutoff(distance)), nil
}

func cutoff(distance float64) int {
	if math.IsInf(distance, 1) || distance*MultF >= math.MaxInt/2 {
		return math.MaxInt
	}
	if distance < 0 {
		return -1
	}
	return int(distance * MultF)
}

// dijkstra returns settled cells with g <= limit, excluding start. Costs
// are kept in a map sized to the cutoff, so a short search on a large grid
// touches only the cells it reaches.
func (g *Grid) dijkstra(start Point, mv Movement, limit int) []Destination {
	best := make(map[int]int, reachHint(limit, g.width*g.height))
	best[g.index(start.X, start.Y)] = 0

	open := &nodeHeap{}
	heap.Push(open, &searchNode{p: start})

	var out []Destination
	win := g.Bounds()
	steps := make([]Step, 0, 8)
	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		if cur.g > limit {
			break
		}
		if cur.g > best[g.index(cur.p.X, cur.p.Y)] {
			continue
		}
		if cur.p != start {
			out = append(out, Destination{Point: cur.p, Distance: float64(cur.g) / MultF})
		}

		steps = mv.Successors(g, cur.p, win, steps[:0])
		for _, s := range steps {
			ni := g.index(s.To.X, s.To.Y)
			ng := cur.g + s.Cost
			if ng > limit {
				continue
			}
			if old, ok := best[ni]; ok && ng >= old {
				continue
			}
			best[ni] = ng
			heap.Push(open, &searchNode{p: s.To, g: ng, f: ng})
		}
	}
	return out
}

// reachHint is the number of cells inside an octile radius of limit,
// capped at the grid size.
func reachHint(limit, cells int) int {
	if limit == math.MaxInt {
		return cells
	}
	r := limit/Mult + 1
	if r > cells {
		return cells
	}
	return min(cells, (2*r+1)*(2*r+1))
}
