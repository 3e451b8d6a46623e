package pathfind

import (
	"container/heap"
	"math"
	"slices"
)

// Path is the result of a path query. A path that was not found has no
// cells and zero distance.
type Path struct {
	Cells    []Point
	Distance float64
}

// Found reports whether the query produced a path.
func (p Path) Found() bool { return len(p.Cells) > 0 }

// FindPath returns the shortest one-cell-agent path on unit costs.
func (g *Grid) FindPath(start, end Point, h Heuristic) (Path, error) {
	return g.Search(start, end, Walk(), h)
}

// FindPathLarge returns the shortest path for a 2x2 agent.
func (g *Grid) FindPathLarge(start, end Point, h Heuristic) (Path, error) {
	return g.Search(start, end, WalkLarge(), h)
}

// FindPathInfluence returns the cheapest path when every step pays the
// value of the cell it enters.
func (g *Grid) FindPathInfluence(start, end Point, h Heuristic) (Path, error) {
	return g.Search(start, end, Weighted(g.normalInfluence), h)
}

// FindPathInfluenceLarge is FindPathInfluence for a 2x2 agent.
func (g *Grid) FindPathInfluenceLarge(start, end Point, h Heuristic) (Path, error) {
	return g.Search(start, end, WeightedLarge(g.normalInfluence), h)
}

// FindPathCloserThan stops as soon as a cell within distance of end is
// reached.
func (g *Grid) FindPathCloserThan(start, end Point, h Heuristic, distance float64) (Path, error) {
	return g.SearchCloserThan(start, end, Walk(), h, distance)
}

// FindPathLargeCloserThan is FindPathCloserThan for a 2x2 agent.
func (g *Grid) FindPathLargeCloserThan(start, end Point, h Heuristic, distance float64) (Path, error) {
	return g.SearchCloserThan(start, end, WalkLarge(), h, distance)
}

// FindPathInfluenceCloserThan is FindPathCloserThan on influence costs.
func (g *Grid) FindPathInfluenceCloserThan(start, end Point, h Heuristic, distance float64) (Path, error) {
	return g.SearchCloserThan(start, end, Weighted(g.normalInfluence), h, distance)
}

// FindPathInfluenceLargeCloserThan is FindPathCloserThan on influence costs
// for a 2x2 agent.
func (g *Grid) FindPathInfluenceLargeCloserThan(start, end Point, h Heuristic, distance float64) (Path, error) {
	return g.SearchCloserThan(start, end, WeightedLarge(g.normalInfluence), h, distance)
}

// Search runs A* from start to end with the given movement policy. Blocked
// endpoints are corrected to the nearest free cell when auto-correct is on.
// An unreachable goal is not an error: the returned Path is empty.
func (g *Grid) Search(start, end Point, mv Movement, h Heuristic) (Path, error) {
	s, e, err := g.endpoints(start, end)
	if err != nil {
		return Path{}, err
	}
	reached := func(p Point) bool { return p == e }
	return g.astar(s, e, mv, h, reached), nil
}

// SearchCloserThan is Search with a relaxed goal: any cell whose heuristic
// distance to end is below distance terminates the search.
func (g *Grid) SearchCloserThan(start, end Point, mv Movement, h Heuristic, distance float64) (Path, error) {
	s, e, err := g.endpoints(start, end)
	if err != nil {
		return Path{}, err
	}
	limit := int(distance * MultF)
	reached := func(p Point) bool { return h.Distance(p, e) < limit }
	return g.astar(s, e, mv, h, reached), nil
}

func (g *Grid) endpoints(start, end Point) (Point, Point, error) {
	if err := g.check(start); err != nil {
		return Point{}, Point{}, err
	}
	if err := g.check(end); err != nil {
		return Point{}, Point{}, err
	}
	return g.closestPathable(start), g.closestPathable(end), nil
}

// searchNode is an open-list entry. Entries are never updated in place;
// a better g for the same cell pushes a new entry and the stale one is
// skipped on pop. Expanded cells are reopened when a cheaper g turns up,
// which happens with the Manhattan heuristic. prev links the entry that
// produced this one, so a path always adds up to its g.
type searchNode struct {
	p     Point
	g     int
	f     int
	index int
	prev  *searchNode
}

// nodeHeap implements container/heap, ordered by f and then by coordinate
// so that equal-cost frontiers expand deterministically.
type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.p.X != b.p.X {
		return a.p.X < b.p.X
	}
	return a.p.Y < b.p.Y
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)   { n := x.(*searchNode); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}

// astar expands from start until reached accepts a popped cell. The
// heuristic always aims at goal, even for relaxed goals.
func (g *Grid) astar(start, goal Point, mv Movement, h Heuristic, reached func(Point) bool) Path {
	n := g.width * g.height
	best := make([]int, n)
	for i := range best {
		best[i] = math.MaxInt
	}

	win := g.Bounds()
	best[g.index(start.X, start.Y)] = 0

	open := &nodeHeap{}
	heap.Push(open, &searchNode{p: start, f: mv.Estimate(h, start, goal)})

	steps := make([]Step, 0, 8)
	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		idx := g.index(cur.p.X, cur.p.Y)
		if cur.g > best[idx] {
			continue
		}

		if reached(cur.p) {
			return Path{
				Cells:    reconstruct(cur),
				Distance: float64(cur.g) / MultF,
			}
		}

		steps = mv.Successors(g, cur.p, win, steps[:0])
		for _, s := range steps {
			ni := g.index(s.To.X, s.To.Y)
			ng := cur.g + s.Cost
			if ng >= best[ni] {
				continue
			}
			best[ni] = ng
			heap.Push(open, &searchNode{p: s.To, g: ng, f: ng + mv.Estimate(h, s.To, goal), prev: cur})
		}
	}
	return Path{}
}

func reconstruct(n *searchNode) []Point {
	cells := make([]Point, 0, 32)
	for ; n != nil; n = n.prev {
		cells = append(cells, n.p)
	}
	slices.Reverse(cells)
	return cells
}
