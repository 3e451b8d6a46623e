package pathfind

// Fixed-point distance encoding. Every distance inside a search is an integer
// scaled by Mult; query results are divided by MultF on the way out.
const (
	Mult  = 10000
	MultF = 10000.0

	// Sqrt2 is the cost of one diagonal step.
	Sqrt2 = 14142

	// DiagonalMinusCardinal is Sqrt2 - Mult, used by the octile metric.
	DiagonalMinusCardinal = 4142
)

// Query defaults.
const (
	DefaultNormalInfluence = 1

	// DefaultAngleWeight scales the bearing penalty in FindLowInsideWalk:
	// score = influence * (1 + angleDistance*weight).
	DefaultAngleWeight = 0.25

	// DefaultLowInsideRadius is the walk radius around the start that
	// FindLowInsideWalk inspects once the target is close enough.
	DefaultLowInsideRadius = 5.0

	// lowInsideSlack is added to the query radius when deciding whether the
	// start is close enough to the target to search around the start.
	lowInsideSlack = 4.0
)
