package terrain

// CliffLevel is the height difference of one cliff level in the raw height
// map. Rounding makes it exactly 16 on standard maps.
const CliffLevel = 16

// Cliff tags the walkable cells at either end of a climbable wall.
type Cliff uint8

const (
	CliffNone Cliff = iota
	CliffLow
	CliffHigh
	CliffBoth
)

func (c Cliff) String() string {
	switch c {
	case CliffLow:
		return "low"
	case CliffHigh:
		return "high"
	case CliffBoth:
		return "both"
	default:
		return "none"
	}
}

// withLow marks the low end of a wall, keeping any high mark.
func (c Cliff) withLow() Cliff {
	if c == CliffNone || c == CliffLow {
		return CliffLow
	}
	return CliffBoth
}

// withHigh marks the high end of a wall, keeping any low mark.
func (c Cliff) withHigh() Cliff {
	if c == CliffNone || c == CliffHigh {
		return CliffHigh
	}
	return CliffBoth
}

// MapPoint holds the per-cell features derived during analysis.
type MapPoint struct {
	Height    int
	Walkable  bool
	Pathable  bool
	Climbable bool
	Cliff     Cliff

	IsBorder     bool
	IsChoke      bool
	OverlordSpot bool

	// ZoneIndex is 1-based; 0 means no zone.
	ZoneIndex int
	Connected bool
}
