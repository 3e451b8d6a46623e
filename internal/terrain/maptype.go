package terrain

import (
	"fmt"
	"strings"
)

// MapType selects one of the cost grids of a Map.
type MapType uint8

const (
	Ground MapType = iota
	Reaper
	Colossus
	Air
)

func (t MapType) String() string {
	switch t {
	case Ground:
		return "ground"
	case Reaper:
		return "reaper"
	case Colossus:
		return "colossus"
	case Air:
		return "air"
	default:
		return fmt.Sprintf("MapType(%d)", uint8(t))
	}
}

// ParseMapType maps a name such as "ground" to its MapType.
func ParseMapType(s string) (MapType, error) {
	switch strings.ToLower(s) {
	case "ground":
		return Ground, nil
	case "reaper":
		return Reaper, nil
	case "colossus":
		return Colossus, nil
	case "air":
		return Air, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMapType, s)
}

// InfluenceGroup selects the set of grids an influence update is applied to.
type InfluenceGroup uint8

const (
	// PureGround is the ground grid, plus reaper when enabled.
	PureGround InfluenceGroup = iota
	// GroundGroup is the ground grid, plus colossus and reaper when enabled.
	GroundGroup
	// AirGroup is the air grid, plus colossus when enabled.
	AirGroup
	// BothGroups is ground and air, plus colossus and reaper when enabled.
	BothGroups
)
