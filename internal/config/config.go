package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a tuning value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Engine holds the tuning constants of terrain analysis and the query engine.
type Engine struct {
	// Endpoint correction
	AutoCorrect bool `yaml:"auto_correct"`

	// Chokepoint detection
	ChokeDistance        float64 `yaml:"choke_distance"`         // max length of a choke line
	ChokeBorderDistance  float64 `yaml:"choke_border_distance"`  // border walk that makes two borders "same side"
	ChokeMinLines        int     `yaml:"choke_min_lines"`        // smaller clusters are noise
	ChokeLengthTolerance float64 `yaml:"choke_length_tolerance"` // lines longer than min*tolerance are pruned

	// Zones and connectivity
	ZoneRadius          float64 `yaml:"zone_radius"`
	ZoneHeightTolerance int     `yaml:"zone_height_tolerance"`
	ConnectionDistance  float64 `yaml:"connection_distance"`

	// FindLowInsideWalk
	LowInsideAngleWeight float64 `yaml:"low_inside_angle_weight"`
	LowInsideWalkRadius  float64 `yaml:"low_inside_walk_radius"`
}

// DefaultEngine returns the tuning used for SC2 ladder maps.
func DefaultEngine() Engine {
	return Engine{
		AutoCorrect:          true,
		ChokeDistance:        13,
		ChokeBorderDistance:  30,
		ChokeMinLines:        3,
		ChokeLengthTolerance: 1.5,
		ZoneRadius:           30,
		ZoneHeightTolerance:  16,
		ConnectionDistance:   400,
		LowInsideAngleWeight: 0.25,
		LowInsideWalkRadius:  5,
	}
}

// Validate checks that every value is usable.
func (e Engine) Validate() error {
	switch {
	case e.ChokeDistance < 2:
		return fmt.Errorf("%w: choke_distance %v < 2", ErrInvalid, e.ChokeDistance)
	case e.ChokeBorderDistance < 0:
		return fmt.Errorf("%w: choke_border_distance %v < 0", ErrInvalid, e.ChokeBorderDistance)
	case e.ChokeMinLines < 1:
		return fmt.Errorf("%w: choke_min_lines %d < 1", ErrInvalid, e.ChokeMinLines)
	case e.ChokeLengthTolerance < 1:
		return fmt.Errorf("%w: choke_length_tolerance %v < 1", ErrInvalid, e.ChokeLengthTolerance)
	case e.ZoneRadius <= 0:
		return fmt.Errorf("%w: zone_radius %v <= 0", ErrInvalid, e.ZoneRadius)
	case e.ZoneHeightTolerance < 0:
		return fmt.Errorf("%w: zone_height_tolerance %d < 0", ErrInvalid, e.ZoneHeightTolerance)
	case e.ConnectionDistance <= 0:
		return fmt.Errorf("%w: connection_distance %v <= 0", ErrInvalid, e.ConnectionDistance)
	case e.LowInsideAngleWeight < 0:
		return fmt.Errorf("%w: low_inside_angle_weight %v < 0", ErrInvalid, e.LowInsideAngleWeight)
	case e.LowInsideWalkRadius < 0:
		return fmt.Errorf("%w: low_inside_walk_radius %v < 0", ErrInvalid, e.LowInsideWalkRadius)
	}
	return nil
}

// LoadEngine loads engine tuning from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
