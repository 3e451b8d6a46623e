package mapdata

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/sc2pathlib/internal/config"
	"github.com/udisondev/sc2pathlib/internal/terrain"
)

// ManifestFile is the manifest name looked up by Load.
const ManifestFile = "map.yaml"

// Manifest names the layer files of a map and its playable area.
type Manifest struct {
	Name      string `yaml:"name"`
	Pathing   string `yaml:"pathing"`
	Placement string `yaml:"placement"`
	Height    string `yaml:"height"`
	Area      Area   `yaml:"area"`
}

// Area is the inclusive playable rectangle.
type Area struct {
	XStart int `yaml:"x_start"`
	YStart int `yaml:"y_start"`
	XEnd   int `yaml:"x_end"`
	YEnd   int `yaml:"y_end"`
}

// Layers are the raw grids of a map.
type Layers struct {
	Pathing   [][]int
	Placement [][]int
	Heights   [][]int
	Area      terrain.Area
}

// LoadManifest reads a manifest. Placement defaults to the pathing file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Pathing == "" || m.Height == "" {
		return Manifest{}, fmt.Errorf("manifest %s: pathing and height files are required", path)
	}
	if m.Placement == "" {
		m.Placement = m.Pathing
	}
	if m.Name == "" {
		m.Name = filepath.Base(filepath.Dir(path))
	}
	return m, nil
}

// LoadLayers reads the three layer files of m from dir concurrently.
func LoadLayers(ctx context.Context, dir string, m Manifest) (Layers, error) {
	l := Layers{Area: terrain.Area(m.Area)}

	g, gctx := errgroup.WithContext(ctx)
	for _, job := range []struct {
		file string
		dst  *[][]int
	}{
		{m.Pathing, &l.Pathing},
		{m.Placement, &l.Placement},
		{m.Height, &l.Heights},
	} {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cells, err := ReadGridFile(filepath.Join(dir, job.file))
			if err != nil {
				return err
			}
			*job.dst = cells
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Layers{}, fmt.Errorf("loading map %s: %w", m.Name, err)
	}
	return l, nil
}

// Load reads the manifest in dir, its layers, and analyses the terrain.
func Load(ctx context.Context, dir string, cfg config.Engine) (*terrain.Map, error) {
	m, err := LoadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	l, err := LoadLayers(ctx, dir, m)
	if err != nil {
		return nil, err
	}

	tm, err := terrain.NewWithConfig(l.Pathing, l.Placement, l.Heights, l.Area, cfg)
	if err != nil {
		return nil, fmt.Errorf("building map %s: %w", m.Name, err)
	}
	slog.Info("map loaded", "name", m.Name, "width", tm.Width(), "height", tm.Height(), "chokes", len(tm.Chokes()))
	return tm, nil
}
