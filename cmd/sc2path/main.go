package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/udisondev/sc2pathlib/internal/config"
	"github.com/udisondev/sc2pathlib/internal/mapdata"
	"github.com/udisondev/sc2pathlib/internal/pathfind"
	"github.com/udisondev/sc2pathlib/internal/terrain"
	"github.com/udisondev/sc2pathlib/internal/vision"
)

const ConfigPath = "config/sc2path.yaml"

var errUsage = errors.New("usage")

type options struct {
	configPath string
	mapDir     string
	name       string
	path       string
	bases      string
	sight      string
	view       string
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "engine tuning file (default "+ConfigPath+" or $SC2PATH_CONFIG)")
	flag.StringVar(&opts.mapDir, "map", "", "map directory holding "+mapdata.ManifestFile)
	flag.StringVar(&opts.name, "name", "", "map subdirectory inside -map")
	flag.StringVar(&opts.path, "path", "", "ground path query x1,y1:x2,y2")
	flag.StringVar(&opts.bases, "bases", "", "zone base locations x,y;x,y")
	flag.StringVar(&opts.sight, "sight", "", "ground units for the vision view x,y,range;x,y,range")
	flag.StringVar(&opts.view, "view", "", "render climbs, chokes, zones or vision")
	flag.Parse()

	if err := run(ctx, opts); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if opts.mapDir == "" {
		return fmt.Errorf("%w: -map is required", errUsage)
	}

	cfgPath := ConfigPath
	if p := os.Getenv("SC2PATH_CONFIG"); p != "" {
		cfgPath = p
	}
	if opts.configPath != "" {
		cfgPath = opts.configPath
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dir := opts.mapDir
	if opts.name != "" {
		dir = filepath.Join(dir, opts.name)
	}
	m, err := mapdata.Load(ctx, dir, cfg)
	if err != nil {
		return err
	}
	slog.Info("terrain",
		"borders", len(m.Borders()),
		"chokes", len(m.Chokes()),
		"overlord_spots", len(m.OverlordSpots()))

	if opts.bases != "" {
		bases, err := parseBases(opts.bases)
		if err != nil {
			return err
		}
		if err := m.CalculateZones(bases); err != nil {
			return fmt.Errorf("calculating zones: %w", err)
		}
	}

	if opts.path != "" {
		start, end, err := parsePath(opts.path)
		if err != nil {
			return err
		}
		p, err := m.FindPath(terrain.Ground, start, end, pathfind.Octile)
		if err != nil {
			return fmt.Errorf("finding path: %w", err)
		}
		if !p.Found() {
			slog.Info("no path", "from", start, "to", end)
		} else {
			slog.Info("path", "from", start, "to", end, "distance", p.Distance, "cells", len(p.Cells))
		}
	}

	vm := vision.New(m.Width(), m.Height())
	if opts.sight != "" {
		units, err := parseUnits(opts.sight)
		if err != nil {
			return err
		}
		for _, u := range units {
			vm.AddUnit(u)
		}
		if err := vm.Calculate(m); err != nil {
			return fmt.Errorf("calculating vision: %w", err)
		}
		slog.Info("vision", "units", vm.Units())
	}

	if opts.view == "" {
		return nil
	}
	v, err := parseView(opts.view)
	if err != nil {
		return err
	}
	grid := vm.Draw()
	if v.draw != nil {
		grid = v.draw(m)
	}
	return render(ctx, grid, v)
}

func parseVec(s string) (pathfind.Vec2, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return pathfind.Vec2{}, fmt.Errorf("%w: bad position %q", errUsage, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return pathfind.Vec2{}, fmt.Errorf("%w: bad x in %q", errUsage, s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return pathfind.Vec2{}, fmt.Errorf("%w: bad y in %q", errUsage, s)
	}
	return pathfind.Vec2{X: x, Y: y}, nil
}

func parsePath(s string) (start, end pathfind.Vec2, err error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return start, end, fmt.Errorf("%w: -path wants x1,y1:x2,y2, got %q", errUsage, s)
	}
	if start, err = parseVec(from); err != nil {
		return start, end, err
	}
	end, err = parseVec(to)
	return start, end, err
}

func parseBases(s string) ([]pathfind.Vec2, error) {
	var out []pathfind.Vec2
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := parseVec(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseUnits reads ground units as x,y,range triples.
func parseUnits(s string) ([]vision.Unit, error) {
	var out []vision.Unit
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := strings.LastIndex(part, ",")
		if i < 0 {
			return nil, fmt.Errorf("%w: bad unit %q", errUsage, part)
		}
		pos, err := parseVec(part[:i])
		if err != nil {
			return nil, err
		}
		r, err := strconv.ParseFloat(strings.TrimSpace(part[i+1:]), 64)
		if err != nil || r <= 0 {
			return nil, fmt.Errorf("%w: bad sight range in %q", errUsage, part)
		}
		out = append(out, vision.Unit{Position: pos, SightRange: r})
	}
	return out, nil
}
