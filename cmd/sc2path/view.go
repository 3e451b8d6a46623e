package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/sc2pathlib/internal/terrain"
)

// view is one diagnostic layer of the map. A nil draw renders the vision
// grid.
type view struct {
	name  string
	draw  func(*terrain.Map) [][]int
	glyph func(v int) (rune, tcell.Style)
}

func parseView(name string) (view, error) {
	switch name {
	case "climbs":
		return view{name: name, draw: (*terrain.Map).DrawClimbs, glyph: climbGlyph}, nil
	case "chokes":
		return view{name: name, draw: (*terrain.Map).DrawChokes, glyph: chokeGlyph}, nil
	case "zones":
		return view{name: name, draw: (*terrain.Map).DrawZones, glyph: zoneGlyph}, nil
	case "vision":
		return view{name: name, glyph: visionGlyph}, nil
	}
	return view{}, fmt.Errorf("%w: unknown view %q (climbs, chokes, zones, vision)", errUsage, name)
}

var blank = tcell.StyleDefault

func climbGlyph(v int) (rune, tcell.Style) {
	switch v {
	case 1:
		return '#', blank.Foreground(tcell.ColorYellow)
	case 2:
		return '.', blank.Foreground(tcell.ColorGray)
	case 3:
		return 'l', blank.Foreground(tcell.ColorGreen)
	case 4:
		return 'b', blank.Foreground(tcell.ColorPurple)
	case 5:
		return 'h', blank.Foreground(tcell.ColorBlue)
	case 6:
		return 'O', blank.Foreground(tcell.ColorRed)
	}
	return ' ', blank
}

func chokeGlyph(v int) (rune, tcell.Style) {
	switch v {
	case 255:
		return '#', blank.Foreground(tcell.ColorGray)
	case 175:
		return '#', blank.Foreground(tcell.ColorRed)
	case 100:
		return '+', blank.Foreground(tcell.ColorYellow)
	}
	return ' ', blank
}

func visionGlyph(v int) (rune, tcell.Style) {
	switch v {
	case 1:
		return 'o', blank.Foreground(tcell.ColorGreen)
	case 2:
		return '*', blank.Foreground(tcell.ColorRed)
	}
	return ' ', blank
}

var zonePalette = []tcell.Color{
	tcell.ColorGreen, tcell.ColorBlue, tcell.ColorYellow, tcell.ColorPurple,
	tcell.ColorTeal, tcell.ColorOlive, tcell.ColorRed, tcell.ColorNavy,
}

func zoneGlyph(v int) (rune, tcell.Style) {
	switch {
	case v == 0:
		return ' ', blank
	case v == 255:
		return '.', blank.Foreground(tcell.ColorGray)
	}
	zone := (v - 50) / 20
	if zone < 1 {
		return '?', blank
	}
	r := rune('0' + zone%10)
	return r, blank.Foreground(zonePalette[(zone-1)%len(zonePalette)])
}

// viewport maps screen cells to grid cells with y pointing up.
type viewport struct {
	gridW, gridH int
	offX, offY   int
}

// cell returns the grid cell shown at screen position (sx, sy) of a screen
// sh rows tall.
func (vp viewport) cell(sx, sy, sh int) (x, y int, ok bool) {
	x = vp.offX + sx
	y = vp.offY + (sh - 1 - sy)
	if x < 0 || y < 0 || x >= vp.gridW || y >= vp.gridH {
		return 0, 0, false
	}
	return x, y, true
}

func (vp *viewport) scroll(dx, dy, sw, sh int) {
	vp.offX = clamp(vp.offX+dx, 0, max(0, vp.gridW-sw))
	vp.offY = clamp(vp.offY+dy, 0, max(0, vp.gridH-sh))
}

func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }

func render(ctx context.Context, grid [][]int, v view) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	vp := viewport{gridW: len(grid)}
	if vp.gridW > 0 {
		vp.gridH = len(grid[0])
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		sw, sh := screen.Size()
		screen.Clear()
		for sx := 0; sx < sw; sx++ {
			for sy := 0; sy < sh; sy++ {
				x, y, ok := vp.cell(sx, sy, sh)
				if !ok {
					continue
				}
				r, style := v.glyph(grid[x][y])
				screen.SetContent(sx, sy, r, nil, style)
			}
		}
		screen.Show()

		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyLeft:
					vp.scroll(-8, 0, sw, sh)
				case ev.Key() == tcell.KeyRight:
					vp.scroll(8, 0, sw, sh)
				case ev.Key() == tcell.KeyUp:
					vp.scroll(0, 8, sw, sh)
				case ev.Key() == tcell.KeyDown:
					vp.scroll(0, -8, sw, sh)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}
