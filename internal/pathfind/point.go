package pathfind

import "math"

// Point is a grid cell. X grows to the right, Y grows upward.
type Point struct {
	X, Y int
}

// Vec2 is a real-valued position measured in cells.
type Vec2 struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Round returns the cell nearest to v. This is how path endpoints given as
// real positions are mapped onto the grid.
func (v Vec2) Round() Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// Floor returns the cell containing v.
func (v Vec2) Floor() Point {
	return Point{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Center returns the middle of the cell.
func (p Point) Center() Vec2 {
	return Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// Vec converts the cell coordinates to a Vec2 without offset.
func (p Point) Vec() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
