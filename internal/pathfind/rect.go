package pathfind

import "math"

// Rect is a half-open cell rectangle [X, XEnd) x [Y, YEnd).
type Rect struct {
	X, Y       int
	XEnd, YEnd int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.XEnd && p.Y >= r.Y && p.Y < r.YEnd
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.X >= r.XEnd || r.Y >= r.YEnd
}

// RectAround returns a w x h rectangle centered on the cell containing
// center, clipped to a width x height grid.
func RectAround(center Vec2, w, h, width, height int) Rect {
	return RectAroundPoint(Point{X: truncPos(center.X), Y: truncPos(center.Y)}, w, h, width, height)
}

// RectAroundPoint is RectAround for an integer center.
func RectAroundPoint(center Point, w, h, width, height int) Rect {
	x := clampLow(math.Ceil(float64(center.X) - float64(w)/2))
	y := clampLow(math.Ceil(float64(center.Y) - float64(h)/2))
	return Rect{
		X:    x,
		Y:    y,
		XEnd: min(width, x+w),
		YEnd: min(height, y+h),
	}
}

func clampLow(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}

// truncPos truncates toward zero and saturates negatives at zero.
func truncPos(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}
