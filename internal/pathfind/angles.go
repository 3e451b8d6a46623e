package pathfind

import "math"

// bearing returns the direction from a to b. (0,-1) maps to 0, (0,1) to pi,
// (1,0) to -pi/2 and (-1,0) to pi/2.
func bearing(a, b Vec2) float64 {
	return math.Atan2(a.X-b.X, a.Y-b.Y)
}

// wrapAngle reduces a to (-pi, pi].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a > math.Pi:
		a -= 2 * math.Pi
	case a <= -math.Pi:
		a += 2 * math.Pi
	}
	return a
}

// angleDistance is the unsigned smallest rotation between two bearings.
func angleDistance(a1, a2 float64) float64 {
	return math.Abs(wrapAngle(a2 - a1))
}
