package terrain

// modifyClimb looks for a one-cell wall between (x, y) and the walkable cell
// two steps along (dx, dy). The wall is climbable when the 2x2 height
// footprint anchored at the wall cell shows exactly one cliff level in one
// of the twelve reaper wall shapes. Footprint corners:
//
//	h0 h1
//	h2 h3
//
// A match marks the wall climbable and tags both ends as the low or high
// side of the cliff.
func (m *Map) modifyClimb(x, y, dx, dy int) {
	x1, y1 := x+dx, y+dy
	x2, y2 := x+2*dx, y+2*dy
	if !m.inBounds(x2, y2) || !m.inBounds(x1+1, y1+1) || !m.inBounds(x1, y1) {
		return
	}
	if m.at(x1, y1).Walkable || !m.at(x2, y2).Walkable {
		return
	}

	h0 := m.at(x1, y1+1).Height
	h1 := m.at(x1+1, y1+1).Height
	h2 := m.at(x1, y1).Height
	h3 := m.at(x1+1, y1).Height
	const d = CliffLevel

	// startHigh reports whether (x, y) is the upper end of the wall.
	var startHigh bool
	switch {
	case dx != 0 && dy != 0 && dx == dy:
		// 10 11 00 01
		// 11 01 10 00
		switch {
		case (h0 == h1 || h0 == h2) && h2 == h1+d && h0 == h3:
			startHigh = dx > 0
		case (h0 == h1 && h0 == h3 && h0 == h2+d) || (h0 == h2 && h0 == h3 && h1 == h2+d):
			startHigh = dx < 0
		default:
			return
		}
	case dx != 0 && dy != 0:
		// 01 11 10 00
		// 11 10 00 01
		switch {
		case (h1 == h2 && h1 == h3 && h1 == h0+d) || (h0 == h1 && h0 == h2 && h3 == h0+d):
			startHigh = dx < 0
		case (h0 == h1 && h0 == h2 && h0 == h3+d) || (h1 == h2 && h1 == h3 && h0 == h3+d):
			startHigh = dx > 0
		default:
			return
		}
	case dx != 0:
		// 01 10
		// 01 10
		switch {
		case h0 == h2 && h1 == h3 && h0+d == h1:
			startHigh = dx < 0
		case h0 == h2 && h1 == h3 && h0 == h1+d:
			startHigh = dx > 0
		default:
			return
		}
	default:
		// 00 11
		// 11 00
		switch {
		case h0 == h1 && h2 == h3 && h0+d == h2:
			startHigh = dy > 0
		case h0 == h1 && h2 == h3 && h0 == h2+d:
			startHigh = dy < 0
		default:
			return
		}
	}

	m.at(x1, y1).Climbable = true
	start, end := m.at(x, y), m.at(x2, y2)
	if startHigh {
		start.Cliff = start.Cliff.withHigh()
		end.Cliff = end.Cliff.withLow()
	} else {
		start.Cliff = start.Cliff.withLow()
		end.Cliff = end.Cliff.withHigh()
	}
}
