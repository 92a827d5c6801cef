package nav

import "math"

// axis describes how one direction reads a pair of rectangles.
type axis struct {
	horizontal bool    // travel along x
	sign       float64 // +1 towards larger coordinates
}

var axes = map[Direction]axis{
	Left:  {horizontal: true, sign: -1},
	Right: {horizontal: true, sign: 1},
	Up:    {horizontal: false, sign: -1},
	Down:  {horizontal: false, sign: 1},
}

// score orders eligible candidates: distance along the travel axis first,
// then lateral misalignment.
type score struct {
	primary   float64
	secondary float64
}

// less compares lexicographically; NaN compares equal to everything.
func (s score) less(o score) bool {
	if c := compare(s.primary, o.primary); c != 0 {
		return c < 0
	}
	return compare(s.secondary, o.secondary) < 0
}

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Select returns the index in candidates of the window to focus when moving
// from active in direction dir. The active window is skipped by address and
// only windows on the active workspace are considered. A candidate qualifies
// when its center lies strictly past the active center along the travel axis
// and it shares a positive extent with the active window on the other axis.
// Exact score ties keep the earliest candidate.
func Select(dir Direction, active Window, candidates []Window) (int, bool) {
	ax, ok := axes[dir]
	if !ok {
		return -1, false
	}

	acx, acy := active.Rect.Center()
	ax1, ay1, ax2, ay2 := active.Rect.Extents()

	best := -1
	var bestScore score

	for i, c := range candidates {
		if c.Address == active.Address {
			continue
		}
		if c.Workspace != active.Workspace {
			continue
		}

		ccx, ccy := c.Rect.Center()
		cx1, cy1, cx2, cy2 := c.Rect.Extents()

		var travel, lateral, shared float64
		if ax.horizontal {
			travel = (ccx - acx) * ax.sign
			lateral = ccy - acy
			shared = overlap(ay1, ay2, cy1, cy2)
		} else {
			travel = (ccy - acy) * ax.sign
			lateral = ccx - acx
			shared = overlap(ax1, ax2, cx1, cx2)
		}

		if !(travel > 0) || !(shared > 0) {
			continue
		}

		s := score{primary: travel, secondary: math.Abs(lateral)}
		if best < 0 || s.less(bestScore) {
			best = i
			bestScore = s
		}
	}

	return best, best >= 0
}
