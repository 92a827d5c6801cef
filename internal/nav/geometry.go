// Package nav picks the window to focus when moving in a cardinal direction.
package nav

import "math"

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Extents returns the top-left and bottom-right corners.
func (r Rect) Extents() (x1, y1, x2, y2 float64) {
	return r.X, r.Y, r.X + r.Width, r.Y + r.Height
}

// Window is one entry of a window-manager snapshot.
type Window struct {
	Address   string
	Rect      Rect
	Workspace int
}

// overlap returns the shared length of [a1,a2] and [b1,b2], never negative.
func overlap(a1, a2, b1, b2 float64) float64 {
	d := math.Min(a2, b2) - math.Max(a1, b1)
	if d > 0 {
		return d
	}
	return 0
}
