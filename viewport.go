package circlecrop

import "math"

// radiusDivisor relates the crop circle radius to the viewport's short side.
const radiusDivisor = 2.5

// Viewport is the drawing surface hosting the crop circle. It is immutable for
// a given layout and replaced whenever the host is resized.
type Viewport struct {
	Width, Height float64
}

// Valid reports whether both dimensions are positive and finite.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 &&
		!math.IsInf(v.Width, 0) && !math.IsInf(v.Height, 0)
}

// Center returns the crop circle's center in viewport space.
func (v Viewport) Center() (cx, cy float64) {
	return v.Width / 2, v.Height / 2
}

// Radius returns the crop circle's radius: min(width, height) / 2.5.
func (v Viewport) Radius() float64 {
	return math.Min(v.Width, v.Height) / radiusDivisor
}

// CircleBounds returns the crop circle's bounding square.
func (v Viewport) CircleBounds() Rect {
	cx, cy := v.Center()
	r := v.Radius()
	return Rect{X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r}
}

// ContainsCircle reports whether (x, y) lies inside or on the crop circle.
func (v Viewport) ContainsCircle(x, y float64) bool {
	cx, cy := v.Center()
	r := v.Radius()
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= r*r
}

// size returns the integer pixel size used to key raster caches.
func (v Viewport) size() (w, h int) {
	return int(math.Ceil(v.Width)), int(math.Ceil(v.Height))
}
