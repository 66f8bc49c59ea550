package circlecrop

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a rasterizer.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default ring color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorShade is the default overlay color: black at 70% opacity.
var ColorShade = Color{0, 0, 0, 0.7}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Covers reports whether r fully contains other. Shared edges count as covered.
func (r Rect) Covers(other Rect) bool {
	return r.X <= other.X && r.Y <= other.Y &&
		r.Right() >= other.Right() && r.Bottom() >= other.Bottom()
}

// GestureKind identifies the kind of a disambiguated gesture event.
type GestureKind uint8

const (
	GestureScale GestureKind = iota // two-finger pinch or wheel zoom about a focal point
	GesturePan                      // single-pointer drag
)

// String returns the gesture kind name.
func (k GestureKind) String() string {
	switch k {
	case GestureScale:
		return "scale"
	case GesturePan:
		return "pan"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
