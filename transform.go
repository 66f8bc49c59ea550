package circlecrop

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// maxZoomMultiplier is the default ratio between ScaleRange.Max and Min.
const maxZoomMultiplier = 2.0

// Transform maps source-image space to viewport space with a uniform scale
// followed by a translation: (x, y) -> (Scale*x + TranslateX, Scale*y + TranslateY).
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// ScaleRange is the legal interval for Transform.Scale.
type ScaleRange struct {
	Min, Max float64
}

// Clamp restricts s to [Min, Max].
func (r ScaleRange) Clamp(s float64) float64 {
	return math.Max(r.Min, math.Min(s, r.Max))
}

// Contains reports whether s lies within the range, allowing a small
// tolerance for accumulated floating-point error.
func (r ScaleRange) Contains(s float64) bool {
	const tol = 1e-9
	return s >= r.Min-tol && s <= r.Max+tol
}

// newScaleRange derives the range for an image of size (w, h) in viewport v.
// Min fits the image's long side to the circle diameter.
func newScaleRange(v Viewport, w, h, multiplier float64) ScaleRange {
	if multiplier <= 0 {
		multiplier = maxZoomMultiplier
	}
	minScale := 2 * v.Radius() / math.Max(w, h)
	return ScaleRange{Min: minScale, Max: multiplier * minScale}
}

// Matrix returns the transform as an affine matrix [a, b, c, d, tx, ty].
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t Transform) Matrix() [6]float64 {
	return [6]float64{t.Scale, 0, 0, t.Scale, t.TranslateX, t.TranslateY}
}

// ImageToViewport converts an image-space point to viewport space.
func (t Transform) ImageToViewport(x, y float64) (float64, float64) {
	return transformPoint(t.Matrix(), x, y)
}

// ViewportToImage converts a viewport-space point to image space.
func (t Transform) ViewportToImage(x, y float64) (float64, float64) {
	return transformPoint(invertAffine(t.Matrix()), x, y)
}

// ImageRect returns the transformed bounding rectangle of a w x h image.
// Scale is uniform, so the same factor is used for both axes.
func (t Transform) ImageRect(w, h float64) Rect {
	s := t.Matrix()[0]
	return Rect{X: t.TranslateX, Y: t.TranslateY, Width: s * w, Height: s * h}
}

// resetTransform returns the initial transform for a w x h image: minimum
// scale, centered in the viewport.
func resetTransform(v Viewport, w, h float64, r ScaleRange) Transform {
	s := r.Min
	return Transform{
		Scale:      s,
		TranslateX: (v.Width - s*w) / 2,
		TranslateY: (v.Height - s*h) / 2,
	}
}

// applyScale multiplies the scale by factor, clamps it into r and scales the
// translation about (fx, fy) by the effective factor so the focal point stays
// fixed in viewport space. Coverage is not restored here.
func applyScale(t Transform, r ScaleRange, factor, fx, fy float64) Transform {
	newScale := r.Clamp(t.Scale * factor)
	effective := newScale / t.Scale
	return Transform{
		Scale:      newScale,
		TranslateX: fx - effective*(fx-t.TranslateX),
		TranslateY: fy - effective*(fy-t.TranslateY),
	}
}

// applyTranslate shifts the translation by (dx, dy). Coverage is not
// restored here.
func applyTranslate(t Transform, dx, dy float64) Transform {
	t.TranslateX += dx
	t.TranslateY += dy
	return t
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
