package circlecrop

// ClampTransform restores coverage of the crop circle's bounding square by a
// w x h image under t, adjusting translation only.
//
// Four corrections run in fixed order (left, top, right, bottom). Each one
// shifts a single axis by exactly the deficit on its side, measured after the
// shifts before it, and none of them iterate. When the scaled image is
// narrower than the circle on an axis, the later correction wins and the image
// ends up aligned to the right or bottom edge of the square.
//
// Covering the bounding square implies covering the inscribed circle; near the
// corners this is stricter than the circle alone requires.
func ClampTransform(t Transform, w, h float64, v Viewport) Transform {
	c := v.CircleBounds()

	if img := t.ImageRect(w, h); img.X > c.X {
		t.TranslateX += c.X - img.X
	}
	if img := t.ImageRect(w, h); img.Y > c.Y {
		t.TranslateY += c.Y - img.Y
	}
	if img := t.ImageRect(w, h); img.Right() < c.Right() {
		t.TranslateX += c.Right() - img.Right()
	}
	if img := t.ImageRect(w, h); img.Bottom() < c.Bottom() {
		t.TranslateY += c.Bottom() - img.Bottom()
	}
	return t
}
