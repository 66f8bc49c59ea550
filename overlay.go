package circlecrop

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// defaultRingWidth is the ring stroke width in density-independent units.
const defaultRingWidth = 2.0

// OverlayStyle controls the appearance of the mask overlay.
type OverlayStyle struct {
	// Shade fills everything outside the crop circle.
	Shade Color
	// Ring is the color of the stroke drawn on the circle boundary.
	Ring Color
	// RingWidth is the stroke width in pixels. Zero disables the ring.
	RingWidth float64
}

// overlayCache memoizes the overlay raster keyed on the viewport's pixel
// size. The raster is rebuilt synchronously when the size changes and reused
// unchanged for every frame in between.
type overlayCache struct {
	style OverlayStyle

	key    image.Point
	img    *image.RGBA
	gen    uint64 // incremented on every rebuild
	builds int
}

func newOverlayCache(style OverlayStyle) *overlayCache {
	return &overlayCache{style: style}
}

// get returns the overlay for v, rebuilding it only if the size differs from
// the cached key. Degenerate viewports leave the cache untouched.
func (c *overlayCache) get(v Viewport) (*image.RGBA, error) {
	if !v.Valid() {
		return nil, ErrDegenerateViewport
	}
	w, h := v.size()
	key := image.Pt(w, h)
	if c.img != nil && c.key == key {
		return c.img, nil
	}

	img, err := buildOverlay(v, c.style)
	if err != nil {
		return nil, err
	}
	c.key = key
	c.img = img
	c.gen++
	c.builds++
	Logger().Debug("overlay rebuilt", "width", w, "height", h, "generation", c.gen)
	return img, nil
}

// current returns the cached raster without rebuilding, or nil.
func (c *overlayCache) current() *image.RGBA {
	return c.img
}

// invalidate drops the cached raster so the next get rebuilds it.
func (c *overlayCache) invalidate() {
	c.img = nil
	c.key = image.Point{}
}

// buildOverlay rasterizes the shade with a transparent circular hole and the
// ring stroke for viewport v.
func buildOverlay(v Viewport, style OverlayStyle) (*image.RGBA, error) {
	w, h := v.size()
	cx, cy := v.Center()
	r := v.Radius()

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	// Rectangle plus circle under even-odd leaves the circle unpainted.
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.SetRGBA(style.Shade.R, style.Shade.G, style.Shade.B, style.Shade.A)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.DrawCircle(cx, cy, r)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill overlay shade: %w", err)
	}

	if style.RingWidth > 0 && style.Ring.A > 0 {
		dc.SetRGBA(style.Ring.R, style.Ring.G, style.Ring.B, style.Ring.A)
		dc.SetLineWidth(style.RingWidth)
		dc.DrawCircle(cx, cy, r)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stroke overlay ring: %w", err)
		}
	}

	return toRGBA(dc.Image()), nil
}

// toRGBA returns img as *image.RGBA, copying only when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
