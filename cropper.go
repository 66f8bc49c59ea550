package circlecrop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cropper is the circular crop widget. It owns the source image, the current
// transform, the overlay cache and the pointer state. All methods must be
// called from the goroutine running the game loop.
type Cropper struct {
	opts Options

	// Origin is the screen position of the viewport's top-left corner.
	// Pointer input is converted to viewport space by subtracting it.
	Origin Vec2
	// ClearColor fills the screen before drawing. Zero leaves it untouched.
	ClearColor Color

	viewport Viewport

	source     image.Image
	srcW, srcH float64

	transform    Transform
	scaleRange   ScaleRange
	hasTransform bool
	redraw       bool

	overlay    *overlayCache
	overlayTex overlayTexture
	sourceTex  *ebiten.Image

	// Input state
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	pinch        pinchState
	lastTap      tapState
	injectQueue  []syntheticFrame
	frame        int

	zoom *zoomAnim

	exportQueue []string
	testRunner  *TestRunner
	store       EventStore
	debug       bool
}

// New creates a Cropper with no image and no viewport.
func New(opts Options) *Cropper {
	opts = opts.withDefaults()
	return &Cropper{
		opts:    opts,
		overlay: newOverlayCache(opts.overlayStyle()),
	}
}

// Options returns the effective options, with defaults applied.
func (c *Cropper) Options() Options {
	return c.opts
}

// SetSourceImage replaces the source image and discards the transform. If the
// viewport already has a valid size the transform is reset immediately,
// otherwise on the first valid resize. A nil image unloads the current one.
func (c *Cropper) SetSourceImage(img image.Image) {
	c.hasTransform = false
	c.zoom = nil
	if c.sourceTex != nil {
		c.sourceTex.Deallocate()
		c.sourceTex = nil
	}
	c.redraw = true

	if img == nil || img.Bounds().Empty() {
		hadSource := c.source != nil
		c.source = nil
		c.srcW, c.srcH = 0, 0
		if hadSource {
			c.emitCropEvent(EventImageUnloaded, GestureEvent{})
		}
		return
	}
	b := img.Bounds()
	c.source = img
	c.srcW, c.srcH = float64(b.Dx()), float64(b.Dy())

	if c.viewport.Valid() {
		c.resetTransform()
	}
}

// SourceImage returns the loaded image, or nil.
func (c *Cropper) SourceImage() image.Image {
	return c.source
}

// OnViewportResized records a new viewport size and rebuilds the overlay. A
// zero or negative size is ignored until a valid one arrives. If an image is
// loaded and the transform was never initialized it is reset now; an existing
// transform is refitted to the new scale range and clamped.
func (c *Cropper) OnViewportResized(width, height float64) {
	v := Viewport{Width: width, Height: height}
	if !v.Valid() {
		Logger().Debug("viewport resize deferred", "width", width, "height", height)
		return
	}
	if v == c.viewport {
		return
	}
	c.viewport = v
	c.redraw = true

	if _, err := c.overlay.get(v); err != nil {
		Logger().Warn("overlay rebuild failed", "error", err)
	}

	if c.source == nil {
		return
	}
	if !c.hasTransform {
		c.resetTransform()
		return
	}
	c.refit()
}

// Viewport returns the current viewport. It is the zero Viewport until the
// first valid resize.
func (c *Cropper) Viewport() Viewport {
	return c.viewport
}

// Transform returns the current transform. ok is false while no image or no
// valid viewport is present.
func (c *Cropper) Transform() (t Transform, ok bool) {
	return c.transform, c.hasTransform
}

// ScaleRange returns the legal scale range. ok is false while the transform is
// uninitialized.
func (c *Cropper) ScaleRange() (r ScaleRange, ok bool) {
	return c.scaleRange, c.hasTransform
}

// NeedsRedraw reports whether state changed since the last Draw.
func (c *Cropper) NeedsRedraw() bool {
	return c.redraw
}

// Overlay returns the cached overlay raster, or nil before the first valid
// resize. The returned image must not be modified.
func (c *Cropper) Overlay() *image.RGBA {
	return c.overlay.current()
}

// SetOverlayStyle replaces the overlay appearance and rebuilds the cache for
// the current viewport.
func (c *Cropper) SetOverlayStyle(style OverlayStyle) {
	c.overlay.style = style
	c.overlay.invalidate()
	if !c.viewport.Valid() {
		return
	}
	if _, err := c.overlay.get(c.viewport); err != nil {
		Logger().Warn("overlay rebuild failed", "error", err)
	}
	c.redraw = true
}

// OnScaleGesture scales the image by factor about the viewport point
// (focalX, focalY).
func (c *Cropper) OnScaleGesture(factor, focalX, focalY float64) {
	c.HandleGesture(ScaleUpdate(factor, focalX, focalY))
}

// OnPanGesture moves the image by (dx, dy) viewport pixels.
func (c *Cropper) OnPanGesture(dx, dy float64) {
	c.HandleGesture(PanUpdate(dx, dy))
}

// HandleGesture applies one gesture event: a single transform mutation, one
// clamp pass and a redraw request. It reports whether the event was applied.
// Events arriving before the transform exists, and invalid events, are
// dropped without changing state.
func (c *Cropper) HandleGesture(ev GestureEvent) bool {
	if !c.hasTransform {
		return false
	}
	t, err := reduceGesture(c.transform, c.scaleRange, c.srcW, c.srcH, c.viewport, ev)
	if err != nil {
		Logger().Debug("gesture discarded", "kind", ev.Kind.String(), "error", err)
		return false
	}
	c.transform = t
	c.redraw = true
	c.emitCropEvent(EventGesture, ev)
	return true
}

// CroppedResult returns the circular crop of the source image, or nil when
// no image is loaded or the viewport has no valid size yet.
func (c *Cropper) CroppedResult() *image.NRGBA {
	if c.source == nil || !c.viewport.Valid() {
		return nil
	}
	img, err := Extract(c.source, c.viewport.Radius())
	if err != nil {
		Logger().Warn("crop extraction failed", "error", err)
		return nil
	}
	return img
}

// CroppedResultEncoded returns the crop as base64 PNG text. ok is false when
// no crop is available.
func (c *Cropper) CroppedResultEncoded() (s string, ok bool) {
	img := c.CroppedResult()
	if img == nil {
		return "", false
	}
	s, err := EncodeResult(img)
	if err != nil {
		Logger().Warn("crop encoding failed", "error", err)
		return "", false
	}
	return s, true
}

// resetTransform fits the image at minimum scale, centered in the viewport.
func (c *Cropper) resetTransform() {
	c.scaleRange = newScaleRange(c.viewport, c.srcW, c.srcH, c.opts.ZoomMultiplier)
	c.transform = resetTransform(c.viewport, c.srcW, c.srcH, c.scaleRange)
	c.hasTransform = true
	c.redraw = true
	Logger().Debug("transform reset",
		"scale", c.transform.Scale,
		"tx", c.transform.TranslateX, "ty", c.transform.TranslateY,
		"min", c.scaleRange.Min, "max", c.scaleRange.Max)
	c.emitCropEvent(EventTransformReset, GestureEvent{})
}

// refit recomputes the scale range for a resized viewport, pulls the scale
// back into it about the circle center and restores coverage.
func (c *Cropper) refit() {
	c.scaleRange = newScaleRange(c.viewport, c.srcW, c.srcH, c.opts.ZoomMultiplier)
	cx, cy := c.viewport.Center()
	t := c.transform
	if s := c.scaleRange.Clamp(t.Scale); s != t.Scale {
		t = applyScale(t, c.scaleRange, s/t.Scale, cx, cy)
	}
	c.transform = ClampTransform(t, c.srcW, c.srcH, c.viewport)
	c.emitCropEvent(EventTransformRefit, GestureEvent{})
}
