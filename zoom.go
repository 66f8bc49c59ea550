package circlecrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// zoomAnim holds an active scale tween. Each step is applied as an ordinary
// scale gesture about the circle center, so the clamp runs on every frame.
type zoomAnim struct {
	tween  *gween.Tween
	target float64
}

// ResetZoom animates the scale back to the minimum over duration seconds. A
// non-positive duration applies the change immediately. No-op until the
// transform exists.
func (c *Cropper) ResetZoom(duration float32, easeFn ease.TweenFunc) {
	c.ZoomTo(c.scaleRange.Min, duration, easeFn)
}

// ZoomTo animates the scale to target, clamped to the scale range, about the
// circle center. A non-positive duration applies the change immediately.
func (c *Cropper) ZoomTo(target float64, duration float32, easeFn ease.TweenFunc) {
	if !c.hasTransform {
		return
	}
	target = c.scaleRange.Clamp(target)
	if duration <= 0 {
		c.zoom = nil
		c.scaleAboutCenter(target)
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.zoom = &zoomAnim{
		tween:  gween.New(float32(c.transform.Scale), float32(target), duration, easeFn),
		target: target,
	}
}

// Zooming reports whether a zoom animation is running.
func (c *Cropper) Zooming() bool {
	return c.zoom != nil
}

// updateZoom advances the zoom animation by dt seconds.
func (c *Cropper) updateZoom(dt float32) {
	if c.zoom == nil {
		return
	}
	val, done := c.zoom.tween.Update(dt)
	if done {
		// Land exactly on the float64 target, not its float32 rounding.
		target := c.zoom.target
		c.zoom = nil
		c.scaleAboutCenter(target)
		return
	}
	c.scaleAboutCenter(float64(val))
}

// cancelZoom stops a running animation, leaving the scale where it is. User
// gestures take over from the animation.
func (c *Cropper) cancelZoom() {
	c.zoom = nil
}

// scaleAboutCenter sends the scale event that moves the current scale to
// target about the circle center.
func (c *Cropper) scaleAboutCenter(target float64) {
	if !c.hasTransform || c.transform.Scale <= 0 || target <= 0 {
		return
	}
	cx, cy := c.viewport.Center()
	c.HandleGesture(ScaleUpdate(target/c.transform.Scale, cx, cy))
}
