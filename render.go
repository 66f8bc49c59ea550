package circlecrop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Update processes input and advances the zoom animation. Call it once per
// tick from ebiten.Game.Update.
func (c *Cropper) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	c.frame++

	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInput()
	c.updateZoom(dt)
	return nil
}

// Draw renders the image layer with the current transform and then the cached
// overlay on top. Queued exports are flushed afterwards.
func (c *Cropper) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	if c.ClearColor != (Color{}) {
		screen.Fill(c.ClearColor.toRGBA())
	}

	origin := [6]float64{1, 0, 0, 1, c.Origin.X, c.Origin.Y}

	if c.hasTransform {
		if c.sourceTex == nil {
			c.sourceTex = ebiten.NewImageFromImage(c.source)
		}
		var op ebiten.DrawImageOptions
		setGeoM(&op.GeoM, multiplyAffine(origin, c.transform.Matrix()))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(c.sourceTex, &op)
	}

	if c.debug {
		stats.imageTime = time.Since(t0)
		t0 = time.Now()
	}

	if img := c.overlay.current(); img != nil {
		if c.overlayTex.gen != c.overlay.gen {
			stats.overlayUploads++
		}
		tex := c.overlayTex.sync(img, c.overlay.gen)
		var op ebiten.DrawImageOptions
		setGeoM(&op.GeoM, origin)
		screen.DrawImage(tex, &op)
	}

	if c.debug {
		stats.overlayTime = time.Since(t0)
		c.debugLog(stats)
	}

	c.redraw = false
	c.flushExports()
}

// Dispose releases the GPU textures held by the cropper.
func (c *Cropper) Dispose() {
	c.overlayTex.Dispose()
	if c.sourceTex != nil {
		c.sourceTex.Deallocate()
		c.sourceTex = nil
	}
}

// setGeoM loads an affine matrix [a, b, c, d, tx, ty] into g.
func setGeoM(g *ebiten.GeoM, m [6]float64) {
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
}
