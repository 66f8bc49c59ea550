package circlecrop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// overlayTexture is the GPU copy of the cached overlay raster. It is
// re-uploaded only when the cache generation changes.
type overlayTexture struct {
	image *ebiten.Image
	gen   uint64
	w, h  int
}

// sync returns a texture holding src, uploading it if gen differs from the
// generation last uploaded. A texture of the same size is rewritten in place.
func (t *overlayTexture) sync(src *image.RGBA, gen uint64) *ebiten.Image {
	if t.image != nil && t.gen == gen {
		return t.image
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if t.image == nil || t.w != w || t.h != h {
		t.Dispose()
		t.image = ebiten.NewImage(w, h)
		t.w, t.h = w, h
	}
	// image.RGBA is premultiplied, matching WritePixels.
	t.image.WritePixels(src.Pix)
	t.gen = gen
	return t.image
}

// Dispose deallocates the texture. A later sync allocates a new one.
func (t *overlayTexture) Dispose() {
	if t.image != nil {
		t.image.Deallocate()
		t.image = nil
	}
	t.w, t.h = 0, 0
}

// toRGBA converts a Color to a premultiplied color for ebiten fills.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements color.Color for premultiplied 8-bit values.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
