package circlecrop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSetGeoMMatchesTransform(t *testing.T) {
	tr := Transform{Scale: 0.4, TranslateX: 30, TranslateY: 70}
	origin := [6]float64{1, 0, 0, 1, 15, 25}
	var g ebiten.GeoM
	setGeoM(&g, multiplyAffine(origin, tr.Matrix()))

	for _, p := range [][2]float64{{0, 0}, {600, 400}, {250, 125}} {
		gx, gy := g.Apply(p[0], p[1])
		vx, vy := tr.ImageToViewport(p[0], p[1])
		if !approxEqual(gx, vx+15, 1e-9) || !approxEqual(gy, vy+25, 1e-9) {
			t.Errorf("GeoM(%v) = (%f, %f), want (%f, %f)", p, gx, gy, vx+15, vy+25)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		in         Color
		r, g, b, a uint8
	}{
		{Color{1, 1, 1, 1}, 255, 255, 255, 255},
		{Color{0, 0, 0, 0.7}, 0, 0, 0, 178},
		{Color{1, 0, 0, 0.5}, 127, 0, 0, 127},
		{Color{2, -1, 0, 1.5}, 255, 0, 0, 255},
	}
	for _, tt := range tests {
		got := tt.in.toRGBA()
		if got.R != tt.r || got.G != tt.g || got.B != tt.b || got.A != tt.a {
			t.Errorf("%v.toRGBA() = %+v, want {%d %d %d %d}", tt.in, got, tt.r, tt.g, tt.b, tt.a)
		}
	}
	r, _, _, a := colorRGBA{R: 255, A: 255}.RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("RGBA() = %x, %x, want ffff, ffff", r, a)
	}
}

func TestGameShellLayoutResizesViewport(t *testing.T) {
	c := New(Options{})
	c.SetSourceImage(quadrantImage(600, 400))
	g := &gameShell{cropper: c}

	w, h := g.Layout(300, 300)
	if w != 300 || h != 300 {
		t.Errorf("Layout = %d, %d, want 300, 300", w, h)
	}
	if c.Viewport() != (Viewport{300, 300}) {
		t.Errorf("viewport = %+v", c.Viewport())
	}
	if _, ok := c.Transform(); !ok {
		t.Error("transform not initialized by Layout")
	}
}
