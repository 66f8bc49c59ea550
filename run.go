package circlecrop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
}

// gameShell adapts a Cropper to ebiten.Game. The viewport tracks the layout
// size, so window resizes reach OnViewportResized.
type gameShell struct {
	cropper *Cropper
	showFPS bool
}

func (g *gameShell) Update() error {
	return g.cropper.Update()
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.cropper.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cropper.OnViewportResized(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the cropper until the window is closed. For
// embedding in an existing game, call Update, Draw and OnViewportResized from
// your own ebiten.Game instead.
func Run(c *Cropper, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = Color{R: 0.1, G: 0.1, B: 0.12, A: 1}
	}
	return ebiten.RunGame(&gameShell{cropper: c, showFPS: cfg.ShowFPS})
}
