package circlecrop

const (
	defaultWheelStep       = 1.1
	defaultDragDeadZone    = 4.0 // pixels
	defaultDoubleTapFrames = 18  // 0.3 s at 60 TPS
	defaultDoubleTapSlop   = 24.0
	defaultResetDuration   = 0.25 // seconds
	defaultExportDir       = "exports"
)

// Options configures a Cropper. The zero value of every field selects its
// default.
type Options struct {
	// Shade fills the viewport outside the crop circle. Default: black at 70%.
	Shade Color
	// Ring colors the stroke on the circle boundary. Default: white.
	Ring Color
	// RingWidth is the ring stroke width in density-independent units.
	// Default: 2. Negative disables the ring.
	RingWidth float64
	// Density converts density-independent units to pixels. Default: 1.
	Density float64

	// ZoomMultiplier is the ratio of the maximum to the minimum scale.
	// Default: 2.
	ZoomMultiplier float64
	// WheelStep is the scale factor applied per mouse wheel notch. Default: 1.1.
	WheelStep float64
	// DragDeadZone is the distance in pixels a pointer must travel before a
	// drag starts panning. Default: 4.
	DragDeadZone float64

	// DoubleTapFrames is the maximum number of ticks between the two taps of
	// a double tap. Default: 18. Negative disables double-tap reset.
	DoubleTapFrames int
	// ResetDuration is the length in seconds of the animated zoom reset.
	// Default: 0.25.
	ResetDuration float32

	// ExportDir is where queued exports are written. Default: "exports".
	ExportDir string
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Shade == (Color{}) {
		o.Shade = ColorShade
	}
	if o.Ring == (Color{}) {
		o.Ring = ColorWhite
	}
	if o.RingWidth == 0 {
		o.RingWidth = defaultRingWidth
	}
	if o.Density <= 0 {
		o.Density = 1
	}
	if o.ZoomMultiplier <= 0 {
		o.ZoomMultiplier = maxZoomMultiplier
	}
	if o.WheelStep <= 1 {
		o.WheelStep = defaultWheelStep
	}
	if o.DragDeadZone <= 0 {
		o.DragDeadZone = defaultDragDeadZone
	}
	if o.DoubleTapFrames == 0 {
		o.DoubleTapFrames = defaultDoubleTapFrames
	}
	if o.ResetDuration <= 0 {
		o.ResetDuration = defaultResetDuration
	}
	if o.ExportDir == "" {
		o.ExportDir = defaultExportDir
	}
	return o
}

// overlayStyle derives the overlay style with the ring width in pixels.
func (o Options) overlayStyle() OverlayStyle {
	width := o.RingWidth * o.Density
	if width < 0 {
		width = 0
	}
	return OverlayStyle{Shade: o.Shade, Ring: o.Ring, RingWidth: width}
}
