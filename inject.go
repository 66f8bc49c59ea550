package circlecrop

// syntheticPointerEvent is a single injected pointer sample in screen
// coordinates.
type syntheticPointerEvent struct {
	pointer          int
	screenX, screenY float64
	pressed          bool
}

// syntheticFrame is everything injected for one tick. Pointers that must move
// together, such as the two fingers of a pinch, share a frame.
type syntheticFrame struct {
	pointers []syntheticPointerEvent
	wheel    float64
	wheelX   float64
	wheelY   float64
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's Update.
func (c *Cropper) InjectPress(x, y float64) {
	c.injectPointer(0, x, y, true)
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (c *Cropper) InjectMove(x, y float64) {
	c.injectPointer(0, x, y, true)
}

// InjectRelease queues a button release at the given screen coordinates.
func (c *Cropper) InjectRelease(x, y float64) {
	c.injectPointer(0, x, y, false)
}

// InjectTap queues a press followed by a release at the same point. Consumes
// two frames.
func (c *Cropper) InjectTap(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and release at (toX, toY). Minimum frames is 2.
func (c *Cropper) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy): both
// touches go down fromDist apart, spread or close to toDist over frames-2
// moves, then lift. The accumulated scale factor is toDist/fromDist before
// clamping. Minimum frames is 3.
func (c *Cropper) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	pair := func(dist float64, pressed bool) syntheticFrame {
		return syntheticFrame{pointers: []syntheticPointerEvent{
			{pointer: 1, screenX: cx - dist/2, screenY: cy, pressed: pressed},
			{pointer: 2, screenX: cx + dist/2, screenY: cy, pressed: pressed},
		}}
	}
	c.injectQueue = append(c.injectQueue, pair(fromDist, true))
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.injectQueue = append(c.injectQueue, pair(fromDist+(toDist-fromDist)*t, true))
	}
	c.injectQueue = append(c.injectQueue, pair(toDist, false))
}

// InjectWheel queues a mouse wheel scroll of the given number of notches at
// the given screen coordinates. Positive notches zoom in.
func (c *Cropper) InjectWheel(x, y, notches float64) {
	c.injectQueue = append(c.injectQueue, syntheticFrame{wheel: notches, wheelX: x, wheelY: y})
}

func (c *Cropper) injectPointer(pointer int, x, y float64, pressed bool) {
	c.injectQueue = append(c.injectQueue, syntheticFrame{pointers: []syntheticPointerEvent{
		{pointer: pointer, screenX: x, screenY: y, pressed: pressed},
	}})
}

// processInjectedInput pops one frame from the inject queue and feeds it
// through the same pointer, wheel and pinch handling as real input. Returns
// true if a frame was consumed.
func (c *Cropper) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	f := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue[len(c.injectQueue)-1] = syntheticFrame{}
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	for _, evt := range f.pointers {
		if evt.pointer < 0 || evt.pointer >= maxPointers {
			continue
		}
		vx, vy := c.toViewport(evt.screenX, evt.screenY)
		c.processPointer(evt.pointer, vx, vy, evt.pressed)
	}
	if f.wheel != 0 {
		vx, vy := c.toViewport(f.wheelX, f.wheelY)
		c.processWheel(vx, vy, f.wheel)
	}
	c.detectPinch()
	return true
}
