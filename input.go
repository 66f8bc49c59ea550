package circlecrop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
	pinched  bool // took part in a pinch since it was pressed
}

// --- Pinch state ---

type pinchState struct {
	active   bool
	pointer0 int
	pointer1 int
	prevDist float64
	prevCX   float64
	prevCY   float64
}

// tapState remembers the last completed tap for double-tap detection.
type tapState struct {
	valid bool
	frame int
	x, y  float64
}

// --- Input processing ---

// processInput polls mouse, wheel, keyboard and touch input and turns it into
// gesture events. Injected input, when queued, replaces real input for the
// frame.
func (c *Cropper) processInput() {
	if c.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	vx, vy := c.toViewport(float64(mx), float64(my))
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	c.processPointer(0, vx, vy, pressed)

	if _, wy := ebiten.Wheel(); wy != 0 {
		c.processWheel(vx, vy, wy)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		c.ResetZoom(c.opts.ResetDuration, ease.OutQuad)
	}

	c.processTouchPointers()
	c.detectPinch()
}

// toViewport converts screen coordinates to viewport coordinates.
func (c *Cropper) toViewport(sx, sy float64) (float64, float64) {
	return sx - c.Origin.X, sy - c.Origin.Y
}

// processWheel zooms by WheelStep per notch about the cursor.
func (c *Cropper) processWheel(x, y, notches float64) {
	c.cancelZoom()
	c.HandleGesture(ScaleUpdate(math.Pow(c.opts.WheelStep, notches), x, y))
}

// processTouchPointers handles touch input (pointers 1-9).
func (c *Cropper) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(c.prevTouchIDs[:0])
	c.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := c.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		vx, vy := c.toViewport(float64(tx), float64(ty))
		c.processPointer(slot, vx, vy, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && !activeSlots[i] {
			ps := &c.pointers[i]
			if ps.down {
				c.processPointer(i, ps.lastX, ps.lastY, false)
			}
			c.touchUsed[i] = false
			c.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (c *Cropper) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && c.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !c.touchUsed[i] {
			c.touchUsed[i] = true
			c.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/drag/release state machine for one pointer.
// A drag becomes a pan once it leaves the dead zone; pointers that belong to
// an active pinch never pan on their own.
func (c *Cropper) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &c.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		ps.pinched = false
		c.cancelZoom()

	case !pressed && ps.down:
		if !ps.dragging && !ps.pinched {
			c.registerTap(x, y)
		}
		ps.down = false
		ps.dragging = false
		ps.pinched = false

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if c.inPinch(pointerID) {
			ps.lastX, ps.lastY = x, y
			return
		}
		if !ps.dragging {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > c.opts.DragDeadZone {
				ps.dragging = true
			}
		}
		if ps.dragging {
			c.HandleGesture(PanUpdate(x-ps.lastX, y-ps.lastY))
		}
		ps.lastX, ps.lastY = x, y
	}
}

// inPinch reports whether pointerID is one of the two active pinch pointers.
func (c *Cropper) inPinch(pointerID int) bool {
	return c.pinch.active && (pointerID == c.pinch.pointer0 || pointerID == c.pinch.pointer1)
}

// registerTap records a completed tap and resets the zoom on a double tap.
func (c *Cropper) registerTap(x, y float64) {
	if c.opts.DoubleTapFrames < 0 {
		return
	}
	prev := c.lastTap
	if prev.valid && c.frame-prev.frame <= c.opts.DoubleTapFrames &&
		math.Hypot(x-prev.x, y-prev.y) <= defaultDoubleTapSlop {
		c.lastTap = tapState{}
		c.ResetZoom(c.opts.ResetDuration, ease.OutQuad)
		return
	}
	c.lastTap = tapState{valid: true, frame: c.frame, x: x, y: y}
}

// --- Pinch detection ---

// detectPinch emits a scale event about the pinch center while exactly two
// touch pointers are down. Movement of the center is emitted as a separate
// pan event; the two are not fused.
func (c *Cropper) detectPinch() {
	var p0, p1, count int
	for i := 1; i < maxPointers; i++ {
		if !c.pointers[i].down {
			continue
		}
		switch count {
		case 0:
			p0 = i
		case 1:
			p1 = i
		}
		count++
	}

	if count != 2 {
		c.pinch.active = false
		return
	}

	ps0 := &c.pointers[p0]
	ps1 := &c.pointers[p1]
	cx := (ps0.lastX + ps1.lastX) / 2
	cy := (ps0.lastY + ps1.lastY) / 2
	dist := math.Hypot(ps1.lastX-ps0.lastX, ps1.lastY-ps0.lastY)

	ps0.pinched, ps1.pinched = true, true
	ps0.dragging, ps1.dragging = false, false

	if !c.pinch.active || c.pinch.pointer0 != p0 || c.pinch.pointer1 != p1 {
		c.pinch = pinchState{active: true, pointer0: p0, pointer1: p1, prevDist: dist, prevCX: cx, prevCY: cy}
		c.cancelZoom()
		return
	}

	if c.pinch.prevDist > 0 && dist > 0 && dist != c.pinch.prevDist {
		c.HandleGesture(ScaleUpdate(dist/c.pinch.prevDist, cx, cy))
	}
	if cx != c.pinch.prevCX || cy != c.pinch.prevCY {
		c.HandleGesture(PanUpdate(cx-c.pinch.prevCX, cy-c.pinch.prevCY))
	}
	c.pinch.prevDist = dist
	c.pinch.prevCX = cx
	c.pinch.prevCY = cy
}
