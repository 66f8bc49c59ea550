package circlecrop

import (
	"fmt"
	"math"
)

// GestureEvent is a disambiguated gesture delivered to the reducer. Scale
// events use Factor and FocalX/FocalY; pan events use DX/DY.
type GestureEvent struct {
	Kind GestureKind

	Factor         float64
	FocalX, FocalY float64

	DX, DY float64
}

// ScaleUpdate returns a scale event multiplying the current scale by factor
// about the viewport point (focalX, focalY).
func ScaleUpdate(factor, focalX, focalY float64) GestureEvent {
	return GestureEvent{Kind: GestureScale, Factor: factor, FocalX: focalX, FocalY: focalY}
}

// PanUpdate returns a pan event shifting the image by (dx, dy) viewport pixels.
func PanUpdate(dx, dy float64) GestureEvent {
	return GestureEvent{Kind: GesturePan, DX: dx, DY: dy}
}

// validate reports whether the event can be applied.
func (e GestureEvent) validate() error {
	switch e.Kind {
	case GestureScale:
		if !(e.Factor > 0) || math.IsInf(e.Factor, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidScaleFactor, e.Factor)
		}
		if !finite(e.FocalX) || !finite(e.FocalY) {
			return fmt.Errorf("%w: focal point (%v, %v)", ErrInvalidScaleFactor, e.FocalX, e.FocalY)
		}
	case GesturePan:
		if !finite(e.DX) || !finite(e.DY) {
			return fmt.Errorf("circlecrop: invalid pan delta (%v, %v)", e.DX, e.DY)
		}
	default:
		return fmt.Errorf("circlecrop: unknown gesture kind %d", e.Kind)
	}
	return nil
}

// reduceGesture applies exactly one mutator for ev followed by one clamp pass.
// Pinch and pan deltas are applied independently even when they overlap.
// Invalid events leave t unchanged and return the validation error.
func reduceGesture(t Transform, r ScaleRange, w, h float64, v Viewport, ev GestureEvent) (Transform, error) {
	if err := ev.validate(); err != nil {
		return t, err
	}
	switch ev.Kind {
	case GestureScale:
		t = applyScale(t, r, ev.Factor, ev.FocalX, ev.FocalY)
	case GesturePan:
		t = applyTranslate(t, ev.DX, ev.DY)
	}
	return ClampTransform(t, w, h, v), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
