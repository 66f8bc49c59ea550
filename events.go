package circlecrop

// EventStore is the interface for optional ECS integration. When set on a
// Cropper, every transform change is forwarded to it.
type EventStore interface {
	EmitEvent(event CropEvent)
}

// CropEventType identifies what changed the transform.
type CropEventType uint8

const (
	EventTransformReset CropEventType = iota // image loaded or viewport first sized
	EventTransformRefit                      // viewport resized with an existing transform
	EventGesture                             // a scale or pan event was applied
	EventImageUnloaded                       // the source image was removed
)

// String returns the event type name.
func (t CropEventType) String() string {
	switch t {
	case EventTransformReset:
		return "reset"
	case EventTransformRefit:
		return "refit"
	case EventGesture:
		return "gesture"
	case EventImageUnloaded:
		return "unloaded"
	default:
		return "unknown"
	}
}

// CropEvent carries the transform after a change. Gesture is valid for
// EventGesture only.
type CropEvent struct {
	Type       CropEventType
	Gesture    GestureEvent
	Transform  Transform
	ScaleRange ScaleRange
	Viewport   Viewport
}

// SetEventStore sets the optional ECS bridge. Pass nil to detach it.
func (c *Cropper) SetEventStore(store EventStore) {
	c.store = store
}

func (c *Cropper) emitCropEvent(eventType CropEventType, gesture GestureEvent) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(CropEvent{
		Type:       eventType,
		Gesture:    gesture,
		Transform:  c.transform,
		ScaleRange: c.scaleRange,
		Viewport:   c.viewport,
	})
}
