package ecs

import (
	"image"
	"testing"

	"github.com/phanxgames/circlecrop"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiStore(world) == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []circlecrop.CropEvent
	CropEventType.Subscribe(world, func(w donburi.World, e circlecrop.CropEvent) {
		received = append(received, e)
	})

	store.EmitEvent(circlecrop.CropEvent{
		Type:      circlecrop.EventTransformReset,
		Transform: circlecrop.Transform{Scale: 0.4, TranslateX: 30, TranslateY: 70},
	})
	store.EmitEvent(circlecrop.CropEvent{
		Type:    circlecrop.EventGesture,
		Gesture: circlecrop.ScaleUpdate(2, 150, 150),
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	CropEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != circlecrop.EventTransformReset || e.Transform.TranslateY != 70 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != circlecrop.EventGesture || e.Gesture.Factor != 2 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_FromCropper(t *testing.T) {
	world := donburi.NewWorld()
	c := circlecrop.New(circlecrop.Options{})
	c.SetEventStore(NewDonburiStore(world))

	var scales []float64
	CropEventType.Subscribe(world, func(w donburi.World, e circlecrop.CropEvent) {
		scales = append(scales, e.Transform.Scale)
	})

	c.OnViewportResized(300, 300)
	c.SetSourceImage(image.NewNRGBA(image.Rect(0, 0, 400, 400)))
	c.OnScaleGesture(1.5, 150, 150)
	CropEventType.ProcessEvents(world)

	if len(scales) != 2 {
		t.Fatalf("expected 2 events, got %d", len(scales))
	}
	if scales[0] != 0.6 || scales[1] < 0.89 || scales[1] > 0.91 {
		t.Errorf("scales = %v, want [0.6 0.9]", scales)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	CropEventType.Subscribe(world, func(w donburi.World, e circlecrop.CropEvent) {
		count1++
	})
	CropEventType.Subscribe(world, func(w donburi.World, e circlecrop.CropEvent) {
		count2++
	})

	store.EmitEvent(circlecrop.CropEvent{Type: circlecrop.EventImageUnloaded})
	CropEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
