package circlecrop

import "testing"

type mockStore struct {
	events []CropEvent
}

func (m *mockStore) EmitEvent(e CropEvent) {
	m.events = append(m.events, e)
}

func (m *mockStore) types() []CropEventType {
	out := make([]CropEventType, len(m.events))
	for i, e := range m.events {
		out[i] = e.Type
	}
	return out
}

func TestECSBridgeLifecycle(t *testing.T) {
	c := New(Options{})
	store := &mockStore{}
	c.SetEventStore(store)

	c.SetSourceImage(quadrantImage(600, 400))
	if len(store.events) != 0 {
		t.Fatalf("events before the viewport is sized: %v", store.types())
	}

	c.OnViewportResized(300, 300)
	c.OnPanGesture(5, 5)
	c.OnScaleGesture(0, 1, 1) // discarded
	c.OnViewportResized(400, 300)
	c.SetSourceImage(nil)

	want := []CropEventType{EventTransformReset, EventGesture, EventTransformRefit, EventImageUnloaded}
	got := store.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}

	reset := store.events[0]
	if !approxEqual(reset.Transform.Scale, 0.4, epsilon) || reset.Viewport != (Viewport{300, 300}) {
		t.Errorf("reset event = %+v", reset)
	}
	gesture := store.events[1]
	if gesture.Gesture.Kind != GesturePan || gesture.Gesture.DX != 5 {
		t.Errorf("gesture event = %+v", gesture)
	}
}

func TestECSBridgeDetached(t *testing.T) {
	c := New(Options{})
	store := &mockStore{}
	c.SetEventStore(store)
	c.SetEventStore(nil)
	c.OnViewportResized(300, 300)
	c.SetSourceImage(quadrantImage(600, 400))
	if len(store.events) != 0 {
		t.Errorf("detached store received %d events", len(store.events))
	}
}

func TestCropEventTypeString(t *testing.T) {
	tests := []struct {
		in   CropEventType
		want string
	}{
		{EventTransformReset, "reset"},
		{EventTransformRefit, "refit"},
		{EventGesture, "gesture"},
		{EventImageUnloaded, "unloaded"},
		{CropEventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
