package ecs

import (
	"github.com/phanxgames/circlecrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CropEventType is the Donburi event type for circlecrop transform events.
var CropEventType = events.NewEventType[circlecrop.CropEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Crop
// events are published to CropEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) circlecrop.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event circlecrop.CropEvent) {
	CropEventType.Publish(s.world, event)
}
