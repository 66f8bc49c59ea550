// Package ecs provides ECS adapters for circlecrop's transform events.
//
// The primary adapter is [NewDonburiStore], which bridges crop events
// (reset, refit, gesture, unload) into a [Donburi] world as typed events.
// Subscribe to [CropEventType] in your ECS systems to receive them, for
// example to keep an avatar preview entity in sync with the crop widget.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	cropper.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
