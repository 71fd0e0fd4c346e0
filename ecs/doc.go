// Package ecs provides ECS adapters for strobe's run lifecycle events.
//
// The primary adapter is [NewDonburiSink], which forwards transition events
// (started, completed, cancelled) into a [Donburi] world as typed events.
// Subscribe to [TransitionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl := strobe.NewController(stage, strobe.WithEvents(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
