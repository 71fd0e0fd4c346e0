package ecs

import (
	"github.com/phanxgames/strobe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for strobe run lifecycle
// events. Events are queued; call ProcessEvents from a system to deliver
// them.
var TransitionEventType = events.NewEventType[strobe.TransitionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) strobe.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTransition(event strobe.TransitionEvent) {
	TransitionEventType.Publish(s.world, event)
}
