package ecs

import (
	"testing"

	"github.com/phanxgames/strobe"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitTransition(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []strobe.TransitionEvent
	TransitionEventType.Subscribe(world, func(w donburi.World, e strobe.TransitionEvent) {
		received = append(received, e)
	})

	sink.EmitTransition(strobe.TransitionEvent{Type: strobe.TransitionStarted, RunID: "a", Movers: 6})
	sink.EmitTransition(strobe.TransitionEvent{Type: strobe.TransitionCompleted, RunID: "a", Movers: 6, Elapsed: 1.09})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}

	TransitionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != strobe.TransitionStarted || received[0].RunID != "a" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != strobe.TransitionCompleted || received[1].Elapsed != 1.09 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ControllerRun(t *testing.T) {
	world := donburi.NewWorld()
	stage := strobe.NewStage()
	ctrl := strobe.NewController(stage, strobe.WithEvents(NewDonburiSink(world)))

	counts := make(map[strobe.TransitionEventType]int)
	TransitionEventType.Subscribe(world, func(w donburi.World, e strobe.TransitionEvent) {
		counts[e.Type]++
	})

	ctrl.SetSource(&strobe.RectAnchor{Rect: strobe.Rect{Width: 50, Height: 50}})
	ctrl.SetDestination(&strobe.RectAnchor{Rect: strobe.Rect{X: 300, Width: 50, Height: 50}})
	ctrl.SetActive(true)
	for i := 0; i < 120; i++ {
		stage.Timeline().Advance(1.0 / 60)
	}
	TransitionEventType.ProcessEvents(world)

	if counts[strobe.TransitionStarted] != 1 || counts[strobe.TransitionCompleted] != 1 {
		t.Errorf("counts = %v, want one start and one completion", counts)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	TransitionEventType.Subscribe(world, func(w donburi.World, e strobe.TransitionEvent) {
		count1++
	})
	TransitionEventType.Subscribe(world, func(w donburi.World, e strobe.TransitionEvent) {
		count2++
	})

	sink.EmitTransition(strobe.TransitionEvent{Type: strobe.TransitionCancelled})
	TransitionEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("counts: %d, %d", count1, count2)
	}
}
