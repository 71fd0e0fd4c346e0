package strobe

// TransitionEventType identifies a run lifecycle notification.
type TransitionEventType uint8

const (
	TransitionStarted   TransitionEventType = iota // movers materialized and scheduled
	TransitionCompleted                            // last mover finished its exit
	TransitionCancelled                            // run torn down before completing
)

func (t TransitionEventType) String() string {
	switch t {
	case TransitionStarted:
		return "started"
	case TransitionCompleted:
		return "completed"
	case TransitionCancelled:
		return "cancelled"
	}
	return "unknown"
}

// TransitionEvent describes one run lifecycle change.
type TransitionEvent struct {
	Type    TransitionEventType
	RunID   string
	Movers  int     // movers created for the run
	Elapsed float64 // seconds since the run started
}

// EventSink receives run lifecycle events. The ecs package provides a
// Donburi-backed implementation.
type EventSink interface {
	EmitTransition(event TransitionEvent)
}

// EventLog is an EventSink that records events in memory.
type EventLog struct {
	Events []TransitionEvent
}

// EmitTransition appends event to the log.
func (l *EventLog) EmitTransition(event TransitionEvent) {
	l.Events = append(l.Events, event)
}

// Count returns how many recorded events have the given type.
func (l *EventLog) Count(typ TransitionEventType) int {
	n := 0
	for _, e := range l.Events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
