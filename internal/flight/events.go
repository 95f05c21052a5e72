package flight

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventRunStarted EventType = iota
	EventFlap
	EventSpawned
	EventScored
	EventCollision
	EventGroundHit
	EventRunEnded
	EventQuit
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventRunStarted:
		return "run_started"
	case EventFlap:
		return "flap"
	case EventSpawned:
		return "spawned"
	case EventScored:
		return "scored"
	case EventCollision:
		return "collision"
	case EventGroundHit:
		return "ground_hit"
	case EventRunEnded:
		return "run_ended"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a single occurrence within a tick.
type Event struct {
	Type  EventType
	Tick  int
	Value int // Score for scoring/run events, slot index for spawns, character Y for flaps
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	Phase  Phase
	Score  int
	Quit   bool // The process should exit
	Events []Event
}

// Has returns true if an event of the given type happened during the tick.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
