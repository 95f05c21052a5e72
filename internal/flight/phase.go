package flight

import "github.com/vovakirdan/egg-flight/internal/core"

// Phase is the top-level run state.
type Phase int

const (
	PhaseIntro    Phase = iota // Instructions shown, waiting for Enter
	PhasePlaying               // Simulation running
	PhaseGameOver              // Final score shown, waiting for Enter or Escape
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// transition is the result of applying one tick of input to a phase.
type transition int

const (
	stay    transition = iota // Remain in the current phase
	restart                   // Start a fresh run
	quit                      // Exit the process
)

// next decides the input-driven transition for a phase. Collisions are the
// only other transition and are raised by the simulation itself.
func (p Phase) next(in core.InputFrame) transition {
	if in.Has(core.ActionQuit) {
		return quit
	}
	if p != PhasePlaying && in.Has(core.ActionConfirm) {
		return restart
	}
	return stay
}
