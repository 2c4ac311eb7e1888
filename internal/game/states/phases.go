package states

import "fmt"

// MatchPhase represents the current phase of a match
type MatchPhase int

const (
	// PhaseStarting - board and units are being set up
	PhaseStarting MatchPhase = iota

	// PhaseRunning - rounds are being played
	PhaseRunning

	// PhaseEnded - the round limit was reached
	PhaseEnded

	// PhaseError - a round failed and the match cannot continue
	PhaseError
)

// String returns the string representation of a MatchPhase
func (p MatchPhase) String() string {
	switch p {
	case PhaseStarting:
		return "Starting"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	case PhaseError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p MatchPhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseError
}

// CanReceiveCommands returns true if rounds may be played in this phase
func (p MatchPhase) CanReceiveCommands() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p MatchPhase) AllowedTransitions() []MatchPhase {
	switch p {
	case PhaseStarting:
		return []MatchPhase{PhaseRunning, PhaseError}
	case PhaseRunning:
		return []MatchPhase{PhaseEnded, PhaseError}
	default:
		return []MatchPhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p MatchPhase) CanTransitionTo(target MatchPhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
