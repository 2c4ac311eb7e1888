package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Transition represents a state transition in the history
type Transition struct {
	From      MatchPhase
	To        MatchPhase
	Timestamp time.Time
	Reason    string
}

// StateMachine tracks the phase of one match and its transition history
type StateMachine struct {
	mu           sync.RWMutex
	currentPhase MatchPhase
	history      []Transition
	logger       zerolog.Logger
}

// NewStateMachine creates a state machine in PhaseStarting
func NewStateMachine(matchID string, logger zerolog.Logger) *StateMachine {
	return &StateMachine{
		currentPhase: PhaseStarting,
		history:      make([]Transition, 0, 4),
		logger:       logger.With().Str("component", "StateMachine").Str("match_id", matchID).Logger(),
	}
}

// CurrentPhase returns the current match phase
func (sm *StateMachine) CurrentPhase() MatchPhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo attempts to transition to the specified phase
func (sm *StateMachine) TransitionTo(targetPhase MatchPhase, reason string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.currentPhase.CanTransitionTo(targetPhase) {
		return fmt.Errorf("invalid transition from %s to %s", sm.currentPhase, targetPhase)
	}

	sm.history = append(sm.history, Transition{
		From:      sm.currentPhase,
		To:        targetPhase,
		Timestamp: time.Now(),
		Reason:    reason,
	})
	previousPhase := sm.currentPhase
	sm.currentPhase = targetPhase

	sm.logger.Info().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}
