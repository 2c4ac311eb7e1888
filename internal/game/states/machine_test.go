package states

import (
	"testing"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPhase_Transitions(t *testing.T) {
	tests := []struct {
		from, to MatchPhase
		allowed  bool
	}{
		{PhaseStarting, PhaseRunning, true},
		{PhaseStarting, PhaseEnded, false},
		{PhaseRunning, PhaseEnded, true},
		{PhaseRunning, PhaseError, true},
		{PhaseEnded, PhaseRunning, false},
		{PhaseError, PhaseRunning, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMatchPhase_Predicates(t *testing.T) {
	assert.True(t, PhaseRunning.CanReceiveCommands())
	assert.False(t, PhaseStarting.CanReceiveCommands())
	assert.True(t, PhaseEnded.IsTerminal())
	assert.True(t, PhaseError.IsTerminal())
	assert.False(t, PhaseRunning.IsTerminal())
	assert.Equal(t, "Unknown(9)", MatchPhase(9).String())
}

func TestStateMachine_TransitionTo_RecordsHistory(t *testing.T) {
	sm := NewStateMachine("m1", testutil.NopLogger())
	assert.Equal(t, PhaseStarting, sm.CurrentPhase())

	require.NoError(t, sm.TransitionTo(PhaseRunning, "units placed"))
	require.NoError(t, sm.TransitionTo(PhaseEnded, "round limit"))
	assert.Equal(t, PhaseEnded, sm.CurrentPhase())

	history := sm.GetHistory()
	require.Len(t, history, 2)
	assert.Equal(t, PhaseStarting, history[0].From)
	assert.Equal(t, PhaseRunning, history[0].To)
	assert.Equal(t, "round limit", history[1].Reason)
}

func TestStateMachine_TransitionTo_RejectsInvalid(t *testing.T) {
	sm := NewStateMachine("m1", testutil.NopLogger())
	err := sm.TransitionTo(PhaseEnded, "too early")
	assert.EqualError(t, err, "invalid transition from Starting to Ended")
	assert.Equal(t, PhaseStarting, sm.CurrentPhase())
	assert.Empty(t, sm.GetHistory())
}
