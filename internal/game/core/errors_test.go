package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapCommandError(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		err      error
		expected string
		isNil    bool
	}{
		{
			name:  "nil error returns nil",
			cmd:   Command{PlayerID: 1, UnitID: 4, Dir: East},
			err:   nil,
			isNil: true,
		},
		{
			name:     "impassable terrain",
			cmd:      Command{PlayerID: 1, UnitID: 4, Dir: East},
			err:      ErrImpassable,
			expected: "player 1: unit 4 move E: terrain is impassable for unit",
		},
		{
			name:     "not owner",
			cmd:      Command{PlayerID: 2, UnitID: 10, Dir: SouthWest},
			err:      ErrNotOwner,
			expected: "player 2: unit 10 move SW: unit not owned by player",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapCommandError(tt.cmd, tt.err)
			if tt.isNil {
				assert.Nil(t, wrapped)
				return
			}
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, tt.err))

			var cmdErr *CommandError
			require.True(t, errors.As(wrapped, &cmdErr))
			assert.Equal(t, tt.cmd, cmdErr.Cmd)
		})
	}
}

func TestWrapRoundError(t *testing.T) {
	assert.Nil(t, WrapRoundError(3, "commands", nil))

	wrapped := WrapRoundError(12, "commands", ErrMatchOver)
	require.Error(t, wrapped)
	assert.Equal(t, "round 12: commands: match is over", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrMatchOver)
}
