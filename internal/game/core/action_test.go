package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test naming convention: TestFunction_Scenario_ExpectedBehavior
func TestCommand_ValidateBasicMove_Success(t *testing.T) {
	// Arrange
	board := NewBoard()
	u := Unit{ID: 7, Player: 1, Type: Warrior, Pos: NewPosition(5, 5)}

	// Act
	err := Command{PlayerID: 1, UnitID: 7, Dir: East}.Validate(board, u)

	// Assert
	assert.NoError(t, err, "Valid move should not return error")
}

func TestCommand_Validate_Rejections(t *testing.T) {
	board := NewBoard()
	board.SetType(NewPosition(5, 6), City)
	board.SetType(NewPosition(4, 5), Water)

	warrior := Unit{ID: 1, Player: 0, Type: Warrior, Pos: NewPosition(5, 5)}
	car := Unit{ID: 2, Player: 0, Type: Car, Pos: NewPosition(5, 5)}
	corner := Unit{ID: 3, Player: 0, Type: Warrior, Pos: NewPosition(0, 0)}

	tests := []struct {
		name      string
		cmd       Command
		unit      Unit
		wantError error
	}{
		{"wrong unit", Command{PlayerID: 0, UnitID: 9, Dir: East}, warrior, ErrUnknownUnit},
		{"not owner", Command{PlayerID: 1, UnitID: 1, Dir: East}, warrior, ErrNotOwner},
		{"no move", Command{PlayerID: 0, UnitID: 1, Dir: NoMove}, warrior, ErrInvalidDirection},
		{"off board", Command{PlayerID: 0, UnitID: 3, Dir: North}, corner, ErrInvalidPosition},
		{"warrior into water", Command{PlayerID: 0, UnitID: 1, Dir: North}, warrior, ErrImpassable},
		{"car into city", Command{PlayerID: 0, UnitID: 2, Dir: East}, car, ErrImpassable},
		{"warrior into city", Command{PlayerID: 0, UnitID: 1, Dir: East}, warrior, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate(board, tt.unit)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
