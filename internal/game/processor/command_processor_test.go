package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(units ...core.Unit) (*core.Board, []core.Unit) {
	b := testutil.BoardFromRows(
		".....",
		"..C..",
		".....",
	)
	for i := range units {
		units[i].ID = i
		core.Place(b, units[i])
	}
	return b, units
}

func allMobile(int) bool { return true }

func TestCommandProcessor_MovesUnit(t *testing.T) {
	b, units := setup(core.Unit{Player: 0, Type: core.Warrior, Pos: core.NewPosition(0, 0), Food: 10, Water: 10})
	cp := NewCommandProcessor(6, testutil.NopLogger())

	res, err := cp.ProcessCommands(context.Background(), b, units, []core.Command{{PlayerID: 0, UnitID: 0, Dir: core.SouthEast}}, allMobile)
	require.NoError(t, err)

	require.Len(t, res.Moves, 1)
	assert.Equal(t, core.NewPosition(1, 1), units[0].Pos)
	assert.Equal(t, 0, b.Cell(core.NewPosition(1, 1)).UnitID)
	assert.True(t, b.Cell(core.NewPosition(0, 0)).IsEmpty())
}

func TestCommandProcessor_WarriorCombat(t *testing.T) {
	t.Run("defender survives", func(t *testing.T) {
		b, units := setup(
			core.Unit{Player: 0, Type: core.Warrior, Pos: core.NewPosition(0, 0), Food: 10, Water: 10},
			core.Unit{Player: 1, Type: core.Warrior, Pos: core.NewPosition(0, 1), Food: 10, Water: 8},
		)
		cp := NewCommandProcessor(6, testutil.NopLogger())
		res, err := cp.ProcessCommands(context.Background(), b, units, []core.Command{{PlayerID: 0, UnitID: 0, Dir: core.East}}, allMobile)
		require.NoError(t, err)

		assert.Empty(t, res.Kills)
		assert.Empty(t, res.Moves)
		assert.Equal(t, 4, units[1].Food)
		assert.Equal(t, 2, units[1].Water)
		assert.Equal(t, core.NewPosition(0, 0), units[0].Pos)
	})

	t.Run("defender dies and attacker moves in", func(t *testing.T) {
		b, units := setup(
			core.Unit{Player: 0, Type: core.Warrior, Pos: core.NewPosition(0, 0), Food: 10, Water: 10},
			core.Unit{Player: 1, Type: core.Warrior, Pos: core.NewPosition(0, 1), Food: 20, Water: 5},
		)
		cp := NewCommandProcessor(6, testutil.NopLogger())
		res, err := cp.ProcessCommands(context.Background(), b, units, []core.Command{
			{PlayerID: 0, UnitID: 0, Dir: core.East},
			{PlayerID: 1, UnitID: 1, Dir: core.East},
		}, allMobile)
		require.NoError(t, err)

		require.Len(t, res.Kills, 1)
		assert.Equal(t, Kill{UnitID: 1, Victim: 1, KilledBy: 0, At: core.NewPosition(0, 1)}, res.Kills[0])
		assert.Equal(t, core.NewPosition(0, 1), units[0].Pos)
		assert.Equal(t, 0, b.Cell(core.NewPosition(0, 1)).UnitID)
		assert.Len(t, res.Moves, 1, "dead unit's own command is ignored")
	})
}

func TestCommandProcessor_CarRunsOverWarrior(t *testing.T) {
	b, units := setup(
		core.Unit{Player: 0, Type: core.Car, Pos: core.NewPosition(2, 0), Fuel: 50},
		core.Unit{Player: 1, Type: core.Warrior, Pos: core.NewPosition(2, 1), Food: 40, Water: 40},
	)
	cp := NewCommandProcessor(6, testutil.NopLogger())
	res, err := cp.ProcessCommands(context.Background(), b, units, []core.Command{{PlayerID: 0, UnitID: 0, Dir: core.East}}, allMobile)
	require.NoError(t, err)

	require.Len(t, res.Kills, 1)
	assert.Equal(t, core.NewPosition(2, 1), units[0].Pos)
	assert.Equal(t, 0, b.Cell(core.NewPosition(2, 1)).UnitID)
}

func TestCommandProcessor_RejectsIllegalCommands(t *testing.T) {
	b, units := setup(
		core.Unit{Player: 0, Type: core.Car, Pos: core.NewPosition(0, 1), Fuel: 50},
		core.Unit{Player: 0, Type: core.Warrior, Pos: core.NewPosition(0, 3), Food: 40, Water: 40},
	)
	cp := NewCommandProcessor(6, testutil.NopLogger())
	res, err := cp.ProcessCommands(context.Background(), b, units, []core.Command{
		{PlayerID: 0, UnitID: 0, Dir: core.SouthEast},
		{PlayerID: 1, UnitID: 1, Dir: core.East},
		{PlayerID: 0, UnitID: 0, Dir: core.East},
	}, func(int) bool { return false })
	require.NoError(t, err)

	require.Len(t, res.Rejected, 3)
	assert.ErrorIs(t, res.Rejected[0], core.ErrImpassable)
	assert.ErrorIs(t, res.Rejected[1], core.ErrNotOwner)
	assert.ErrorIs(t, res.Rejected[2], core.ErrNoMovementLeft)

	var cmdErr *core.CommandError
	require.True(t, errors.As(res.Rejected[1], &cmdErr))
	assert.Equal(t, 1, cmdErr.Cmd.UnitID)
	assert.Empty(t, res.Moves)
}

func TestCommandProcessor_StopsOnCancelledContext(t *testing.T) {
	b, units := setup(core.Unit{Player: 0, Type: core.Warrior, Pos: core.NewPosition(0, 0), Food: 10, Water: 10})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cp := NewCommandProcessor(6, testutil.NopLogger())
	_, err := cp.ProcessCommands(ctx, b, units, []core.Command{{PlayerID: 0, UnitID: 0, Dir: core.East}}, allMobile)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, core.NewPosition(0, 0), units[0].Pos)
}
