package processor

import (
	"context"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/rules"
	"github.com/rs/zerolog"
)

// Move records a unit that changed cells
type Move struct {
	PlayerID int
	UnitID   int
	From     core.Position
	To       core.Position
}

// Kill records a unit removed by combat
type Kill struct {
	UnitID   int
	Victim   int
	KilledBy int
	At       core.Position
}

// Result collects what happened while applying one round of commands
type Result struct {
	Moves    []Move
	Kills    []Kill
	Rejected []error
}

// CommandProcessor applies move commands to the board and resolves combat
type CommandProcessor struct {
	damage int
	logger zerolog.Logger
}

// NewCommandProcessor creates a new command processor.
// damage is the food and water a warrior loses when attacked by a warrior.
func NewCommandProcessor(damage int, logger zerolog.Logger) *CommandProcessor {
	return &CommandProcessor{
		damage: damage,
		logger: logger.With().Str("component", "CommandProcessor").Logger(),
	}
}

// ProcessCommands applies cmds in the given order. units is indexed by ID and
// updated in place; killed units are taken off the board and left for the
// caller to respawn. canMove reports the car movement allowance.
// Rejected commands are returned wrapped in core.CommandError.
func (cp *CommandProcessor) ProcessCommands(ctx context.Context, board *core.Board, units []core.Unit, cmds []core.Command, canMove func(id int) bool) (Result, error) {
	var res Result
	dead := make(map[int]bool)

	validator := rules.NewCommandValidator(func(id int) (core.Unit, bool) {
		if id < 0 || id >= len(units) || dead[id] {
			return core.Unit{}, false
		}
		return units[id], true
	})

	for _, cmd := range cmds {
		select {
		case <-ctx.Done():
			cp.logger.Warn().Err(ctx.Err()).Msg("Command processing interrupted by context cancellation")
			return res, ctx.Err()
		default:
		}

		if dead[cmd.UnitID] {
			cp.logger.Debug().Int("unit_id", cmd.UnitID).Msg("Ignoring command for unit killed this round")
			continue
		}

		if err := validator.Validate(board, cmd, canMove(cmd.UnitID)); err != nil {
			wrappedErr := core.WrapCommandError(cmd, err)
			cp.logger.Warn().Err(wrappedErr).Int("player_id", cmd.PlayerID).Msg("Rejected command")
			res.Rejected = append(res.Rejected, wrappedErr)
			continue
		}

		u := &units[cmd.UnitID]
		to := u.Pos.Add(cmd.Dir)
		target := board.Cell(to)

		if !target.IsEmpty() {
			defender := &units[target.UnitID]
			if !cp.attack(u, defender) {
				continue
			}
			core.Remove(board, *defender)
			dead[defender.ID] = true
			res.Kills = append(res.Kills, Kill{UnitID: defender.ID, Victim: defender.Player, KilledBy: u.Player, At: to})
			cp.logger.Debug().
				Int("unit_id", defender.ID).
				Int("killed_by", u.Player).
				Str("at", to.String()).
				Msg("Unit killed")
		}

		from := u.Pos
		core.Relocate(board, u, to)
		res.Moves = append(res.Moves, Move{PlayerID: u.Player, UnitID: u.ID, From: from, To: to})
	}

	return res, nil
}

// attack resolves one unit moving onto an enemy warrior and reports whether
// the defender died. A car kills outright; a warrior deals damage.
func (cp *CommandProcessor) attack(attacker, defender *core.Unit) bool {
	if attacker.Type == core.Car {
		return true
	}
	defender.Food -= cp.damage
	defender.Water -= cp.damage
	return defender.Stamina() <= 0
}
