package rules

import (
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// UnitLookup resolves a unit ID to the unit, reporting false for unknown IDs
type UnitLookup func(id int) (core.Unit, bool)

// CommandValidator checks move orders against the board and unit state
type CommandValidator struct {
	units UnitLookup
}

// NewCommandValidator creates a new command validator
func NewCommandValidator(units UnitLookup) *CommandValidator {
	return &CommandValidator{units: units}
}

// Validate returns nil when cmd may be applied this round.
// canMove reports whether a car still has its movement for the round.
// Moving onto an enemy warrior is legal and resolved as combat; any other
// occupied destination is rejected.
func (cv *CommandValidator) Validate(b *core.Board, cmd core.Command, canMove bool) error {
	u, ok := cv.units(cmd.UnitID)
	if !ok {
		return core.ErrUnknownUnit
	}
	if err := cmd.Validate(b, u); err != nil {
		return err
	}

	if u.Type == core.Car && (!canMove || u.Fuel <= 0) {
		return core.ErrNoMovementLeft
	}

	target := b.Cell(u.Pos.Add(cmd.Dir))
	if target.IsEmpty() {
		return nil
	}
	occupant, ok := cv.units(target.UnitID)
	if !ok {
		return core.ErrOccupied
	}
	if occupant.Player == u.Player || occupant.Type == core.Car {
		return core.ErrOccupied
	}
	return nil
}
