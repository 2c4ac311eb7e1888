package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrNotOwner         = errors.New("unit not owned by player")
	ErrImpassable       = errors.New("terrain is impassable for unit")
	ErrOccupied         = errors.New("cell is occupied")
	ErrNoMovementLeft   = errors.New("unit has no movement left this round")
	ErrMatchOver        = errors.New("match is over")
	ErrInvalidPlayer    = errors.New("invalid player ID")
	ErrInvalidScenario  = errors.New("invalid scenario")
)

// CommandError carries the command that failed alongside the cause
type CommandError struct {
	Cmd Command
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("player %d: unit %d move %s: %v", e.Cmd.PlayerID, e.Cmd.UnitID, e.Cmd.Dir, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// WrapCommandError attaches command context to err. Returns nil for a nil err.
func WrapCommandError(cmd Command, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Cmd: cmd, Err: err}
}

// WrapRoundError attaches round and phase context to err. Returns nil for a nil err.
func WrapRoundError(round int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("round %d: %s: %w", round, phase, err)
}
