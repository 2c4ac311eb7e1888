package core

// Command is a single-step move order for one unit
type Command struct {
	PlayerID int
	UnitID   int
	Dir      Direction
}

// Validate checks the command against the board and the unit it moves.
// Movement allowance for cars is checked by the rules package.
func (c Command) Validate(b *Board, u Unit) error {
	if u.ID != c.UnitID {
		return ErrUnknownUnit
	}
	if u.Player != c.PlayerID {
		return ErrNotOwner
	}
	if !c.Dir.IsMove() {
		return ErrInvalidDirection
	}

	to := u.Pos.Add(c.Dir)
	if !to.IsValid() {
		return ErrInvalidPosition
	}

	target := b.Cell(to)
	if !target.CanEnter(u.Type) {
		return ErrImpassable
	}
	return nil
}
