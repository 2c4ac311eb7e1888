package core

// Relocate moves u to an empty cell and keeps board occupancy in sync.
// The caller has already resolved whatever stood on the destination.
func Relocate(b *Board, u *Unit, to Position) {
	if from := b.GetCell(u.Pos); from != nil && from.UnitID == u.ID {
		from.UnitID = NoUnit
	}
	u.Pos = to
	b.Cells[to.Index()].UnitID = u.ID
}

// Place puts a unit onto the board at its own position
func Place(b *Board, u Unit) {
	b.Cells[u.Pos.Index()].UnitID = u.ID
}

// Remove clears the unit from its cell
func Remove(b *Board, u Unit) {
	if c := b.GetCell(u.Pos); c != nil && c.UnitID == u.ID {
		c.UnitID = NoUnit
	}
}
