package core

// Snapshot is the read-only view of the world a faction gets every round.
// Positions passed to Cell must satisfy IsValid.
type Snapshot interface {
	// Me is the faction being controlled
	Me() int
	NumPlayers() int
	Round() int

	Cell(p Position) Cell
	Unit(id int) Unit
	Warriors(player int) []int
	Cars(player int) []int

	TotalScore(player int) int
	// Status is the fraction of the player's compute allowance already used
	Status(player int) float64
	// CanMove reports whether a car still has movement this round
	CanMove(id int) bool
	RandomBool() bool
}

// Commander accepts single-step move orders. A later order for the same unit
// in the same round replaces the earlier one.
type Commander interface {
	Command(id int, d Direction)
}

// World is everything the decision engine needs from the simulation
type World interface {
	Snapshot
	Commander
}
