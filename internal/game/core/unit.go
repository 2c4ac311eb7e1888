package core

import "fmt"

// UnitType distinguishes foot units from vehicles
type UnitType int

const (
	Warrior UnitType = iota
	Car
)

func (t UnitType) String() string {
	switch t {
	case Warrior:
		return "warrior"
	case Car:
		return "car"
	default:
		return fmt.Sprintf("UnitType(%d)", int(t))
	}
}

// Unit is a snapshot of one unit. Cars only use Fuel; warriors use Food and Water.
type Unit struct {
	ID     int
	Player int
	Type   UnitType
	Pos    Position
	Food   int
	Water  int
	Fuel   int
}

// Stamina is the weaker of a warrior's two vital resources
func (u Unit) Stamina() int {
	if u.Food < u.Water {
		return u.Food
	}
	return u.Water
}
