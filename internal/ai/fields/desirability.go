package fields

import "github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"

// Impassable is the desirability of a cell the unit kind cannot enter
const Impassable = -1

var gridCenter = core.NewPosition(30, 30)

// Desirability holds static per-cell scores for each unit kind
type Desirability struct {
	Warrior *Grid
	Car     *Grid
}

// For returns the map used by the given unit kind
func (d *Desirability) For(kind core.UnitType) *Grid {
	if kind == core.Car {
		return d.Car
	}
	return d.Warrior
}

// ComputeDesirability derives both maps from the distance fields
func ComputeDesirability(t Terrain, f *Fields) *Desirability {
	d := &Desirability{Warrior: NewGrid(0), Car: NewGrid(0)}
	for idx := 0; idx < core.GridSize*core.GridSize; idx++ {
		p := core.FromIndex(idx)
		c := t.Cell(p)
		d.Warrior[idx] = warriorScore(p, c, f)
		d.Car[idx] = carScore(p, c, f)
	}
	return d
}

// warriorScore favours cities and cells near both water and cities
func warriorScore(p core.Position, c core.Cell, f *Fields) int {
	if !c.WarriorCanEnter() {
		return Impassable
	}
	dCity, dWater := f.City.At(p), f.Water.At(p)

	w := 0
	if c.Type == core.City {
		w += 25
	}
	if dWater < 5 {
		w += 5 - dWater
	}
	if dCity < 8 {
		w += 2 * (8 - dCity)
	}
	if dWater+dCity < 12 {
		w += 15
	}
	return w
}

// carScore keeps cars on roads, near but not inside cities, and away from the rim
func carScore(p core.Position, c core.Cell, f *Fields) int {
	if !c.CarCanEnter() {
		return Impassable
	}
	dCity, dWater, dRoad := f.City.At(p), f.Water.At(p), f.Road.At(p)

	s := 100 * (5 - dRoad)
	if dWater+dCity < 16 {
		s += 15
	}
	if dCity < 15 {
		s += 15 - dCity
	}
	if dCity < 3 {
		s -= 2 * (4 - dCity)
	}
	s += (30 - p.Distance(gridCenter)) / 3
	return s
}

// Static is everything computed once from the terrain at the first round
type Static struct {
	Fields       *Fields
	Desirability *Desirability
	Cities       *CityGroups
}

// NewStatic builds city groups, distance fields and desirability maps
func NewStatic(t Terrain) *Static {
	f := ComputeFields(t)
	return &Static{
		Fields:       f,
		Desirability: ComputeDesirability(t, f),
		Cities:       BuildCityGroups(t),
	}
}
