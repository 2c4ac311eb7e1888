package tactics

import (
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/fields"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// AdjacentEnemy returns the first direction holding an enemy warrior
func (r *Round) AdjacentEnemy(start core.Position) core.Direction {
	for _, d := range core.Directions {
		p := start.Add(d)
		if p.IsValid() && r.isEnemyWarrior(p) {
			return d
		}
	}
	return core.NoMove
}

// descend returns the first safe neighbour strictly closer to a source of f
func (r *Round) descend(start core.Position, f *fields.Grid, kind core.UnitType) core.Direction {
	here := f.At(start)
	for _, d := range core.Directions {
		p := start.Add(d)
		if r.IsSafe(p, kind) && f.At(p) < here {
			return d
		}
	}
	return core.NoMove
}

// NearestWater steps a warrior toward the closest water
func (r *Round) NearestWater(start core.Position) core.Direction {
	return r.descend(start, r.static.Fields.Water, core.Warrior)
}

// NearestCity steps a warrior toward the closest city cell
func (r *Round) NearestCity(start core.Position) core.Direction {
	return r.descend(start, r.static.Fields.City, core.Warrior)
}

// NearestFuel steps a car to the safe neighbour with the lowest fuel distance,
// preferring Road on ties. Neighbours no station can be reached from are skipped.
func (r *Round) NearestFuel(start core.Position) core.Direction {
	f := r.static.Fields.Fuel
	best := core.NoMove
	bestDist := fields.Unreachable
	for _, d := range core.Directions {
		p := start.Add(d)
		if !r.IsSafe(p, core.Car) {
			continue
		}
		dist := f.At(p)
		if dist < bestDist || (dist == bestDist && best != core.NoMove && r.world.Cell(p).IsRoad()) {
			best, bestDist = d, dist
		}
	}
	return best
}

// CityToConquer steps a warrior toward the closest city cell we do not own.
// Returns NoMove when every city is ours.
func (r *Round) CityToConquer(start core.Position) core.Direction {
	target := core.NewPosition(-1, -1)
	minDist := fields.Unreachable
	for _, group := range r.static.Cities.Groups {
		for _, p := range group {
			if r.world.Cell(p).Owner == r.Me {
				continue
			}
			if d := start.Distance(p); d < minDist {
				target, minDist = p, d
			}
		}
	}
	if !target.IsValid() {
		return core.NoMove
	}

	for _, d := range core.Directions {
		p := start.Add(d)
		if r.IsSafe(p, core.Warrior) && p.Distance(target) < minDist {
			return d
		}
	}
	return core.NoMove
}

// RepositionInCity looks for a free neighbouring City cell with no enemy
// warrior next to it. Only one direction is ever returned.
func (r *Round) RepositionInCity(start core.Position) core.Direction {
	for _, d := range core.Directions {
		p := start.Add(d)
		if !p.IsValid() || !r.world.Cell(p).IsCity() {
			continue
		}
		if !r.world.Cell(p).IsEmpty() || r.MovedInto(p) {
			continue
		}
		if r.AdjacentEnemy(p) == core.NoMove {
			return d
		}
	}
	return core.NoMove
}

// SoleDefender reports whether the warrior at p is the only one of ours
// inside its city group
func (r *Round) SoleDefender(p core.Position) bool {
	g := r.static.Cities.GroupOf(p)
	if g < 0 {
		return false
	}
	return r.Cities.AlliesInCity[g] == 1
}

// Aggressive is true when another faction outscores us or we hold fewer
// than MinCityGroups city groups
func (r *Round) Aggressive() bool {
	mine := r.world.TotalScore(r.Me)
	n := r.world.NumPlayers()
	for i := 1; i < n; i++ {
		if r.world.TotalScore((r.Me+i)%n) > mine {
			return true
		}
	}
	return r.Cities.NumOwned < r.cfg.MinCityGroups
}
