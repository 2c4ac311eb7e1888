package tactics

import (
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/fields"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// CanGo reports whether a unit of the given kind may stand on p
func (r *Round) CanGo(p core.Position, kind core.UnitType) bool {
	if !p.IsValid() {
		return false
	}
	return r.world.Cell(p).CanEnter(kind)
}

// NearestEnemyCar returns the closest enemy car and its distance from p.
// Without enemy cars the distance is fields.Unreachable.
func (r *Round) NearestEnemyCar(p core.Position) (core.Position, int) {
	best := core.NewPosition(-1, -1)
	bestDist := fields.Unreachable
	for _, q := range r.enemyCarPos {
		if d := p.Distance(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best, bestDist
}

// IsSafe is the single safety gate of every movement heuristic: p must be
// enterable by kind, free of our units, not already claimed this round, and
// far enough from every enemy car.
func (r *Round) IsSafe(p core.Position, kind core.UnitType) bool {
	if !r.CanGo(p, kind) {
		return false
	}
	if r.isFriendly(p) || r.MovedInto(p) {
		return false
	}

	_, dist := r.NearestEnemyCar(p)
	if kind == core.Car {
		return dist >= r.cfg.CarSafetyDistance
	}
	return dist >= r.cfg.EnemyCarRange
}

// EnemyCarPressure decays linearly with distance to each enemy car in range
func (r *Round) EnemyCarPressure(p core.Position) int {
	rng := r.cfg.EnemyCarRange
	count := 0
	for _, q := range r.enemyCarPos {
		if d := p.Distance(q); d <= rng {
			count += r.cfg.CarPressureWeight * (rng - d)
		}
	}
	return count
}

// EnemyWarriorDensity counts enemy warriors in the square around p.
// Warriors outside cities weigh more since a car can actually reach them.
func (r *Round) EnemyWarriorDensity(p core.Position) int {
	rad := r.cfg.AccumulationRadius
	count := 0
	for dr := -rad; dr <= rad; dr++ {
		for dc := -rad; dc <= rad; dc++ {
			q := core.NewPosition(p.Row+dr, p.Col+dc)
			if !q.IsValid() || !r.isEnemyWarrior(q) {
				continue
			}
			if r.world.Cell(q).Type == core.City {
				count += r.cfg.DensityCity
			} else {
				count += r.cfg.DensityOpen
			}
		}
	}
	return count
}

// Score combines the static desirability of p with live enemy pressure
func (r *Round) Score(p core.Position, kind core.UnitType) int {
	base := r.static.Desirability.For(kind).At(p)
	if kind == core.Car {
		return base + r.EnemyWarriorDensity(p)
	}
	return base - r.EnemyCarPressure(p)
}

// MostImprovedDirection picks the best scoring safe neighbour. The first safe
// neighbour is always taken; equal scores are settled by a coin flip.
func (r *Round) MostImprovedDirection(start core.Position, kind core.UnitType) core.Direction {
	best := core.NoMove
	bestScore := r.Score(start, kind)
	for _, d := range core.Directions {
		p := start.Add(d)
		if !r.IsSafe(p, kind) {
			continue
		}
		s := r.Score(p, kind)
		if best == core.NoMove || s > bestScore || (s == bestScore && r.world.RandomBool()) {
			best, bestScore = d, s
		}
	}
	return best
}
