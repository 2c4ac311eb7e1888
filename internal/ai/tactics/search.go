package tactics

import (
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/fields"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// TargetResult describes the outcome of one car target search
type TargetResult struct {
	Found bool
	// Target is the chosen enemy warrior cell
	Target core.Position
	// Cost is the search cost of reaching Target
	Cost int
	// Density is the enemy warrior density around Target
	Density int
	// Step is the first move toward Target, NoMove when the path is lost
	Step core.Direction
	// Settled counts the cells expanded by the search
	Settled int
}

// IsBetter is the candidate acceptance rule of the target search. It is not
// transitive, so results depend on the order candidates are settled in.
func IsBetter(dist, density, bestDist, bestDensity int) bool {
	if dist <= bestDist && density >= bestDensity {
		return true
	}
	return density >= 2*bestDensity && dist < 2*bestDist
}

// AlreadyAttackedNear reports whether p lies within the accumulation radius of
// a target chosen earlier this round
func (r *Round) AlreadyAttackedNear(p core.Position) bool {
	for _, q := range r.attacked {
		if p.Distance(q) < r.cfg.AccumulationRadius {
			return true
		}
	}
	return false
}

// FindTarget returns the first step toward the best enemy warrior a car at
// start can reach, or NoMove
func (r *Round) FindTarget(start core.Position) core.Direction {
	return r.SearchTarget(start).Step
}

// SearchTarget runs a cost-ordered expansion from start over the car graph and
// picks the best enemy warrior it settles. The chosen target is recorded as
// attacked even when no first step can be derived.
func (r *Round) SearchTarget(start core.Position) TargetResult {
	res := TargetResult{Step: core.NoMove}
	dist := fields.NewGrid(fields.Unreachable)
	dist.Set(start, 0)

	q := fields.NewQueue()
	q.Push(0, start)

	for q.Len() > 0 {
		it := q.Pop()
		p := it.Pos
		if it.Cost != dist.At(p) {
			continue
		}
		res.Settled++

		if r.isEnemyWarrior(p) && !r.AlreadyAttackedNear(p) {
			density := r.EnemyWarriorDensity(p)
			if r.static.Fields.Road.At(p) < r.cfg.MaxDistRoad {
				if !res.Found || IsBetter(it.Cost, density, res.Cost, res.Density) {
					res.Found = true
					res.Target = p
					res.Cost = it.Cost
					res.Density = density
				}
			}
		}

		next := it.Cost + fields.RoadCost(r.world.Cell(p))
		if next >= r.cfg.CarRange {
			continue
		}
		for _, p2 := range p.Neighbors() {
			if !r.CanGo(p2, core.Car) {
				continue
			}
			if !r.IsSafe(p2, core.Car) && start.Distance(p2) <= r.cfg.SearchSafetyRadius {
				continue
			}
			if dist.Lower(p2, next) {
				q.Push(next, p2)
			}
		}
	}

	if !res.Found {
		return res
	}
	r.attacked = append(r.attacked, res.Target)
	res.Step = r.firstStep(start, res.Target, dist)

	r.logger.Debug().
		Str("start", start.String()).
		Str("target", res.Target.String()).
		Int("cost", res.Cost).
		Int("density", res.Density).
		Str("step", res.Step.String()).
		Msg("Car target chosen")
	return res
}

// firstStep walks back from target along the lowest recorded costs until it is
// next to start. The walk is bounded by the search's cost ceiling.
func (r *Round) firstStep(start, target core.Position, dist *fields.Grid) core.Direction {
	p := target
	for steps := 0; p.Distance(start) > 1; steps++ {
		if steps > r.cfg.CarRange {
			return core.NoMove
		}
		nextDist := fields.Unreachable
		nextPos := p
		for _, p2 := range p.Neighbors() {
			if !p2.IsValid() {
				continue
			}
			d := dist.At(p2)
			if d < nextDist || (d == nextDist && r.world.Cell(p2).IsRoad()) {
				nextDist, nextPos = d, p2
			}
		}
		if nextPos == p || nextDist == fields.Unreachable {
			return core.NoMove
		}
		p = nextPos
	}
	return start.DirectionTo(p)
}
