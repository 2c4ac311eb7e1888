package controller

import (
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/tactics"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/rs/zerolog"
)

// WarriorController moves every warrior of the faction once per round slot
type WarriorController struct {
	logger zerolog.Logger
}

// NewWarriorController creates a new warrior controller
func NewWarriorController(logger zerolog.Logger) *WarriorController {
	return &WarriorController{
		logger: logger.With().Str("component", "WarriorController").Logger(),
	}
}

// Run orders each warrior. Warriors only act on rounds where
// round mod players equals our faction.
func (wc *WarriorController) Run(r *tactics.Round) Tally {
	tally := make(Tally)
	w := r.World()
	if w.Round()%w.NumPlayers() != r.Me {
		return tally
	}

	aggressive := r.Aggressive()
	wc.logger.Debug().Int("round", w.Round()).Bool("aggressive", aggressive).Int("warriors", len(r.MyWarriors)).Msg("Moving warriors")

	for _, id := range r.MyWarriors {
		u := w.Unit(id)
		d, why := core.NoMove, Idle
		if w.Status(r.Me) < r.Config().MaxStatus {
			d, why = wc.decide(r, u, aggressive)
		}
		if d == core.NoMove {
			d, why = r.MostImprovedDirection(u.Pos, core.Warrior), Improve
			if d == core.NoMove {
				why = Idle
			}
		}

		r.Move(id, d)
		tally[why]++
		wc.logger.Debug().Int("unit_id", id).Str("pos", u.Pos.String()).Str("dir", d.String()).Stringer("decision", why).Msg("Warrior ordered")
	}
	return tally
}

// decide walks the warrior decision tree and returns the first move found
func (wc *WarriorController) decide(r *tactics.Round, u core.Unit, aggressive bool) (core.Direction, Decision) {
	w := r.World()
	cfg := r.Config()
	inCity := w.Cell(u.Pos).IsCity()

	// Enemy cars are spotted from twice as far next to a road
	_, carDist := r.NearestEnemyCar(u.Pos)
	danger := cfg.EnemyCarRange
	if r.Static().Fields.Road.At(u.Pos) < 2 {
		danger *= 2
	}
	if carDist < danger {
		if !inCity {
			if d := r.NearestCity(u.Pos); d != core.NoMove {
				return d, Escape
			}
		} else if adj := r.AdjacentEnemy(u.Pos); adj != core.NoMove {
			enemy := w.Unit(w.Cell(u.Pos.Add(adj)).UnitID)
			if u.Stamina() > enemy.Stamina() {
				return adj, Fight
			}
			if d := r.RepositionInCity(u.Pos); d != core.NoMove {
				return d, Escape
			}
			return adj, Fight
		}
	}

	if adj := r.AdjacentEnemy(u.Pos); adj != core.NoMove {
		return adj, Fight
	}

	if u.Water < cfg.MinWater {
		if d := r.NearestWater(u.Pos); d != core.NoMove {
			return d, Water
		}
	}

	if cfg.SeekFood && u.Food < cfg.MinFood && !inCity {
		if d := r.NearestCity(u.Pos); d != core.NoMove {
			return d, Food
		}
	}

	if aggressive && (!inCity || !r.SoleDefender(u.Pos)) {
		if d := r.CityToConquer(u.Pos); d != core.NoMove {
			return d, Conquer
		}
	}
	return core.NoMove, Idle
}
