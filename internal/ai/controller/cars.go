package controller

import (
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/tactics"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/rs/zerolog"
)

// CarController moves every car of the faction that still has movement
type CarController struct {
	logger zerolog.Logger
}

// NewCarController creates a new car controller
func NewCarController(logger zerolog.Logger) *CarController {
	return &CarController{
		logger: logger.With().Str("component", "CarController").Logger(),
	}
}

// Run orders each movable car: refuel when low, otherwise hunt the best enemy
// warrior, otherwise drift to the best neighbour
func (cc *CarController) Run(r *tactics.Round) Tally {
	tally := make(Tally)
	w := r.World()
	cfg := r.Config()

	for _, id := range r.MyCars {
		if !w.CanMove(id) {
			continue
		}
		u := w.Unit(id)
		d, why := core.NoMove, Idle

		if w.Status(r.Me) < cfg.MaxStatus {
			if u.Fuel < cfg.MinFuel {
				d, why = r.NearestFuel(u.Pos), Refuel
			}
			if d == core.NoMove {
				d, why = r.FindTarget(u.Pos), Hunt
			}
		}
		if d == core.NoMove {
			d, why = r.MostImprovedDirection(u.Pos, core.Car), Improve
			if d == core.NoMove {
				why = Idle
			}
		}

		r.Move(id, d)
		tally[why]++
		cc.logger.Debug().Int("unit_id", id).Str("pos", u.Pos.String()).Int("fuel", u.Fuel).Str("dir", d.String()).Stringer("decision", why).Msg("Car ordered")
	}
	return tally
}
