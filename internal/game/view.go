package game

import (
	"time"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// View is the core.World handed to one player's strategy
type View struct {
	e      *Engine
	player int
}

var _ core.World = (*View)(nil)

func (v *View) Me() int         { return v.player }
func (v *View) NumPlayers() int { return len(v.e.ms.Players) }
func (v *View) Round() int      { return v.e.ms.Round }

func (v *View) Cell(p core.Position) core.Cell { return v.e.ms.Board.Cell(p) }
func (v *View) Unit(id int) core.Unit          { return v.e.ms.Units[id] }

func (v *View) Warriors(player int) []int { return v.e.ms.unitIDs(player, core.Warrior) }
func (v *View) Cars(player int) []int     { return v.e.ms.unitIDs(player, core.Car) }

func (v *View) TotalScore(player int) int { return v.e.ms.Players[player].Score }

// Status is the share of the match CPU budget the player has used,
// counting the strategy call in progress
func (v *View) Status(player int) float64 {
	used := v.e.ms.Players[player].Elapsed
	if player == v.e.deciding {
		used += time.Since(v.e.decideStart)
	}
	return float64(used) / float64(v.e.cfg.CPUBudget)
}

func (v *View) CanMove(id int) bool { return v.e.canMove(id) }
func (v *View) RandomBool() bool    { return v.e.rng.Intn(2) == 0 }

// Command records an order; it is checked only when the round is applied
func (v *View) Command(id int, d core.Direction) {
	v.e.pending[pendingKey{player: v.player, unit: id}] = core.Command{PlayerID: v.player, UnitID: id, Dir: d}
}
