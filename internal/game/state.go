package game

import (
	"time"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/fields"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

type Player struct {
	ID         int
	Score      int
	Kills      int
	CityGroups int           // owned at the end of the last round
	Elapsed    time.Duration // wall time spent deciding
}

type MatchState struct {
	Round   int
	Board   *core.Board
	Units   []core.Unit // indexed by unit ID
	Players []Player

	// Round from which each car may move again
	nextMove []int
	// Units that died and could not be placed again
	removed    map[int]bool
	cityGroups *fields.CityGroups
}

// unitIDs lists the live units of one player and kind in ID order
func (ms *MatchState) unitIDs(player int, kind core.UnitType) []int {
	var out []int
	for _, u := range ms.Units {
		if u.Player == player && u.Type == kind && !ms.removed[u.ID] {
			out = append(out, u.ID)
		}
	}
	return out
}
