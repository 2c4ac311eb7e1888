package game

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/events"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/processor"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/rules"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/states"
	"github.com/rs/zerolog"
)

// Strategy plays one round for the faction the world is viewed from
type Strategy func(w core.World)

type pendingKey struct {
	player int
	unit   int
}

// Engine runs a match. It is not safe for concurrent use.
type Engine struct {
	ms      *MatchState
	cfg     EngineConfig
	rng     *rand.Rand
	logger  zerolog.Logger
	matchID string

	eventBus         *events.EventBus
	stateMachine     *states.StateMachine
	commandProcessor *processor.CommandProcessor
	standings        *rules.Standings
	turnProcessor    *TurnProcessor

	// Last order per player and unit for the round being played
	pending   map[pendingKey]core.Command
	startTime time.Time

	// Player whose strategy is running, -1 between calls
	deciding    int
	decideStart time.Time
}

// Step plays one round: every strategy decides, then the commands are applied
func (e *Engine) Step(ctx context.Context, strategies []Strategy) error {
	return e.turnProcessor.ProcessTurn(ctx, strategies)
}

// Run plays rounds until the match ends or ctx is cancelled
func (e *Engine) Run(ctx context.Context, strategies []Strategy) error {
	for !e.IsOver() {
		if err := e.Step(ctx, strategies); err != nil {
			return err
		}
	}
	return nil
}

// View returns the world as seen and commanded by one player
func (e *Engine) View(player int) *View {
	return &View{e: e, player: player}
}

func (e *Engine) MatchID() string            { return e.matchID }
func (e *Engine) Round() int                 { return e.ms.Round }
func (e *Engine) Board() *core.Board         { return e.ms.Board }
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }
func (e *Engine) Phase() states.MatchPhase   { return e.stateMachine.CurrentPhase() }
func (e *Engine) IsOver() bool               { return e.Phase().IsTerminal() }
func (e *Engine) Unit(id int) core.Unit      { return e.ms.Units[id] }
func (e *Engine) NumUnits() int              { return len(e.ms.Units) }
func (e *Engine) IsRemoved(id int) bool      { return e.ms.removed[id] }
func (e *Engine) CityGroupOwner(group int) int {
	return e.ms.Board.Cell(e.ms.cityGroups.Groups[group][0]).Owner
}
func (e *Engine) NumCityGroups() int               { return e.ms.cityGroups.Len() }
func (e *Engine) CanMove(id int) bool              { return e.canMove(id) }
func (e *Engine) Elapsed(player int) time.Duration { return e.ms.Players[player].Elapsed }

// Players returns a copy of the player table
func (e *Engine) Players() []Player {
	out := make([]Player, len(e.ms.Players))
	copy(out, e.ms.Players)
	return out
}

// Standings ranks the players by score; the winner is -1 on a shared lead
func (e *Engine) Standings() ([]rules.Standing, int) {
	scores := make([]int, len(e.ms.Players))
	kills := make([]int, len(e.ms.Players))
	for i, p := range e.ms.Players {
		scores[i] = p.Score
		kills[i] = p.Kills
	}
	return e.standings.Rank(scores, kills)
}

// canMove reports whether a unit may move this round. Warriors always can.
func (e *Engine) canMove(id int) bool {
	if id < 0 || id >= len(e.ms.Units) || e.ms.removed[id] {
		return false
	}
	if e.ms.Units[id].Type != core.Car {
		return true
	}
	return e.ms.Round >= e.ms.nextMove[id]
}

// drainCommands returns the pending orders in a random order and clears them.
// Keys are sorted first so a seeded match replays identically.
func (e *Engine) drainCommands() []core.Command {
	keys := make([]pendingKey, 0, len(e.pending))
	for k, cmd := range e.pending {
		if cmd.Dir.IsMove() {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].player != keys[j].player {
			return keys[i].player < keys[j].player
		}
		return keys[i].unit < keys[j].unit
	})
	e.rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	cmds := make([]core.Command, len(keys))
	for i, k := range keys {
		cmds[i] = e.pending[k]
	}
	for k := range e.pending {
		delete(e.pending, k)
	}
	return cmds
}
