package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/events"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/processor"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/states"
	"github.com/rs/zerolog"
)

// TurnProcessor handles the orchestration of a single round
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// ProcessTurn executes a complete round
func (tp *TurnProcessor) ProcessTurn(ctx context.Context, strategies []Strategy) error {
	if err := tp.checkContext(ctx, "before starting"); err != nil {
		return err
	}

	if err := tp.validateMatchState(strategies); err != nil {
		return err
	}

	round := tp.engine.ms.Round
	roundLogger := tp.logger.With().Int("round", round).Logger()
	roundLogger.Debug().Msg("Starting round")

	roundStartTime := time.Now()
	tp.engine.eventBus.Publish(events.NewRoundStartedEvent(tp.engine.matchID, round))

	tp.runStrategies(strategies, roundLogger)

	res, err := tp.processCommandsPhase(ctx, roundLogger)
	if err != nil {
		tp.fail(err)
		return err
	}

	tp.engine.applyMoves(res.Moves)
	tp.engine.applyKills(res.Kills)
	starved := tp.engine.processUpkeep()
	tp.engine.updateCities()
	tp.engine.awardScores()

	tp.engine.ms.Round++
	tp.engine.eventBus.Publish(events.NewRoundEndedEvent(
		tp.engine.matchID,
		round,
		len(res.Moves)+len(res.Rejected),
		len(res.Rejected),
		len(res.Kills)+starved,
		time.Since(roundStartTime),
	))

	if tp.engine.ms.Round >= tp.engine.cfg.Rounds {
		tp.endMatch(roundLogger)
	}

	roundLogger.Debug().
		Int("moves", len(res.Moves)).
		Int("rejected", len(res.Rejected)).
		Int("kills", len(res.Kills)).
		Int("starved", starved).
		Msg("Round finished")
	return nil
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("round", tp.engine.ms.Round).
			Str("phase", phase).
			Msg("Round cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// validateMatchState ensures the match can play another round
func (tp *TurnProcessor) validateMatchState(strategies []Strategy) error {
	currentPhase := tp.engine.stateMachine.CurrentPhase()
	if currentPhase.IsTerminal() {
		tp.logger.Warn().
			Int("round", tp.engine.ms.Round).
			Str("current_phase", currentPhase.String()).
			Msg("Attempted to step match that is already over")
		return core.WrapRoundError(tp.engine.ms.Round, "step", core.ErrMatchOver)
	}
	if !currentPhase.CanReceiveCommands() {
		return fmt.Errorf("match is in %s phase and cannot receive commands", currentPhase)
	}
	if len(strategies) != len(tp.engine.ms.Players) {
		return core.WrapRoundError(tp.engine.ms.Round, "step",
			fmt.Errorf("%d strategies for %d players: %w", len(strategies), len(tp.engine.ms.Players), core.ErrInvalidPlayer))
	}
	return nil
}

// runStrategies lets every player decide and charges the time to its budget
func (tp *TurnProcessor) runStrategies(strategies []Strategy, roundLogger zerolog.Logger) {
	for player, strategy := range strategies {
		if strategy == nil {
			continue
		}
		start := time.Now()
		tp.engine.deciding, tp.engine.decideStart = player, start
		strategy(tp.engine.View(player))
		spent := time.Since(start)
		tp.engine.deciding = -1
		tp.engine.ms.Players[player].Elapsed += spent

		roundLogger.Debug().
			Int("player", player).
			Dur("spent", spent).
			Msg("Strategy finished")
	}
}

// processCommandsPhase applies the orders collected from the strategies
func (tp *TurnProcessor) processCommandsPhase(ctx context.Context, roundLogger zerolog.Logger) (processor.Result, error) {
	cmds := tp.engine.drainCommands()
	roundLogger.Debug().Int("num_commands_submitted", len(cmds)).Msg("Processing commands")

	res, err := tp.engine.commandProcessor.ProcessCommands(ctx, tp.engine.ms.Board, tp.engine.ms.Units, cmds, tp.engine.canMove)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, core.WrapRoundError(tp.engine.ms.Round, "command processing", fmt.Errorf("context cancelled: %w", err))
		}
		return res, core.WrapRoundError(tp.engine.ms.Round, "command processing", err)
	}

	for _, rejected := range res.Rejected {
		var cmdErr *core.CommandError
		if errors.As(rejected, &cmdErr) {
			tp.engine.eventBus.Publish(events.NewCommandRejectedEvent(tp.engine.matchID, tp.engine.ms.Round, cmdErr.Cmd, cmdErr.Err))
		}
	}
	return res, nil
}

// endMatch moves the match to its final phase and announces the result
func (tp *TurnProcessor) endMatch(roundLogger zerolog.Logger) {
	if err := tp.engine.stateMachine.TransitionTo(states.PhaseEnded, "Round limit reached"); err != nil {
		roundLogger.Error().Err(err).Msg("Failed to transition to Ended state")
		return
	}

	table, winner := tp.engine.Standings()
	scores := make([]int, len(tp.engine.ms.Players))
	for i, p := range tp.engine.ms.Players {
		scores[i] = p.Score
	}
	tp.engine.eventBus.Publish(events.NewMatchEndedEvent(
		tp.engine.matchID,
		tp.engine.ms.Round,
		winner,
		scores,
		time.Since(tp.engine.startTime),
	))

	roundLogger.Info().
		Int("winner", winner).
		Int("top_score", table[0].Score).
		Msg("Match ended")
}

// fail moves the match to the error phase after a round could not be applied
func (tp *TurnProcessor) fail(err error) {
	if tErr := tp.engine.stateMachine.TransitionTo(states.PhaseError, err.Error()); tErr != nil {
		tp.logger.Error().Err(tErr).Msg("Failed to transition to Error state")
	}
}
