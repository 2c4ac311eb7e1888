package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/fields"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/config"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/events"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/mapgen"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/processor"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/rules"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/states"
	"github.com/rs/zerolog"
)

// EngineConfig holds everything needed to start a match
type EngineConfig struct {
	Players int
	Rounds  int
	Rng     *rand.Rand
	MatchID string
	Logger  zerolog.Logger
	Sandbox config.SandboxConfig
	// Wall-clock allowance per player for the whole match
	CPUBudget time.Duration

	// Board and Units replace the generated map and spawn; unit IDs must
	// equal their index
	Board *core.Board
	Units []core.Unit

	// EventBus is created when nil
	EventBus *events.EventBus
}

// EngineInitializer handles the initialization of a match engine
type EngineInitializer struct {
	config EngineConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg EngineConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "MatchEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// NewEngine creates and initializes a match engine
func NewEngine(ctx context.Context, cfg EngineConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Initialize creates and initializes a new match engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	if err := ei.setupDefaults(); err != nil {
		return nil, err
	}

	board, err := ei.prepareBoard()
	if err != nil {
		return nil, fmt.Errorf("map generation failed: %w", err)
	}

	ms := &MatchState{
		Board:      board,
		Players:    make([]Player, ei.config.Players),
		removed:    make(map[int]bool),
		cityGroups: fields.BuildCityGroups(board),
	}
	for i := range ms.Players {
		ms.Players[i].ID = i
	}

	if err := ei.placeUnits(ms); err != nil {
		return nil, err
	}
	ms.nextMove = make([]int, len(ms.Units))

	engine := ei.createEngine(ms)

	if err := engine.stateMachine.TransitionTo(states.PhaseRunning, "Match setup complete"); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	engine.eventBus.Publish(events.NewMatchStartedEvent(
		engine.matchID,
		ei.config.Players,
		len(ms.Units),
		ms.cityGroups.Len(),
	))

	ei.logger.Info().
		Str("match_id", engine.matchID).
		Int("players", ei.config.Players).
		Int("units", len(ms.Units)).
		Int("city_groups", ms.cityGroups.Len()).
		Int("rounds", ei.config.Rounds).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in missing configuration and rejects unusable values
func (ei *EngineInitializer) setupDefaults() error {
	if ei.config.Players < 1 {
		return fmt.Errorf("need at least one player: %w", core.ErrInvalidPlayer)
	}
	if ei.config.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", ei.config.Rounds)
	}
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ei.config.MatchID == "" {
		ei.config.MatchID = uuid.New().String()
	}
	if ei.config.CPUBudget <= 0 {
		ei.config.CPUBudget = 10 * time.Second
	}
	if ei.config.Sandbox.Units.MaxFood == 0 {
		ei.config.Sandbox = config.Default().Sandbox
	}
	return nil
}

// prepareBoard returns the scenario board or generates one
func (ei *EngineInitializer) prepareBoard() (*core.Board, error) {
	if ei.config.Board != nil {
		return ei.config.Board.Clone(), nil
	}
	generator := mapgen.NewGenerator(mapgen.FromConfig(ei.config.Sandbox.Map), ei.config.Rng)
	return generator.GenerateMap()
}

// placeUnits puts the scenario units on the board, or spawns a fresh army
// per player when no units were given
func (ei *EngineInitializer) placeUnits(ms *MatchState) error {
	if ei.config.Units != nil {
		ms.Units = make([]core.Unit, len(ei.config.Units))
		for i, u := range ei.config.Units {
			if u.ID != i {
				return fmt.Errorf("unit at index %d has ID %d: %w", i, u.ID, core.ErrInvalidScenario)
			}
			if u.Player < 0 || u.Player >= ei.config.Players {
				return fmt.Errorf("unit %d: %w", u.ID, core.ErrInvalidPlayer)
			}
			if !u.Pos.IsValid() {
				return fmt.Errorf("unit %d at %s: %w", u.ID, u.Pos, core.ErrInvalidPosition)
			}
			c := ms.Board.Cell(u.Pos)
			if !c.CanEnter(u.Type) {
				return fmt.Errorf("unit %d at %s: %w", u.ID, u.Pos, core.ErrImpassable)
			}
			if !c.IsEmpty() {
				return fmt.Errorf("unit %d at %s: %w", u.ID, u.Pos, core.ErrOccupied)
			}
			ms.Units[i] = u
			core.Place(ms.Board, u)
		}
		return nil
	}

	uc := ei.config.Sandbox.Units
	for p := 0; p < ei.config.Players; p++ {
		for i := 0; i < uc.WarriorsPerPlayer+uc.CarsPerPlayer; i++ {
			kind := core.Warrior
			if i >= uc.WarriorsPerPlayer {
				kind = core.Car
			}
			pos, ok := mapgen.SpawnPoint(ms.Board, ei.config.Rng, kind)
			if !ok {
				return fmt.Errorf("no room to spawn a %s for player %d", kind, p)
			}
			u := freshUnit(uc, len(ms.Units), p, kind, pos)
			ms.Units = append(ms.Units, u)
			core.Place(ms.Board, u)
		}
	}
	return nil
}

// freshUnit returns a unit with full resources
func freshUnit(uc config.UnitsConfig, id, player int, kind core.UnitType, pos core.Position) core.Unit {
	u := core.Unit{ID: id, Player: player, Type: kind, Pos: pos}
	if kind == core.Car {
		u.Fuel = uc.MaxFuel
	} else {
		u.Food = uc.MaxFood
		u.Water = uc.MaxWater
	}
	return u
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(ms *MatchState) *Engine {
	eventBus := ei.config.EventBus
	if eventBus == nil {
		eventBus = events.NewEventBus(ei.logger)
	}

	engine := &Engine{
		ms:               ms,
		cfg:              ei.config,
		rng:              ei.config.Rng,
		logger:           ei.logger,
		matchID:          ei.config.MatchID,
		eventBus:         eventBus,
		stateMachine:     states.NewStateMachine(ei.config.MatchID, ei.logger),
		commandProcessor: processor.NewCommandProcessor(ei.config.Sandbox.Units.AttackDamage, ei.logger),
		standings:        rules.NewStandings(ei.logger),
		pending:          make(map[pendingKey]core.Command),
		startTime:        time.Now(),
		deciding:         -1,
	}
	engine.turnProcessor = NewTurnProcessor(engine)
	return engine
}
