// Package ai is the per-round decision engine of one faction.
package ai

import (
	"sync"
	"time"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/controller"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/fields"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/tactics"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/config"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/rs/zerolog"
)

// Summary reports what a faction did in one round
type Summary struct {
	Round    int
	Warriors controller.Tally
	Cars     controller.Tally
	// Targets chosen by the car search, in choice order
	Targets []core.Position
	Elapsed time.Duration
}

// Player drives one faction. Terrain-derived data is computed on the first
// call to Play and reused for the rest of the match.
type Player struct {
	logger   zerolog.Logger
	warriors *controller.WarriorController
	cars     *controller.CarController

	mu     sync.RWMutex
	cfg    config.AIConfig
	static *fields.Static
}

// NewPlayer creates a player for one match
func NewPlayer(cfg config.AIConfig, logger zerolog.Logger) *Player {
	logger = logger.With().Str("component", "Player").Logger()
	return &Player{
		logger:   logger,
		warriors: controller.NewWarriorController(logger),
		cars:     controller.NewCarController(logger),
		cfg:      cfg,
	}
}

// SetConfig swaps the tuning constants. It takes effect from the next round
// and may be called from another goroutine.
func (p *Player) SetConfig(cfg config.AIConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg = cfg
	p.logger.Info().Interface("ai", cfg).Msg("AI configuration reloaded")
}

// Config returns the tuning constants in use
func (p *Player) Config() config.AIConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// Static returns the terrain-derived data, nil before the first round
func (p *Player) Static() *fields.Static {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.static
}

// Play decides this round's moves for the faction w.Me() and issues them on w
func (p *Player) Play(w core.World) Summary {
	start := time.Now()

	p.mu.Lock()
	if p.static == nil {
		p.static = fields.NewStatic(w)
		p.logger.Info().
			Int("round", w.Round()).
			Int("player_id", w.Me()).
			Int("city_groups", p.static.Cities.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("Terrain analysis complete")
	}
	static, cfg := p.static, p.cfg
	p.mu.Unlock()

	r := tactics.NewRound(w, static, cfg, p.logger)
	s := Summary{
		Round:    w.Round(),
		Warriors: p.warriors.Run(r),
		Cars:     p.cars.Run(r),
		Targets:  r.Attacked(),
	}
	s.Elapsed = time.Since(start)

	p.logger.Debug().
		Int("round", s.Round).
		Int("player_id", r.Me).
		Int("warriors", s.Warriors.Total()).
		Int("cars", s.Cars.Total()).
		Int("targets", len(s.Targets)).
		Int("city_groups_owned", r.Cities.NumOwned).
		Dur("elapsed", s.Elapsed).
		Msg("Round played")
	return s
}
