package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/config"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/events"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/scenario"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	scenarioPath := flag.String("scenario", "", "Scenario file to play instead of a generated map (empty to use config default)")
	rounds := flag.Int("rounds", -1, "Number of rounds (-1 to use config or scenario default)")
	seed := flag.Int64("seed", -1, "RNG seed (-1 to use config default, 0 for time-based)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	watch := flag.Bool("watch", false, "Reload AI tuning when the config file changes")
	render := flag.Bool("render", false, "Print the final board")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if *seed == -1 {
		*seed = cfg.Match.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *scenarioPath == "" {
		*scenarioPath = cfg.Match.Scenario
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	matchID := uuid.New().String()
	logger := log.Logger.With().Str("match_id", matchID).Logger()

	engineCfg := game.EngineConfig{
		Players:   cfg.Match.Players,
		Rounds:    cfg.Match.Rounds,
		Rng:       rand.New(rand.NewSource(*seed)),
		MatchID:   matchID,
		Logger:    logger,
		Sandbox:   cfg.Sandbox,
		CPUBudget: time.Duration(cfg.Match.CPUBudgetMs) * time.Millisecond,
	}
	if *scenarioPath != "" {
		if err := applyScenario(&engineCfg, *scenarioPath); err != nil {
			log.Fatal().Err(err).Str("scenario", *scenarioPath).Msg("Failed to load scenario")
		}
	}
	if *rounds != -1 {
		engineCfg.Rounds = *rounds
	}

	bus := events.NewEventBus(logger)
	bus.Subscribe(newEventLogger(logger, *logLevel))
	engineCfg.EventBus = bus

	players := make([]*ai.Player, engineCfg.Players)
	strategies := make([]game.Strategy, engineCfg.Players)
	for i := range players {
		p := ai.NewPlayer(cfg.AI, logger.With().Int("player", i).Logger())
		players[i] = p
		strategies[i] = func(w core.World) { p.Play(w) }
	}

	if *watch {
		if config.ConfigFilePath() == "" {
			log.Warn().Msg("No config file loaded, -watch has nothing to watch")
		} else {
			config.WatchConfig(func(aiCfg config.AIConfig) {
				for _, p := range players {
					p.SetConfig(aiCfg)
				}
			})
			log.Info().Str("config", config.ConfigFilePath()).Msg("Watching config for AI tuning changes")
		}
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	log.Info().
		Int("players", engineCfg.Players).
		Int("rounds", engineCfg.Rounds).
		Int64("seed", *seed).
		Str("scenario", *scenarioPath).
		Msg("Starting match")

	engine, err := game.NewEngine(ctx, engineCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}

	if err := engine.Run(ctx, strategies); err != nil {
		log.Error().Err(err).Int("round", engine.Round()).Msg("Match stopped early")
	}

	if *render {
		fmt.Print(engine.Render(true))
	}
	printStandings(os.Stdout, engine)
}

// applyScenario replaces the generated map with a scenario file
func applyScenario(engineCfg *game.EngineConfig, path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	board, units, err := s.Build(engineCfg.Sandbox.Units)
	if err != nil {
		return err
	}
	engineCfg.Board = board
	engineCfg.Units = units
	engineCfg.Players = s.Players
	if s.Rounds > 0 {
		engineCfg.Rounds = s.Rounds
	}
	return nil
}

func printStandings(w io.Writer, engine *game.Engine) {
	table, winner := engine.Standings()
	players := engine.Players()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "RANK\tPLAYER\tSCORE\tKILLS\tCITIES\tCPU\n")
	for _, s := range table {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\n",
			s.Rank, s.PlayerID, s.Score, s.Kills,
			players[s.PlayerID].CityGroups,
			players[s.PlayerID].Elapsed.Round(time.Millisecond))
	}
	tw.Flush()

	if winner >= 0 {
		fmt.Fprintf(w, "Player %d wins after %d rounds\n", winner, engine.Round())
	} else {
		fmt.Fprintf(w, "No winner after %d rounds (tie for first place)\n", engine.Round())
	}
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}

// newEventLogger logs the match milestones; at debug level each line carries the full event.
func newEventLogger(logger zerolog.Logger, level string) *subscribers.LoggerSubscriber {
	eventLogger := subscribers.NewLoggerSubscriber("match-log", logger, zerolog.InfoLevel)
	eventLogger.SetEventFilter([]string{events.TypeMatchStarted, events.TypeCityCaptured, events.TypeMatchEnded})
	eventLogger.SetDevMode(level == "debug")
	return eventLogger
}
