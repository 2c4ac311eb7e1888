package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("match_id", event.MatchID()).
		Time("timestamp", event.Timestamp())

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.MatchStartedEvent:
		logEvent.
			Int("num_players", e.NumPlayers).
			Int("units", e.Units).
			Int("city_groups", e.CityGroups)

	case *events.MatchEndedEvent:
		logEvent.
			Int("round", e.Round).
			Int("winner", e.Winner).
			Ints("scores", e.Scores).
			Dur("duration", e.Duration)

	case *events.RoundStartedEvent:
		logEvent.Int("round", e.Round)

	case *events.RoundEndedEvent:
		logEvent.
			Int("round", e.Round).
			Int("commands", e.Commands).
			Int("rejected", e.Rejected).
			Int("kills", e.Kills).
			Dur("process_time", e.Processed)

	case *events.UnitMovedEvent:
		logEvent.
			Int("round", e.Round).
			Int("player_id", e.PlayerID).
			Int("unit_id", e.UnitID).
			Str("from", e.From.String()).
			Str("to", e.To.String())

	case *events.UnitKilledEvent:
		logEvent.
			Int("round", e.Round).
			Int("unit_id", e.UnitID).
			Int("victim", e.Victim).
			Int("killed_by", e.KilledBy).
			Str("at", e.At.String()).
			Bool("starved", e.Starved)

	case *events.CityCapturedEvent:
		logEvent.
			Int("round", e.Round).
			Int("group", e.Group).
			Int("previous_owner", e.PreviousOwner).
			Int("new_owner", e.NewOwner)

	case *events.CommandRejectedEvent:
		logEvent.
			Int("round", e.Round).
			Int("player_id", e.Command.PlayerID).
			Int("unit_id", e.Command.UnitID).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Match event")
}
