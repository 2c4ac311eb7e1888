package events

import (
	"time"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// Event type constants
const (
	TypeMatchStarted    = "match.started"
	TypeMatchEnded      = "match.ended"
	TypeRoundStarted    = "round.started"
	TypeRoundEnded      = "round.ended"
	TypeUnitMoved       = "unit.moved"
	TypeUnitKilled      = "unit.killed"
	TypeCityCaptured    = "city.captured"
	TypeCommandRejected = "command.rejected"
)

// MatchStartedEvent is published once the board and units are in place
type MatchStartedEvent struct {
	BaseEvent
	NumPlayers int
	Units      int
	CityGroups int
}

func NewMatchStartedEvent(matchID string, players, units, cityGroups int) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent:  newBase(TypeMatchStarted, matchID, 0),
		NumPlayers: players,
		Units:      units,
		CityGroups: cityGroups,
	}
}

// MatchEndedEvent is published after the last round
type MatchEndedEvent struct {
	BaseEvent
	// Winner is -1 on a tie for first place
	Winner   int
	Scores   []int
	Duration time.Duration
}

func NewMatchEndedEvent(matchID string, round, winner int, scores []int, duration time.Duration) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent: newBase(TypeMatchEnded, matchID, round),
		Winner:    winner,
		Scores:    scores,
		Duration:  duration,
	}
}

// RoundStartedEvent is published before any strategy runs
type RoundStartedEvent struct {
	BaseEvent
}

func NewRoundStartedEvent(matchID string, round int) *RoundStartedEvent {
	return &RoundStartedEvent{BaseEvent: newBase(TypeRoundStarted, matchID, round)}
}

// RoundEndedEvent is published once the round is fully resolved
type RoundEndedEvent struct {
	BaseEvent
	Commands  int
	Rejected  int
	Kills     int
	Processed time.Duration
}

func NewRoundEndedEvent(matchID string, round, commands, rejected, kills int, processed time.Duration) *RoundEndedEvent {
	return &RoundEndedEvent{
		BaseEvent: newBase(TypeRoundEnded, matchID, round),
		Commands:  commands,
		Rejected:  rejected,
		Kills:     kills,
		Processed: processed,
	}
}

// UnitMovedEvent is published for every applied move
type UnitMovedEvent struct {
	BaseEvent
	PlayerID int
	UnitID   int
	From     core.Position
	To       core.Position
}

func NewUnitMovedEvent(matchID string, round, playerID, unitID int, from, to core.Position) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent: newBase(TypeUnitMoved, matchID, round),
		PlayerID:  playerID,
		UnitID:    unitID,
		From:      from,
		To:        to,
	}
}

// UnitKilledEvent is published when a unit dies. KilledBy equals the victim's
// owner when it starved.
type UnitKilledEvent struct {
	BaseEvent
	UnitID   int
	Victim   int
	KilledBy int
	At       core.Position
	Starved  bool
}

func NewUnitKilledEvent(matchID string, round, unitID, victim, killedBy int, at core.Position, starved bool) *UnitKilledEvent {
	return &UnitKilledEvent{
		BaseEvent: newBase(TypeUnitKilled, matchID, round),
		UnitID:    unitID,
		Victim:    victim,
		KilledBy:  killedBy,
		At:        at,
		Starved:   starved,
	}
}

// CityCapturedEvent is published when a city group changes owner
type CityCapturedEvent struct {
	BaseEvent
	Group         int
	PreviousOwner int
	NewOwner      int
}

func NewCityCapturedEvent(matchID string, round, group, previous, owner int) *CityCapturedEvent {
	return &CityCapturedEvent{
		BaseEvent:     newBase(TypeCityCaptured, matchID, round),
		Group:         group,
		PreviousOwner: previous,
		NewOwner:      owner,
	}
}

// CommandRejectedEvent is published for each illegal command
type CommandRejectedEvent struct {
	BaseEvent
	Command core.Command
	Reason  string
}

func NewCommandRejectedEvent(matchID string, round int, cmd core.Command, err error) *CommandRejectedEvent {
	return &CommandRejectedEvent{
		BaseEvent: newBase(TypeCommandRejected, matchID, round),
		Command:   cmd,
		Reason:    err.Error(),
	}
}
