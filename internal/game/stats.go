package game

import (
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/events"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/mapgen"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/processor"
)

// This file contains the end-of-round bookkeeping of the match engine.

// applyMoves charges fuel and movement delay to cars and announces every move
func (e *Engine) applyMoves(moves []processor.Move) {
	for _, m := range moves {
		u := &e.ms.Units[m.UnitID]
		if u.Type == core.Car {
			u.Fuel--
			delay := 1
			if !e.ms.Board.Cell(m.To).IsRoad() {
				delay = e.cfg.Sandbox.Units.OffRoadDelay
			}
			e.ms.nextMove[u.ID] = e.ms.Round + delay
		}
		e.eventBus.Publish(events.NewUnitMovedEvent(e.matchID, e.ms.Round, m.PlayerID, m.UnitID, m.From, m.To))
	}
}

// applyKills scores every kill and hands the dead unit to the killer
func (e *Engine) applyKills(kills []processor.Kill) {
	for _, k := range kills {
		killer := &e.ms.Players[k.KilledBy]
		killer.Kills++
		killer.Score += e.cfg.Sandbox.Score.Kill

		e.eventBus.Publish(events.NewUnitKilledEvent(e.matchID, e.ms.Round, k.UnitID, k.Victim, k.KilledBy, k.At, false))
		e.respawn(k.UnitID, k.KilledBy)
	}
}

// processUpkeep consumes and refills resources, then respawns starved
// warriors for their owner. It returns how many warriors starved.
func (e *Engine) processUpkeep() int {
	uc := e.cfg.Sandbox.Units
	starved := 0

	for id := range e.ms.Units {
		if e.ms.removed[id] {
			continue
		}
		u := &e.ms.Units[id]

		if u.Type == core.Car {
			if e.nextTo(u.Pos, core.Station) {
				u.Fuel = uc.MaxFuel
			}
			continue
		}

		u.Food--
		u.Water--
		if e.nextTo(u.Pos, core.Water) {
			u.Water = uc.MaxWater
		}
		if e.ms.Board.Cell(u.Pos).IsCity() {
			u.Food = uc.MaxFood
		}

		if u.Stamina() <= 0 {
			starved++
			at := u.Pos
			core.Remove(e.ms.Board, *u)
			e.eventBus.Publish(events.NewUnitKilledEvent(e.matchID, e.ms.Round, id, u.Player, u.Player, at, true))
			e.respawn(id, u.Player)
		}
	}
	return starved
}

// respawn puts a dead unit back with full resources for the given player.
// The unit must already be off the board.
func (e *Engine) respawn(id, player int) {
	u := &e.ms.Units[id]
	pos, ok := mapgen.SpawnPoint(e.ms.Board, e.rng, u.Type)
	if !ok {
		e.ms.removed[id] = true
		e.logger.Warn().Int("unit_id", id).Int("player", player).Msg("No free cell to respawn unit")
		return
	}
	*u = freshUnit(e.cfg.Sandbox.Units, id, player, u.Type, pos)
	core.Place(e.ms.Board, *u)
}

// updateCities hands every city group occupied by a single faction to it
func (e *Engine) updateCities() {
	for gi, group := range e.ms.cityGroups.Groups {
		occupant := core.NeutralID
		contested := false
		for _, p := range group {
			c := e.ms.Board.Cell(p)
			if c.IsEmpty() {
				continue
			}
			player := e.ms.Units[c.UnitID].Player
			if occupant == core.NeutralID {
				occupant = player
			} else if occupant != player {
				contested = true
				break
			}
		}

		previous := e.ms.Board.Cell(group[0]).Owner
		if occupant == core.NeutralID || contested || occupant == previous {
			continue
		}
		for _, p := range group {
			e.ms.Board.Cells[p.Index()].Owner = occupant
		}

		e.logger.Debug().
			Int("round", e.ms.Round).
			Int("group", gi).
			Int("previous", previous).
			Int("owner", occupant).
			Msg("City group captured")
		e.eventBus.Publish(events.NewCityCapturedEvent(e.matchID, e.ms.Round, gi, previous, occupant))
	}
}

// awardScores pays every player for the city groups it holds
func (e *Engine) awardScores() {
	for i := range e.ms.Players {
		e.ms.Players[i].CityGroups = 0
	}
	for _, group := range e.ms.cityGroups.Groups {
		if owner := e.ms.Board.Cell(group[0]).Owner; owner >= 0 && owner < len(e.ms.Players) {
			e.ms.Players[owner].CityGroups++
		}
	}
	for i := range e.ms.Players {
		e.ms.Players[i].Score += e.ms.Players[i].CityGroups * e.cfg.Sandbox.Score.CityGroup
	}
}

// nextTo reports whether any neighbour of p has terrain t
func (e *Engine) nextTo(p core.Position, t core.CellType) bool {
	for _, n := range p.Neighbors() {
		if n.IsValid() && e.ms.Board.Cell(n).Type == t {
			return true
		}
	}
	return false
}
