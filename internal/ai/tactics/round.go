// Package tactics holds the per-round working state of the faction AI and the
// heuristics built on it: safety, scoring, single-step moves and the car
// target search.
package tactics

import (
	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/fields"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/config"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/rs/zerolog"
)

// Occupant classifies what stands on a cell from the controlling faction's view
type Occupant int

const (
	Empty Occupant = iota
	OwnWarrior
	OwnCar
	EnemyWarrior
	EnemyCar
)

// Round is created fresh every round and owns every per-round set.
// It is not safe for concurrent use.
type Round struct {
	world  core.World
	static *fields.Static
	cfg    config.AIConfig
	logger zerolog.Logger

	Me            int
	MyWarriors    []int
	MyCars        []int
	EnemyWarriors []int
	EnemyCars     []int
	Cities        fields.CityStats

	enemyCarPos []core.Position
	moved       map[core.Position]struct{}
	attacked    []core.Position
}

// NewRound snapshots unit lists and city statistics for this round.
// Enemies are gathered from the other factions in turn order after Me.
func NewRound(w core.World, static *fields.Static, cfg config.AIConfig, logger zerolog.Logger) *Round {
	me := w.Me()
	r := &Round{
		world:      w,
		static:     static,
		cfg:        cfg,
		logger:     logger,
		Me:         me,
		MyWarriors: w.Warriors(me),
		MyCars:     w.Cars(me),
		moved:      make(map[core.Position]struct{}),
	}

	n := w.NumPlayers()
	for i := 1; i < n; i++ {
		other := (me + i) % n
		r.EnemyWarriors = append(r.EnemyWarriors, w.Warriors(other)...)
		r.EnemyCars = append(r.EnemyCars, w.Cars(other)...)
	}
	r.enemyCarPos = make([]core.Position, len(r.EnemyCars))
	for i, id := range r.EnemyCars {
		r.enemyCarPos[i] = w.Unit(id).Pos
	}

	r.Cities = static.Cities.Stats(w)
	return r
}

func (r *Round) World() core.World       { return r.world }
func (r *Round) Static() *fields.Static  { return r.static }
func (r *Round) Config() config.AIConfig { return r.cfg }
func (r *Round) Logger() *zerolog.Logger { return &r.logger }

// Move orders unit id one step in d and reserves the destination for the
// rest of the round. NoMove only reserves the unit's current cell.
func (r *Round) Move(id int, d core.Direction) {
	u := r.world.Unit(id)
	r.moved[u.Pos.Add(d)] = struct{}{}
	if d.IsMove() {
		r.world.Command(id, d)
	}
}

// MovedInto reports whether one of our units already moves into p this round
func (r *Round) MovedInto(p core.Position) bool {
	_, ok := r.moved[p]
	return ok
}

// Attacked returns the targets chosen so far this round, in choice order
func (r *Round) Attacked() []core.Position {
	return r.attacked
}

// Occupant classifies the unit standing on c
func (r *Round) Occupant(c core.Cell) Occupant {
	if c.UnitID == core.NoUnit {
		return Empty
	}
	u := r.world.Unit(c.UnitID)
	switch {
	case u.Player == r.Me && u.Type == core.Warrior:
		return OwnWarrior
	case u.Player == r.Me:
		return OwnCar
	case u.Type == core.Warrior:
		return EnemyWarrior
	default:
		return EnemyCar
	}
}

// OccupantAt classifies the unit standing on p. p must be valid.
func (r *Round) OccupantAt(p core.Position) Occupant {
	return r.Occupant(r.world.Cell(p))
}

func (r *Round) isFriendly(p core.Position) bool {
	o := r.OccupantAt(p)
	return o == OwnWarrior || o == OwnCar
}

func (r *Round) isEnemyWarrior(p core.Position) bool {
	return r.OccupantAt(p) == EnemyWarrior
}
