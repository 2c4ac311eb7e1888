package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/config"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Cities   int
	CitySize int
	// Roads alternate between horizontal and vertical corridors
	Roads    int
	Ponds    int
	Stations int
	// Percentage of the remaining desert turned into rock
	WallDensity int
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Cities:      8,
		CitySize:    4,
		Roads:       6,
		Ponds:       10,
		Stations:    6,
		WallDensity: 2,
	}
}

// FromConfig converts the sandbox map section of the application config
func FromConfig(c config.MapConfig) MapConfig {
	return MapConfig{
		Cities:      c.Cities,
		CitySize:    c.CitySize,
		Roads:       c.Roads,
		Ponds:       c.Ponds,
		Stations:    c.Stations,
		WallDensity: c.WallDensity,
	}
}

// margin keeps features off the rock ring around the map
const margin = 2

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateMap creates a new board with roads, cities, water and stations
func (g *Generator) GenerateMap() (*core.Board, error) {
	if g.config.CitySize < 1 || g.config.CitySize > core.GridSize/4 {
		return nil, fmt.Errorf("city size %d out of range", g.config.CitySize)
	}
	board := core.NewBoard()

	g.placeBorder(board)
	g.placeRoads(board)
	if placed := g.placeCities(board); placed < g.config.Cities {
		return nil, fmt.Errorf("placed %d of %d cities", placed, g.config.Cities)
	}
	g.placePonds(board)
	g.placeStations(board)
	g.placeWalls(board)

	return board, nil
}

func (g *Generator) placeBorder(b *core.Board) {
	last := core.GridSize - 1
	for i := 0; i < core.GridSize; i++ {
		b.SetType(core.NewPosition(0, i), core.Wall)
		b.SetType(core.NewPosition(last, i), core.Wall)
		b.SetType(core.NewPosition(i, 0), core.Wall)
		b.SetType(core.NewPosition(i, last), core.Wall)
	}
}

func (g *Generator) placeRoads(b *core.Board) {
	span := core.GridSize - 2*margin
	for i := 0; i < g.config.Roads; i++ {
		line := margin + g.rng.Intn(span)
		for j := 1; j < core.GridSize-1; j++ {
			if i%2 == 0 {
				b.SetType(core.NewPosition(line, j), core.Road)
			} else {
				b.SetType(core.NewPosition(j, line), core.Road)
			}
		}
	}
}

// placeCities drops square blocks on open desert. Blocks never touch, so
// each one is its own city group.
func (g *Generator) placeCities(b *core.Board) int {
	size := g.config.CitySize
	span := core.GridSize - 2*margin - size
	placed := 0

	// Use a maximum attempt counter to avoid infinite loops
	maxAttempts := g.config.Cities * 200
	for attempts := 0; placed < g.config.Cities && attempts < maxAttempts; attempts++ {
		top := core.NewPosition(margin+g.rng.Intn(span), margin+g.rng.Intn(span))
		if !g.blockFits(b, top, size) {
			continue
		}
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				b.SetType(core.NewPosition(top.Row+r, top.Col+c), core.City)
			}
		}
		placed++
	}
	return placed
}

// blockFits requires desert under the block and no city in the ring around it
func (g *Generator) blockFits(b *core.Board, top core.Position, size int) bool {
	for r := -1; r <= size; r++ {
		for c := -1; c <= size; c++ {
			p := core.NewPosition(top.Row+r, top.Col+c)
			if !p.IsValid() {
				return false
			}
			t := b.Cell(p).Type
			inside := r >= 0 && r < size && c >= 0 && c < size
			if t == core.City || (inside && t != core.Desert) {
				return false
			}
		}
	}
	return true
}

func (g *Generator) placePonds(b *core.Board) {
	for placed, attempts := 0, 0; placed < g.config.Ponds && attempts < g.config.Ponds*50; attempts++ {
		p := g.randomInterior()
		if b.Cell(p).Type != core.Desert {
			continue
		}
		b.SetType(p, core.Water)
		placed++
	}
}

// placeStations puts each station next to a road so cars can refuel from it
func (g *Generator) placeStations(b *core.Board) {
	for placed, attempts := 0, 0; placed < g.config.Stations && attempts < g.config.Stations*200; attempts++ {
		p := g.randomInterior()
		if b.Cell(p).Type != core.Desert || !nextTo(b, p, core.Road) {
			continue
		}
		b.SetType(p, core.Station)
		placed++
	}
}

func (g *Generator) placeWalls(b *core.Board) {
	if g.config.WallDensity <= 0 {
		return
	}
	for idx := range b.Cells {
		p := core.FromIndex(idx)
		if b.Cells[idx].Type != core.Desert || nextTo(b, p, core.Station) {
			continue
		}
		if g.rng.Intn(100) < g.config.WallDensity {
			b.Cells[idx].Type = core.Wall
		}
	}
}

func (g *Generator) randomInterior() core.Position {
	span := core.GridSize - 2*margin
	return core.NewPosition(margin+g.rng.Intn(span), margin+g.rng.Intn(span))
}

func nextTo(b *core.Board, p core.Position, t core.CellType) bool {
	for _, q := range p.Neighbors() {
		if q.IsValid() && b.Cell(q).Type == t {
			return true
		}
	}
	return false
}

// SpawnPoint picks a random empty cell a unit of the given kind may stand on.
// It returns false when the board has no such cell.
func SpawnPoint(b *core.Board, rng *rand.Rand, kind core.UnitType) (core.Position, bool) {
	for attempts := 0; attempts < core.GridSize*core.GridSize; attempts++ {
		p := core.FromIndex(rng.Intn(core.GridSize * core.GridSize))
		c := b.Cell(p)
		if c.IsEmpty() && c.CanEnter(kind) {
			return p, true
		}
	}

	// Fallback: first free cell in row-major order
	for idx, c := range b.Cells {
		if c.IsEmpty() && c.CanEnter(kind) {
			return core.FromIndex(idx), true
		}
	}
	return core.Position{}, false
}
