// Package scenario loads hand-authored matches: an ASCII map plus the units
// standing on it.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/config"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"gopkg.in/yaml.v3"
)

// Scenario is the file format
type Scenario struct {
	Name    string      `yaml:"name"`
	Players int         `yaml:"players"`
	Rounds  int         `yaml:"rounds"`
	Map     string      `yaml:"map"`
	Units   []UnitSpec  `yaml:"units"`
	Cities  []OwnerSpec `yaml:"cities"`
}

// UnitSpec places one unit. Zero resources mean full.
type UnitSpec struct {
	Player int    `yaml:"player"`
	Type   string `yaml:"type"`
	At     [2]int `yaml:"at"`
	Food   int    `yaml:"food"`
	Water  int    `yaml:"water"`
	Fuel   int    `yaml:"fuel"`
}

// OwnerSpec gives the city cell at At to Player
type OwnerSpec struct {
	Player int    `yaml:"player"`
	At     [2]int `yaml:"at"`
}

// Load reads and parses a scenario file
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidScenario, err)
	}
	if strings.TrimSpace(s.Map) == "" {
		return nil, fmt.Errorf("%w: empty map", core.ErrInvalidScenario)
	}
	if s.Players == 0 {
		s.Players = 2
		for _, u := range s.Units {
			if u.Player+1 > s.Players {
				s.Players = u.Player + 1
			}
		}
	}
	return &s, nil
}

// Build turns the scenario into a board and units. Rows shorter than the
// grid are padded with desert. Unit IDs follow list order.
func (s *Scenario) Build(uc config.UnitsConfig) (*core.Board, []core.Unit, error) {
	board := core.NewBoard()

	rows := strings.Split(strings.TrimRight(s.Map, "\n"), "\n")
	if len(rows) > core.GridSize {
		return nil, nil, fmt.Errorf("%w: %d rows, at most %d", core.ErrInvalidScenario, len(rows), core.GridSize)
	}
	for r, row := range rows {
		row = strings.TrimRight(row, " \t\r")
		if len(row) > core.GridSize {
			return nil, nil, fmt.Errorf("%w: row %d has %d cells, at most %d", core.ErrInvalidScenario, r, len(row), core.GridSize)
		}
		for c := 0; c < len(row); c++ {
			t, ok := core.CellTypeFromSymbol(row[c])
			if !ok {
				return nil, nil, fmt.Errorf("%w: unknown terrain %q at (%d,%d)", core.ErrInvalidScenario, row[c], r, c)
			}
			board.SetType(core.NewPosition(r, c), t)
		}
	}

	for _, o := range s.Cities {
		p := core.NewPosition(o.At[0], o.At[1])
		if !p.IsValid() || !board.Cell(p).IsCity() {
			return nil, nil, fmt.Errorf("%w: no city at %s", core.ErrInvalidScenario, p)
		}
		board.Cells[p.Index()].Owner = o.Player
	}

	units := make([]core.Unit, 0, len(s.Units))
	for i, spec := range s.Units {
		u, err := spec.unit(i, uc)
		if err != nil {
			return nil, nil, fmt.Errorf("unit %d: %w", i, err)
		}
		units = append(units, u)
	}
	return board, units, nil
}

func (spec UnitSpec) unit(id int, uc config.UnitsConfig) (core.Unit, error) {
	u := core.Unit{ID: id, Player: spec.Player, Pos: core.NewPosition(spec.At[0], spec.At[1])}
	switch spec.Type {
	case "warrior":
		u.Type = core.Warrior
		u.Food = orDefault(spec.Food, uc.MaxFood)
		u.Water = orDefault(spec.Water, uc.MaxWater)
	case "car":
		u.Type = core.Car
		u.Fuel = orDefault(spec.Fuel, uc.MaxFuel)
	default:
		return u, fmt.Errorf("%w: unknown unit type %q", core.ErrInvalidScenario, spec.Type)
	}
	if !u.Pos.IsValid() {
		return u, fmt.Errorf("%w: %s", core.ErrInvalidPosition, u.Pos)
	}
	return u, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
