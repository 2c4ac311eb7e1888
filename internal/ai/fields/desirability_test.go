package fields

import (
	"testing"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestComputeDesirability_HandComputedCells(t *testing.T) {
	board := testutil.BoardFromRows("C.RW")
	static := NewStatic(board)
	d := static.Desirability

	tests := []struct {
		name    string
		pos     core.Position
		warrior int
		car     int
	}{
		// dCity=0 dWater=3: 25 + 2 + 16 + 15
		{"city cell", core.NewPosition(0, 0), 58, Impassable},
		// dCity=1 dWater=2 dRoad=1: car 400 + 15 + 14 - 6 + 0
		{"desert between city and road", core.NewPosition(0, 1), 32, 423},
		// dCity=2 dWater=1 dRoad=0: warrior 4 + 12 + 15, car 500 + 15 + 13 - 4 + 0
		{"road next to water", core.NewPosition(0, 2), 31, 524},
		{"water cell", core.NewPosition(0, 3), Impassable, Impassable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.warrior, d.Warrior.At(tt.pos))
			assert.Equal(t, tt.car, d.Car.At(tt.pos))
			assert.Equal(t, tt.warrior, d.For(core.Warrior).At(tt.pos))
			assert.Equal(t, tt.car, d.For(core.Car).At(tt.pos))
		})
	}
}

func TestComputeDesirability_CenterPull(t *testing.T) {
	// Identical surroundings; only the distance to the centre differs
	board := core.NewBoard()
	board.SetType(core.NewPosition(30, 30), core.Road)
	board.SetType(core.NewPosition(1, 1), core.Road)

	d := ComputeDesirability(board, ComputeFields(board))

	assert.Greater(t, d.Car.At(core.NewPosition(30, 30)), d.Car.At(core.NewPosition(1, 1)))
}

func TestComputeDesirability_ImpassableIsWorstForEachKind(t *testing.T) {
	board := testutil.BoardFromRows(
		"XWSC",
		"RRRR",
	)
	d := ComputeDesirability(board, ComputeFields(board))

	for _, p := range []core.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}} {
		assert.Equal(t, Impassable, d.Warrior.At(p))
		assert.Equal(t, Impassable, d.Car.At(p))
	}
	assert.Equal(t, Impassable, d.Car.At(core.NewPosition(0, 3)), "cars cannot enter cities")
	assert.Greater(t, d.Warrior.At(core.NewPosition(0, 3)), Impassable)
	assert.Greater(t, d.Car.At(core.NewPosition(1, 0)), Impassable)
}
