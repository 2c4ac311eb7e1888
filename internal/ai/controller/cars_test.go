package controller

import (
	"testing"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/fields"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCars(w *testutil.FakeWorld) Tally {
	return NewCarController(testutil.NopLogger()).Run(newRound(w))
}

func TestCarController_RefuelsWhenLow(t *testing.T) {
	b := core.NewBoard()
	b.SetType(core.NewPosition(20, 25), core.Station)
	w := testutil.NewFakeWorld(b, 0)
	start := core.NewPosition(20, 20)
	id := w.AddUnit(0, core.Car, start)
	w.Update(id, func(u *core.Unit) { u.Fuel = 10 })

	tally := runCars(w)

	require.Equal(t, 1, tally[Refuel])
	fuel := fields.NewStatic(w).Fields.Fuel
	assert.Less(t, fuel.At(w.Moved(id)), fuel.At(start))
}

func TestCarController_HuntsWhenFuelled(t *testing.T) {
	b := core.NewBoard()
	testutil.FillRect(b, 10, 0, 10, core.GridSize-1, core.Road)
	b.SetType(core.NewPosition(0, 0), core.Station)
	w := testutil.NewFakeWorld(b, 0)
	id := w.AddUnit(0, core.Car, core.NewPosition(10, 5))
	w.AddUnit(1, core.Warrior, core.NewPosition(10, 15))

	tally := runCars(w)

	assert.Equal(t, 1, tally[Hunt])
	assert.Equal(t, core.East, w.Issued[id])
}

func TestCarController_SkipsImmobileCars(t *testing.T) {
	w := testutil.NewFakeWorld(core.NewBoard(), 0)
	id := w.AddUnit(0, core.Car, core.NewPosition(10, 10))
	w.Immobile[id] = true

	tally := runCars(w)

	assert.Zero(t, tally.Total())
	assert.Empty(t, w.Commands)
}

func TestCarController_OverBudgetFallsBack(t *testing.T) {
	b := core.NewBoard()
	testutil.FillRect(b, 10, 0, 10, core.GridSize-1, core.Road)
	w := testutil.NewFakeWorld(b, 0)
	w.AddUnit(0, core.Car, core.NewPosition(10, 5))
	w.AddUnit(1, core.Warrior, core.NewPosition(10, 15))
	w.StatusValue = 1

	tally := runCars(w)

	assert.Zero(t, tally[Hunt])
	assert.Equal(t, 1, tally[Improve])
}

func TestCarController_ActsEveryRound(t *testing.T) {
	w := testutil.NewFakeWorld(core.NewBoard(), 0)
	w.AddUnit(0, core.Car, core.NewPosition(30, 30))
	for round := 0; round < 4; round++ {
		w.RoundNum = round
		assert.Equal(t, 1, runCars(w).Total(), "round %d", round)
	}
}

func TestTally(t *testing.T) {
	a := Tally{Fight: 2, Water: 1}
	a.Add(Tally{Fight: 1, Hunt: 4})
	assert.Equal(t, Tally{Fight: 3, Water: 1, Hunt: 4}, a)
	assert.Equal(t, 8, a.Total())
	assert.Equal(t, "hunt", Hunt.String())
	assert.Equal(t, "Decision(42)", Decision(42).String())
}
