package ai

import (
	"testing"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/ai/controller"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/config"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func huntWorld() (*testutil.FakeWorld, int, int) {
	b := core.NewBoard()
	testutil.FillRect(b, 10, 0, 10, core.GridSize-1, core.Road)
	b.SetType(core.NewPosition(30, 30), core.City)
	w := testutil.NewFakeWorld(b, 0)
	warrior := w.AddUnit(0, core.Warrior, core.NewPosition(40, 40))
	car := w.AddUnit(0, core.Car, core.NewPosition(10, 5))
	w.AddUnit(1, core.Warrior, core.NewPosition(10, 15))
	return w, warrior, car
}

func TestPlayer_Play(t *testing.T) {
	w, warrior, car := huntWorld()
	p := NewPlayer(config.Default().AI, testutil.NopLogger())
	require.Nil(t, p.Static())

	s := p.Play(w)

	require.NotNil(t, p.Static())
	assert.Equal(t, 0, s.Round)
	assert.Equal(t, 1, s.Warriors.Total())
	assert.Equal(t, 1, s.Cars[controller.Hunt])
	assert.Equal(t, []core.Position{core.NewPosition(10, 15)}, s.Targets)
	assert.Equal(t, core.East, w.Issued[car])
	_, ordered := w.Issued[warrior]
	assert.True(t, ordered)
}

func TestPlayer_StaticBuiltOnce(t *testing.T) {
	w, _, _ := huntWorld()
	p := NewPlayer(config.Default().AI, testutil.NopLogger())

	p.Play(w)
	first := p.Static()

	// Terrain never changes, so later edits must not be seen
	w.Board.SetType(core.NewPosition(50, 50), core.Water)
	w.RoundNum = 1
	s := p.Play(w)

	assert.Same(t, first, p.Static())
	assert.Zero(t, s.Warriors.Total(), "round 1 belongs to player 1")
	assert.Equal(t, 1, s.Cars.Total())
}

func TestPlayer_FreshStateEachRound(t *testing.T) {
	w, _, _ := huntWorld()
	p := NewPlayer(config.Default().AI, testutil.NopLogger())

	first := p.Play(w)
	second := p.Play(w)

	// The exclusion list of the previous round does not leak
	assert.Equal(t, first.Targets, second.Targets)
}

func TestPlayer_SetConfig(t *testing.T) {
	w, _, _ := huntWorld()
	p := NewPlayer(config.Default().AI, testutil.NopLogger())
	w.StatusValue = 0.5

	cfg := config.Default().AI
	cfg.MaxStatus = 0.25
	p.SetConfig(cfg)
	assert.Equal(t, 0.25, p.Config().MaxStatus)

	s := p.Play(w)
	assert.Zero(t, s.Cars[controller.Hunt])
	assert.Empty(t, s.Targets)
}
