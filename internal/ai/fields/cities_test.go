package fields

import (
	"testing"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/mitchelldurbincs/DesertWarsAI/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCityGroups_PartitionsCityCells(t *testing.T) {
	board := testutil.BoardFromRows(
		"CC........",
		"CC........",
		"..C.......", // touches the first block diagonally
		"......CCC.",
		"..........",
		"C.........",
	)

	cg := BuildCityGroups(board)

	require.Equal(t, 3, cg.Len())
	assert.ElementsMatch(t, []core.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, cg.Groups[0])
	assert.ElementsMatch(t, []core.Position{{Row: 3, Col: 6}, {Row: 3, Col: 7}, {Row: 3, Col: 8}}, cg.Groups[1])
	assert.Equal(t, []core.Position{{Row: 5, Col: 0}}, cg.Groups[2])

	// First cell of each group is its row-major first cell
	assert.Equal(t, core.NewPosition(0, 0), cg.Groups[0][0])
	assert.Equal(t, core.NewPosition(3, 6), cg.Groups[1][0])

	seen := make(map[core.Position]int)
	for id, group := range cg.Groups {
		for _, p := range group {
			_, dup := seen[p]
			require.False(t, dup, "%s appears in two groups", p)
			seen[p] = id
			assert.Equal(t, id, cg.GroupOf(p))
		}
	}
	for i, c := range board.Cells {
		p := core.FromIndex(i)
		if c.Type == core.City {
			_, ok := seen[p]
			assert.True(t, ok, "city cell %s has no group", p)
		} else {
			assert.Equal(t, -1, cg.GroupOf(p), "non-city cell %s has a group", p)
		}
	}
	assert.Equal(t, -1, cg.GroupOf(core.NewPosition(-1, 0)))
}

func TestBuildCityGroups_GroupsAreMaximal(t *testing.T) {
	board := core.NewBoard()
	testutil.FillRect(board, 10, 10, 13, 13, core.City)
	testutil.FillRect(board, 14, 14, 16, 16, core.City)
	testutil.FillRect(board, 30, 30, 31, 31, core.City)

	cg := BuildCityGroups(board)

	require.Equal(t, 2, cg.Len())
	assert.Len(t, cg.Groups[0], 16+9)
	assert.Len(t, cg.Groups[1], 4)

	// No city cell of one group is adjacent to a city cell of another
	for i, a := range cg.Groups {
		for j, b := range cg.Groups {
			if i == j {
				continue
			}
			for _, p := range a {
				for _, q := range b {
					assert.Greater(t, p.Distance(q), 1)
				}
			}
		}
	}
}

func TestCityGroups_Stats(t *testing.T) {
	board := core.NewBoard()
	testutil.FillRect(board, 0, 0, 1, 1, core.City)
	testutil.FillRect(board, 10, 10, 11, 11, core.City)
	testutil.FillRect(board, 20, 20, 21, 21, core.City)

	w := testutil.NewFakeWorld(board, 1)
	w.SetCityOwner(1, core.NewPosition(0, 0))
	// Owner of a non-first cell does not matter
	w.SetCityOwner(1, core.NewPosition(11, 11))
	w.SetCityOwner(2, core.NewPosition(20, 20))

	w.AddUnit(1, core.Warrior, core.NewPosition(0, 1))
	w.AddUnit(1, core.Warrior, core.NewPosition(1, 1))
	w.AddUnit(3, core.Warrior, core.NewPosition(1, 0))
	w.AddUnit(2, core.Warrior, core.NewPosition(20, 21))
	w.AddUnit(1, core.Car, core.NewPosition(10, 10)) // cars are not counted
	w.AddUnit(1, core.Warrior, core.NewPosition(5, 5))

	cg := BuildCityGroups(board)
	st := cg.Stats(w)

	assert.Equal(t, []bool{true, false, false}, st.Owned)
	assert.Equal(t, 1, st.NumOwned)
	assert.Equal(t, []int{2, 0, 0}, st.AlliesInCity)
	assert.Equal(t, []int{1, 0, 1}, st.EnemiesInCity)

	// Seen from player 2 the same board gives a different picture
	w.Player = 2
	st = cg.Stats(w)
	assert.Equal(t, []bool{false, false, true}, st.Owned)
	assert.Equal(t, []int{0, 0, 1}, st.AlliesInCity)
	assert.Equal(t, []int{3, 0, 0}, st.EnemiesInCity)
}
