package rules

import (
	"testing"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandings_Rank(t *testing.T) {
	s := NewStandings(testutil.NopLogger())

	t.Run("clear winner", func(t *testing.T) {
		table, winner := s.Rank([]int{10, 40, 25, 40}, []int{0, 3, 1, 1})
		require.Len(t, table, 4)
		assert.Equal(t, 1, winner)
		assert.Equal(t, []int{1, 3, 2, 0}, []int{table[0].PlayerID, table[1].PlayerID, table[2].PlayerID, table[3].PlayerID})
		assert.Equal(t, []int{1, 2, 3, 4}, []int{table[0].Rank, table[1].Rank, table[2].Rank, table[3].Rank})
	})

	t.Run("shared first place", func(t *testing.T) {
		table, winner := s.Rank([]int{30, 30, 5}, []int{2, 2, 9})
		assert.Equal(t, -1, winner)
		assert.Equal(t, 1, table[0].Rank)
		assert.Equal(t, 1, table[1].Rank)
		assert.Equal(t, 3, table[2].Rank)
		assert.Equal(t, 0, table[0].PlayerID)
	})

	t.Run("single player", func(t *testing.T) {
		_, winner := s.Rank([]int{0}, nil)
		assert.Equal(t, 0, winner)
	})
}
