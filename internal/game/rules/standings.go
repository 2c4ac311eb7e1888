package rules

import (
	"sort"

	"github.com/rs/zerolog"
)

// Standing is one row of the final table
type Standing struct {
	PlayerID int
	Score    int
	Kills    int
	Rank     int
}

// Standings ranks players at the end of a match
type Standings struct {
	logger zerolog.Logger
}

// NewStandings creates a new standings calculator
func NewStandings(logger zerolog.Logger) *Standings {
	return &Standings{
		logger: logger.With().Str("component", "Standings").Logger(),
	}
}

// Rank orders players by score, then kills, then ID. Players with equal score
// and kills share a rank. The winner is -1 when first place is shared.
func (s *Standings) Rank(scores, kills []int) ([]Standing, int) {
	table := make([]Standing, len(scores))
	for i := range scores {
		table[i] = Standing{PlayerID: i, Score: scores[i]}
		if i < len(kills) {
			table[i].Kills = kills[i]
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Score != table[j].Score {
			return table[i].Score > table[j].Score
		}
		if table[i].Kills != table[j].Kills {
			return table[i].Kills > table[j].Kills
		}
		return table[i].PlayerID < table[j].PlayerID
	})

	for i := range table {
		table[i].Rank = i + 1
		if i > 0 && table[i].Score == table[i-1].Score && table[i].Kills == table[i-1].Kills {
			table[i].Rank = table[i-1].Rank
		}
	}

	winner := -1
	if len(table) == 1 || (len(table) > 1 && table[1].Rank != 1) {
		winner = table[0].PlayerID
	}

	if winner >= 0 {
		s.logger.Info().Int("winner_player_id", winner).Int("score", table[0].Score).Msg("Winner determined")
	} else {
		s.logger.Info().Msg("No winner found (tie for first place)")
	}
	return table, winner
}
