package fields

import "github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"

// CityGroups partitions every City cell into maximal 8-connected regions.
// Groups are numbered in row-major order of their first cell.
type CityGroups struct {
	Groups [][]core.Position
	index  *Grid
}

// CityStats is the per-round view of the city groups from one faction
type CityStats struct {
	Owned         []bool
	NumOwned      int
	AlliesInCity  []int
	EnemiesInCity []int
}

// BuildCityGroups flood-fills the City cells of the terrain
func BuildCityGroups(t Terrain) *CityGroups {
	cg := &CityGroups{index: NewGrid(-1)}

	for idx := 0; idx < core.GridSize*core.GridSize; idx++ {
		start := core.FromIndex(idx)
		if t.Cell(start).Type != core.City || cg.index.At(start) != -1 {
			continue
		}

		id := len(cg.Groups)
		group := []core.Position{start}
		cg.index.Set(start, id)
		for head := 0; head < len(group); head++ {
			for _, p2 := range group[head].Neighbors() {
				if !p2.IsValid() || cg.index.At(p2) != -1 || t.Cell(p2).Type != core.City {
					continue
				}
				cg.index.Set(p2, id)
				group = append(group, p2)
			}
		}
		cg.Groups = append(cg.Groups, group)
	}
	return cg
}

// GroupOf returns the group index of a City cell, or -1
func (cg *CityGroups) GroupOf(p core.Position) int {
	if !p.IsValid() {
		return -1
	}
	return cg.index.At(p)
}

func (cg *CityGroups) Len() int { return len(cg.Groups) }

// Stats computes ownership and occupant counts for the faction viewing s.
// A group's owner is the owner of its first cell.
func (cg *CityGroups) Stats(s core.Snapshot) CityStats {
	n := len(cg.Groups)
	st := CityStats{
		Owned:         make([]bool, n),
		AlliesInCity:  make([]int, n),
		EnemiesInCity: make([]int, n),
	}

	me := s.Me()
	for i, group := range cg.Groups {
		st.Owned[i] = s.Cell(group[0]).Owner == me
		if st.Owned[i] {
			st.NumOwned++
		}

		for _, p := range group {
			c := s.Cell(p)
			if c.UnitID == core.NoUnit {
				continue
			}
			u := s.Unit(c.UnitID)
			if u.Type != core.Warrior {
				continue
			}
			if u.Player == me {
				st.AlliesInCity[i]++
			} else {
				st.EnemiesInCity[i]++
			}
		}
	}
	return st
}
