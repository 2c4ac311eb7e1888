package fields

import "github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"

// Unreachable marks a cell no source can reach. It compares worse than any
// real distance in every heuristic.
const Unreachable = 1_000_000_000

// Grid is a 60x60 integer matrix stored row-major
type Grid [core.GridSize * core.GridSize]int

// NewGrid returns a grid with every cell set to v
func NewGrid(v int) *Grid {
	g := &Grid{}
	g.Fill(v)
	return g
}

func (g *Grid) Fill(v int) {
	for i := range g {
		g[i] = v
	}
}

// At returns the value at p. p must be valid.
func (g *Grid) At(p core.Position) int { return g[p.Index()] }

func (g *Grid) Set(p core.Position, v int) { g[p.Index()] = v }

// Lower sets the value at p to v if v is smaller, reporting whether it did
func (g *Grid) Lower(p core.Position, v int) bool {
	idx := p.Index()
	if v < g[idx] {
		g[idx] = v
		return true
	}
	return false
}

// Terrain is the static part of the world the precomputation reads
type Terrain interface {
	Cell(p core.Position) core.Cell
}
