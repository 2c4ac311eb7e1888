package fields

import "github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"

// Fields holds the distance from every cell to the nearest source of each kind
type Fields struct {
	Water *Grid // warrior steps to a Water cell
	Fuel  *Grid // car cost to a Station: 1 leaving Road, 4 otherwise
	City  *Grid // warrior steps to a City cell
	Road  *Grid // car steps to a Road cell
}

// passable is the movement graph a field propagates through
type passable func(c core.Cell) bool

// ComputeFields runs every distance propagation over the terrain.
// Cells no source reaches keep Unreachable.
func ComputeFields(t Terrain) *Fields {
	var water, stations, cities, roads []core.Position
	for idx := 0; idx < core.GridSize*core.GridSize; idx++ {
		p := core.FromIndex(idx)
		switch t.Cell(p).Type {
		case core.Water:
			water = append(water, p)
		case core.Station:
			stations = append(stations, p)
		case core.City:
			cities = append(cities, p)
		case core.Road:
			roads = append(roads, p)
		}
	}

	return &Fields{
		Water: bfs(t, water, core.Cell.WarriorCanEnter),
		Fuel:  weighted(t, stations, core.Cell.CarCanEnter, RoadCost),
		City:  bfs(t, cities, core.Cell.WarriorCanEnter),
		Road:  bfs(t, roads, core.Cell.CarCanEnter),
	}
}

// RoadCost is the cost of leaving a cell: cheap on roads, expensive elsewhere
func RoadCost(c core.Cell) int {
	if c.Type == core.Road {
		return 1
	}
	return 4
}

// bfs is a multi-source breadth-first search with unit edge cost.
// Sources themselves need not be passable.
func bfs(t Terrain, sources []core.Position, canGo passable) *Grid {
	dist := NewGrid(Unreachable)
	queue := make([]core.Position, 0, len(sources))
	for _, s := range sources {
		if dist.Lower(s, 0) {
			queue = append(queue, s)
		}
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		next := dist.At(p) + 1
		for _, p2 := range p.Neighbors() {
			if !p2.IsValid() || !canGo(t.Cell(p2)) {
				continue
			}
			if dist.Lower(p2, next) {
				queue = append(queue, p2)
			}
		}
	}
	return dist
}

// weighted is a multi-source cost-ordered expansion where the edge cost
// depends on the cell being left
func weighted(t Terrain, sources []core.Position, canGo passable, cost func(core.Cell) int) *Grid {
	dist := NewGrid(Unreachable)
	q := NewQueue()
	for _, s := range sources {
		if dist.Lower(s, 0) {
			q.Push(0, s)
		}
	}

	for q.Len() > 0 {
		it := q.Pop()
		if it.Cost != dist.At(it.Pos) {
			continue
		}
		next := it.Cost + cost(t.Cell(it.Pos))
		for _, p2 := range it.Pos.Neighbors() {
			if !p2.IsValid() || !canGo(t.Cell(p2)) {
				continue
			}
			if dist.Lower(p2, next) {
				q.Push(next, p2)
			}
		}
	}
	return dist
}
