package core

// CellType is the static terrain kind of a cell
type CellType int

const (
	Desert CellType = iota
	Road
	City
	Water
	Station
	Wall
)

var cellTypeNames = [...]string{"desert", "road", "city", "water", "station", "wall"}

// cellTypeSymbols is the one-character map alphabet
var cellTypeSymbols = [...]byte{'.', 'R', 'C', 'W', 'S', 'X'}

// Symbol returns the map character of the terrain
func (t CellType) Symbol() byte {
	if t < Desert || t > Wall {
		return '?'
	}
	return cellTypeSymbols[t]
}

// CellTypeFromSymbol parses one map character
func CellTypeFromSymbol(b byte) (CellType, bool) {
	for i, s := range cellTypeSymbols {
		if s == b {
			return CellType(i), true
		}
	}
	return Desert, false
}

func (t CellType) String() string {
	if t < Desert || t > Wall {
		return "unknown"
	}
	return cellTypeNames[t]
}

const (
	// NoUnit marks an empty cell
	NoUnit = -1
	// NeutralID is the owner of a city nobody holds
	NeutralID = -1
)

// Cell represents a single square on the map.
// UnitID: NoUnit when empty.
// Owner: only meaningful for City cells; NeutralID when unowned.
type Cell struct {
	Type   CellType
	UnitID int
	Owner  int
}

func (c Cell) IsEmpty() bool { return c.UnitID == NoUnit }
func (c Cell) IsCity() bool  { return c.Type == City }
func (c Cell) IsRoad() bool  { return c.Type == Road }

// WarriorCanEnter reports whether a warrior may stand on this terrain
func (c Cell) WarriorCanEnter() bool {
	return c.Type == Road || c.Type == Desert || c.Type == City
}

// CarCanEnter reports whether a car may stand on this terrain
func (c Cell) CarCanEnter() bool {
	return c.Type == Road || c.Type == Desert
}

// CanEnter reports whether a unit of the given kind may stand on this terrain
func (c Cell) CanEnter(kind UnitType) bool {
	if kind == Car {
		return c.CarCanEnter()
	}
	return c.WarriorCanEnter()
}

type Board struct {
	Cells []Cell // length = GridSize*GridSize (row-major)
}

func NewBoard() *Board {
	b := &Board{Cells: make([]Cell, GridSize*GridSize)}
	for i := range b.Cells {
		// All cells start as empty, neutral desert
		b.Cells[i].Type = Desert
		b.Cells[i].UnitID = NoUnit
		b.Cells[i].Owner = NeutralID
	}
	return b
}

// Cell returns a copy of the cell at p. p must be valid.
func (b *Board) Cell(p Position) Cell {
	return b.Cells[p.Index()]
}

// GetCell safely returns a cell pointer if the position is valid, nil otherwise
func (b *Board) GetCell(p Position) *Cell {
	if !p.IsValid() {
		return nil
	}
	return &b.Cells[p.Index()]
}

// SetType changes the terrain of a cell, ignoring invalid positions
func (b *Board) SetType(p Position, t CellType) {
	if c := b.GetCell(p); c != nil {
		c.Type = t
	}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Cells: cells}
}
