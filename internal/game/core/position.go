package core

import "fmt"

// GridSize is the side length of the square board.
const GridSize = 60

// Position represents a cell on the board as (row, column)
type Position struct {
	Row, Col int
}

// NewPosition creates a new position with the given row and column
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// FromIndex creates a position from a board array index using row-major ordering
func FromIndex(idx int) Position {
	return Position{
		Row: idx / GridSize,
		Col: idx % GridSize,
	}
}

// IsValid checks if the position is within the board
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// Index converts the position to a board array index using row-major ordering
func (p Position) Index() int {
	return p.Row*GridSize + p.Col
}

// Distance calculates the Chebyshev distance to another position.
// Units move in eight directions, so this is the number of steps between them.
func (p Position) Distance(other Position) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// Add returns the position one step away in direction d
func (p Position) Add(d Direction) Position {
	off := d.Offset()
	return Position{Row: p.Row + off.Row, Col: p.Col + off.Col}
}

// Neighbors returns the eight surrounding positions in Directions order.
// Positions off the board are included; callers filter with IsValid.
func (p Position) Neighbors() [8]Position {
	var out [8]Position
	for i, d := range Directions {
		out[i] = p.Add(d)
	}
	return out
}

// DirectionTo returns the direction from p to an adjacent position, or NoMove
func (p Position) DirectionTo(other Position) Direction {
	for _, d := range Directions {
		if p.Add(d) == other {
			return d
		}
	}
	return NoMove
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the eight compass directions, or NoMove
type Direction int

const (
	South Direction = iota
	SouthEast
	East
	NorthEast
	North
	NorthWest
	West
	SouthWest
	NoMove
)

// Directions lists the eight movement directions in iteration order.
// Every heuristic walks neighbours in this order, which makes tie-breaks deterministic.
var Directions = [8]Direction{South, SouthEast, East, NorthEast, North, NorthWest, West, SouthWest}

var directionOffsets = [9]Position{
	South:     {Row: 1, Col: 0},
	SouthEast: {Row: 1, Col: 1},
	East:      {Row: 0, Col: 1},
	NorthEast: {Row: -1, Col: 1},
	North:     {Row: -1, Col: 0},
	NorthWest: {Row: -1, Col: -1},
	West:      {Row: 0, Col: -1},
	SouthWest: {Row: 1, Col: -1},
	NoMove:    {Row: 0, Col: 0},
}

var directionNames = [9]string{"S", "SE", "E", "NE", "N", "NW", "W", "SW", "none"}

// Offset returns the (row, col) delta of the direction
func (d Direction) Offset() Position {
	if d < South || d > NoMove {
		return Position{}
	}
	return directionOffsets[d]
}

// IsMove reports whether d is one of the eight real directions
func (d Direction) IsMove() bool {
	return d >= South && d < NoMove
}

func (d Direction) String() string {
	if d < South || d > NoMove {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
