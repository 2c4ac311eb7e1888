package testutil

import (
	"fmt"
	"sort"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// BoardFromRows builds a desert board and overlays rows starting at (0,0).
// Unknown characters panic so typos in fixtures fail loudly.
func BoardFromRows(rows ...string) *core.Board {
	b := core.NewBoard()
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			t, ok := core.CellTypeFromSymbol(row[c])
			if !ok {
				panic(fmt.Sprintf("unknown terrain %q at (%d,%d)", row[c], r, c))
			}
			b.SetType(core.NewPosition(r, c), t)
		}
	}
	return b
}

// FillRect sets every cell of the rectangle [r0,r1]x[c0,c1] to t
func FillRect(b *core.Board, r0, c0, r1, c1 int, t core.CellType) {
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			b.SetType(core.NewPosition(r, c), t)
		}
	}
}

// FakeWorld is an in-memory core.World with fully scriptable answers
type FakeWorld struct {
	Board    *core.Board
	Units    map[int]core.Unit
	Player   int
	Players  int
	RoundNum int
	Scores   []int
	// Status returned for every player
	StatusValue float64
	// Cars listed here cannot move; everything else can
	Immobile map[int]bool
	Coin     bool

	// Every command in issue order, and the last direction per unit
	Commands []core.Command
	Issued   map[int]core.Direction

	nextID int
}

// NewFakeWorld wraps a board for a four-player game seen by player me
func NewFakeWorld(b *core.Board, me int) *FakeWorld {
	return &FakeWorld{
		Board:    b,
		Units:    make(map[int]core.Unit),
		Player:   me,
		Players:  4,
		Scores:   make([]int, 4),
		Immobile: make(map[int]bool),
		Issued:   make(map[int]core.Direction),
	}
}

// AddUnit places a unit with full resources and returns its id
func (w *FakeWorld) AddUnit(player int, kind core.UnitType, pos core.Position) int {
	id := w.nextID
	w.nextID++
	u := core.Unit{ID: id, Player: player, Type: kind, Pos: pos, Food: 40, Water: 40, Fuel: 100}
	w.Units[id] = u
	core.Place(w.Board, u)
	return id
}

// Update replaces a unit's resources
func (w *FakeWorld) Update(id int, mutate func(u *core.Unit)) {
	u := w.Units[id]
	mutate(&u)
	w.Units[id] = u
}

// SetCityOwner marks every city cell of the board at the given positions as owned
func (w *FakeWorld) SetCityOwner(owner int, ps ...core.Position) {
	for _, p := range ps {
		w.Board.Cells[p.Index()].Owner = owner
	}
}

// Moved returns where the unit ends up if its last command were applied
func (w *FakeWorld) Moved(id int) core.Position {
	u := w.Units[id]
	d, ok := w.Issued[id]
	if !ok {
		return u.Pos
	}
	return u.Pos.Add(d)
}

func (w *FakeWorld) Me() int         { return w.Player }
func (w *FakeWorld) NumPlayers() int { return w.Players }
func (w *FakeWorld) Round() int      { return w.RoundNum }

func (w *FakeWorld) Cell(p core.Position) core.Cell { return w.Board.Cell(p) }
func (w *FakeWorld) Unit(id int) core.Unit          { return w.Units[id] }

func (w *FakeWorld) Warriors(player int) []int { return w.ids(player, core.Warrior) }
func (w *FakeWorld) Cars(player int) []int     { return w.ids(player, core.Car) }

func (w *FakeWorld) ids(player int, kind core.UnitType) []int {
	var out []int
	for id, u := range w.Units {
		if u.Player == player && u.Type == kind {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

func (w *FakeWorld) TotalScore(player int) int { return w.Scores[player] }
func (w *FakeWorld) Status(player int) float64 { return w.StatusValue }
func (w *FakeWorld) CanMove(id int) bool       { return !w.Immobile[id] }
func (w *FakeWorld) RandomBool() bool          { return w.Coin }

func (w *FakeWorld) Command(id int, d core.Direction) {
	w.Commands = append(w.Commands, core.Command{PlayerID: w.Units[id].Player, UnitID: id, Dir: d})
	w.Issued[id] = d
}
