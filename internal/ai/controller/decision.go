// Package controller turns the tactics of a round into one move per unit.
package controller

import "fmt"

// Decision names the branch of a controller that produced a unit's move
type Decision int

const (
	// Idle means no branch found a move, the unit stays put
	Idle Decision = iota
	Escape
	Fight
	Water
	Food
	Conquer
	Refuel
	Hunt
	// Improve is the greedy best-neighbour fallback
	Improve
)

var decisionNames = [...]string{"idle", "escape", "fight", "water", "food", "conquer", "refuel", "hunt", "improve"}

func (d Decision) String() string {
	if d < Idle || d > Improve {
		return fmt.Sprintf("Decision(%d)", int(d))
	}
	return decisionNames[d]
}

// Tally counts how many units took each decision
type Tally map[Decision]int

// Add merges other into t
func (t Tally) Add(other Tally) {
	for d, n := range other {
		t[d] += n
	}
}

// Total is the number of units counted
func (t Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}
