package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// This file contains all board rendering functionality for the match engine.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorGray   = "\033[90m"
)

var playerColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// Render returns the board as text: terrain in the scenario alphabet,
// warriors as the owner's digit and cars as the owner's letter.
// With color set, owned cities and units are tinted per player.
func (e *Engine) Render(color bool) string {
	var sb strings.Builder
	sb.Grow((core.GridSize*12 + 1) * (core.GridSize + 2))

	fmt.Fprintf(&sb, "round %d\n", e.ms.Round)
	for r := 0; r < core.GridSize; r++ {
		for c := 0; c < core.GridSize; c++ {
			cell := e.ms.Board.Cell(core.NewPosition(r, c))
			symbol, owner := cell.Type.Symbol(), cell.Owner
			if !cell.IsEmpty() {
				u := e.ms.Units[cell.UnitID]
				owner = u.Player
				if u.Type == core.Car {
					symbol = byte('A' + u.Player)
				} else {
					symbol = byte('0' + u.Player)
				}
			} else if !cell.IsCity() {
				owner = core.NeutralID
			}
			writeSymbol(&sb, symbol, owner, color)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeSymbol(sb *strings.Builder, symbol byte, owner int, color bool) {
	if !color {
		sb.WriteByte(symbol)
		return
	}
	tint := ColorGray
	if owner >= 0 {
		tint = playerColors[owner%len(playerColors)]
	}
	sb.WriteString(tint)
	sb.WriteByte(symbol)
	sb.WriteString(ColorReset)
}
