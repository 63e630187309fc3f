package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/6453mike/PolarizedLadder/board"
)

// History returns the turns played so far, oldest first.
func (g *Game) History() []Turn {
	return append([]Turn(nil), g.history...)
}

// HistoryLabels returns the labels of the turns player made.
func (g *Game) HistoryLabels(player board.Player) []string {
	mine := lo.Filter(g.history, func(t Turn, _ int) bool {
		return t.Player == player
	})
	return lo.Map(mine, func(t Turn, _ int) string {
		return t.Position.Label()
	})
}

// HistoryString lists the turns two to a line, numbered like a score
// sheet:
//
//	1. G4 F3
//	2. H4
func (g *Game) HistoryString() string {
	var sb strings.Builder
	for i, pair := range lo.Chunk(g.history, 2) {
		labels := lo.Map(pair, func(t Turn, _ int) string {
			return t.Position.Label()
		})
		fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.Join(labels, " "))
	}
	return sb.String()
}
