package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

func addText(lines []string, row int, hpad int, text string) {
	if row >= len(lines) {
		return
	}
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board with both players, the last move and the game state
// alongside it.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText()
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1

	log.Debug().Str("onturn", g.onturn.String()).Msg("todisplaytext")
	for i, p := range g.players {
		addText(bts, vpadding+i, hpadding,
			p.stateString(g.playing == StatePlaying && g.onturn.Index() == i))
	}
	if last, ok := g.LastTurn(); ok {
		addText(bts, vpadding+3, hpadding, fmt.Sprintf("Last move: %v", last))
	}
	switch g.playing {
	case StateWon:
		addText(bts, vpadding+5, hpadding,
			fmt.Sprintf("%v wins with %v", g.NickFor(g.winner), g.ladder.Positions()))
	case StateDraw:
		addText(bts, vpadding+5, hpadding, "Board full: draw")
	}
	return strings.Join(bts, "\n")
}
