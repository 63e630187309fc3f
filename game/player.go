package game

import (
	"fmt"

	"github.com/6453mike/PolarizedLadder/board"
)

type playerState struct {
	Nickname string

	player board.Player
	stones int
}

func newPlayerState(nickname string, p board.Player) *playerState {
	return &playerState{Nickname: nickname, player: p}
}

func (p *playerState) resetStones() {
	p.stones = 0
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v (%c) %4v", onturn, p.Nickname, p.player.Symbol(), p.stones)
}
