// Package game runs a Polarized Ladder game: whose turn it is, applying
// moves, and deciding when the game is won or drawn. A Game doesn't care
// how it is played; AI and human players live outside this package.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/6453mike/PolarizedLadder/board"
)

// PlayState is the state of a game.
type PlayState uint8

const (
	StatePlaying PlayState = iota
	StateWon
	StateDraw
)

func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateWon:
		return "WON"
	case StateDraw:
		return "DRAW"
	}
	return "UNKNOWN"
}

var (
	ErrGameOver         = errors.New("game is over")
	ErrPositionOccupied = errors.New("position is occupied")
	ErrNotOnTurn        = errors.New("player is not on turn")
)

// Turn is one placed stone.
type Turn struct {
	Player   board.Player
	Position board.Position
}

func (t Turn) String() string {
	return fmt.Sprintf("%c %v", t.Player.Symbol(), t.Position.Label())
}

type Game struct {
	board   *board.Board
	players [2]*playerState
	onturn  board.Player
	playing PlayState
	winner  board.Player
	ladder  board.Ladder
	history []Turn
}

// NewGame starts an empty game with player one on turn.
func NewGame(nicknames ...string) *Game {
	g := &Game{board: board.NewBoard()}
	for i, p := range board.Players {
		nick := fmt.Sprintf("player%d", i+1)
		if i < len(nicknames) && nicknames[i] != "" {
			nick = nicknames[i]
		}
		g.players[i] = newPlayerState(nick, p)
	}
	g.StartGame()
	return g
}

// StartGame clears the board and the history.
func (g *Game) StartGame() {
	g.board.Clear()
	g.onturn = board.PlayerOne
	g.playing = StatePlaying
	g.winner = board.NoPlayer
	g.ladder = board.Ladder{}
	g.history = nil
	for _, p := range g.players {
		p.resetStones()
	}
	log.Debug().Msg("game-started")
}

// PlayPosition places a stone for the player on turn.
func (g *Game) PlayPosition(pos board.Position) error {
	if g.playing != StatePlaying {
		return ErrGameOver
	}
	if !pos.Valid() {
		return fmt.Errorf("%w: position %d", board.ErrInvalidLabel, pos)
	}
	if !g.board.Place(pos, g.onturn) {
		return fmt.Errorf("%w: %v", ErrPositionOccupied, pos.Label())
	}
	g.history = append(g.history, Turn{Player: g.onturn, Position: pos})
	g.players[g.onturn.Index()].stones++
	log.Debug().Str("player", g.onturn.String()).Str("position", pos.Label()).
		Int("turn", len(g.history)).Msg("played")
	g.updateState()
	return nil
}

// PlayLabel places a stone on the cell named by label.
func (g *Game) PlayLabel(label string) error {
	pos, err := board.LabelToPosition(label)
	if err != nil {
		return err
	}
	return g.PlayPosition(pos)
}

// PlayFor is PlayPosition with a check that player is on turn.
func (g *Game) PlayFor(player board.Player, pos board.Position) error {
	if player != g.onturn {
		return fmt.Errorf("%w: %v", ErrNotOnTurn, player)
	}
	return g.PlayPosition(pos)
}

// updateState checks the player who just moved for a win, then the board
// for a draw, and passes the turn otherwise.
func (g *Game) updateState() {
	if l, ok := g.board.WinningLadder(g.onturn); ok {
		g.playing = StateWon
		g.winner = g.onturn
		g.ladder = l
		log.Debug().Str("winner", g.onturn.String()).Str("ladder", l.String()).Msg("game-won")
		return
	}
	if g.board.IsFull() {
		g.playing = StateDraw
		log.Debug().Msg("game-drawn")
		return
	}
	g.onturn = g.onturn.Next()
}

// SetPosition replaces the board with a position in board notation, with
// onturn to move. Setting up a finished position ends the game.
func (g *Game) SetPosition(notation string, onturn board.Player) error {
	if !onturn.Valid() {
		return fmt.Errorf("%w: %v", ErrNotOnTurn, onturn)
	}
	b, err := board.ParseNotation(notation)
	if err != nil {
		return err
	}
	g.board.CopyFrom(b)
	g.history = nil
	g.playing = StatePlaying
	g.winner = board.NoPlayer
	g.ladder = board.Ladder{}
	for _, p := range board.Players {
		g.players[p.Index()].stones = b.Stones(p)
		if l, ok := b.WinningLadder(p); ok {
			g.playing = StateWon
			g.winner = p
			g.ladder = l
		}
	}
	if g.playing == StatePlaying && b.IsFull() {
		g.playing = StateDraw
	}
	g.onturn = onturn
	log.Debug().Str("notation", notation).Str("onturn", onturn.String()).
		Str("state", g.playing.String()).Msg("position-set")
	return nil
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Player {
	return g.onturn
}

func (g *Game) NickOnTurn() string {
	return g.players[g.onturn.Index()].Nickname
}

func (g *Game) NickFor(p board.Player) string {
	return g.players[p.Index()].Nickname
}

func (g *Game) SetNickname(p board.Player, nick string) {
	g.players[p.Index()].Nickname = nick
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// Winner returns NoPlayer unless the game is won.
func (g *Game) Winner() board.Player {
	return g.winner
}

// WinningLadder is the ladder that won the game, if any.
func (g *Game) WinningLadder() (board.Ladder, bool) {
	return g.ladder, g.playing == StateWon
}

// Turn is the number of stones placed since the game or position started.
func (g *Game) Turn() int {
	return len(g.history)
}

// LastTurn returns the most recent turn, if there was one.
func (g *Game) LastTurn() (Turn, bool) {
	if len(g.history) == 0 {
		return Turn{}, false
	}
	return g.history[len(g.history)-1], true
}
