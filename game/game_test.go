package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/6453mike/PolarizedLadder/board"
)

func playAll(t *testing.T, g *Game, labels ...string) {
	t.Helper()
	for _, l := range labels {
		if err := g.PlayLabel(l); err != nil {
			t.Fatalf("playing %v: %v", l, err)
		}
	}
}

func TestTurnsAlternate(t *testing.T) {
	is := is.New(t)
	g := NewGame("alice", "bob")
	is.Equal(g.PlayerOnTurn(), board.PlayerOne)
	is.Equal(g.NickOnTurn(), "alice")
	playAll(t, g, "G4")
	is.Equal(g.PlayerOnTurn(), board.PlayerTwo)
	is.Equal(g.NickOnTurn(), "bob")
	playAll(t, g, "F3")
	is.Equal(g.PlayerOnTurn(), board.PlayerOne)
	is.Equal(g.Turn(), 2)
	is.Equal(g.Playing(), StatePlaying)
	is.Equal(g.Board().OccupiedBy(board.Position(36)), board.PlayerOne)
}

func TestRejectedMovesKeepTurn(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	playAll(t, g, "G4")

	err := g.PlayLabel("g4")
	is.True(errors.Is(err, ErrPositionOccupied))
	err = g.PlayLabel("Z9")
	is.True(errors.Is(err, board.ErrInvalidLabel))
	err = g.PlayPosition(board.NoPosition)
	is.True(errors.Is(err, board.ErrInvalidLabel))
	err = g.PlayFor(board.PlayerOne, board.Position(0))
	is.True(errors.Is(err, ErrNotOnTurn))

	is.Equal(g.PlayerOnTurn(), board.PlayerTwo)
	is.Equal(g.Turn(), 1)
	is.Equal(g.Board().NumOccupied(), 1)
}

func TestWin(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	playAll(t, g, "A1", "M1", "B1", "L1", "B2", "K1", "C2", "J1")
	is.Equal(g.Playing(), StatePlaying)
	playAll(t, g, "C3")
	is.Equal(g.Playing(), StateWon)
	is.Equal(g.Winner(), board.PlayerOne)
	// The winner stays on turn; nothing else can be played.
	is.Equal(g.PlayerOnTurn(), board.PlayerOne)
	l, ok := g.WinningLadder()
	is.True(ok)
	is.Equal(l.Row, 0)
	is.True(errors.Is(g.PlayLabel("G7"), ErrGameOver))
	is.True(strings.Contains(g.ToDisplayText(), "player1 wins with [A1 B1 B2 C2 C3]"))
}

func TestNeutralizedLadderDoesNotWin(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	playAll(t, g, "D2", "F2", "E2", "D4", "E3", "A1", "F3", "M1", "F4")
	is.Equal(g.Playing(), StatePlaying)
	is.Equal(g.Winner(), board.NoPlayer)
}

func TestDraw(t *testing.T) {
	is := is.New(t)
	var p1, p2 []board.Position
	for _, p := range board.AllPositions() {
		col, _ := p.Coords()
		if col%2 == 0 {
			p1 = append(p1, p)
		} else {
			p2 = append(p2, p)
		}
	}
	g := NewGame()
	for i := range p2 {
		is.NoErr(g.PlayPosition(p1[i]))
		is.NoErr(g.PlayPosition(p2[i]))
	}
	is.Equal(g.Playing(), StatePlaying)
	is.NoErr(g.PlayPosition(p1[len(p1)-1]))
	is.Equal(g.Playing(), StateDraw)
	is.Equal(g.Winner(), board.NoPlayer)
	is.True(strings.Contains(g.ToDisplayText(), "Board full: draw"))
}

func TestHistory(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	playAll(t, g, "G4", "F3", "H4")
	h := g.History()
	is.Equal(len(h), 3)
	is.Equal(h[1], Turn{Player: board.PlayerTwo, Position: board.Position(27)})
	is.Equal(g.HistoryLabels(board.PlayerOne), []string{"G4", "H4"})
	is.Equal(g.HistoryString(), "1. G4 F3\n2. H4\n")

	h[0].Position = board.Position(0)
	is.Equal(g.History()[0].Position.Label(), "G4")

	last, ok := g.LastTurn()
	is.True(ok)
	is.Equal(last.String(), "o H4")

	g.StartGame()
	is.Equal(g.Turn(), 0)
	_, ok = g.LastTurn()
	is.True(!ok)
	is.Equal(g.Board().NumOccupied(), 0)
}

func TestSetPosition(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.NoErr(g.SetPosition("1/3/5/7/9/11/13", board.PlayerTwo))
	is.Equal(g.PlayerOnTurn(), board.PlayerTwo)
	is.Equal(g.Playing(), StatePlaying)

	// Five in a row is not a ladder.
	is.NoErr(g.SetPosition("1/3/5/7/9/2x8/ooooo8", board.PlayerTwo))
	is.Equal(g.Playing(), StatePlaying)

	is.NoErr(g.SetPosition("1/3/5/7/o8/oo9/oo10x", board.PlayerTwo))
	is.Equal(g.Playing(), StateWon)
	is.Equal(g.Winner(), board.PlayerOne)

	is.True(g.SetPosition("1/3", board.PlayerOne) != nil)
	is.True(errors.Is(g.SetPosition("1/3/5/7/9/11/13", board.NoPlayer), ErrNotOnTurn))
}

func TestDisplayShowsPlayers(t *testing.T) {
	is := is.New(t)
	g := NewGame("alice", "bob")
	playAll(t, g, "G7")
	out := g.ToDisplayText()
	is.True(strings.Contains(out, "alice (o)    1"))
	is.True(strings.Contains(out, "-> "))
	is.True(strings.Contains(out, "Last move: o G7"))
}
