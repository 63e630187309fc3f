package move

import (
	"fmt"

	"github.com/6453mike/PolarizedLadder/board"
)

// Move is a position paired with the score the search assigned to it. A
// move without a position is what a search returns from a leaf, or when no
// child improved on its starting bound.
type Move struct {
	Position board.Position
	Score    int
}

// NewMove creates a move on pos.
func NewMove(pos board.Position, score int) Move {
	return Move{Position: pos, Score: score}
}

// NoMove is a move without a position carrying only a score.
func NoMove(score int) Move {
	return Move{Position: board.NoPosition, Score: score}
}

func (m Move) HasPosition() bool {
	return m.Position.Valid()
}

// Label is the user-visible coordinate of the move, or "--".
func (m Move) Label() string {
	return m.Position.Label()
}

// ShortDescription is what the shell prints for a move.
func (m Move) ShortDescription() string {
	if !m.HasPosition() {
		return "(none)"
	}
	return m.Label()
}

func (m Move) String() string {
	return fmt.Sprintf("<move: %v score: %d>", m.Label(), m.Score)
}
