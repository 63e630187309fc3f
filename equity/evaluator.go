// Package equity scores board states for the search.
package equity

import "github.com/6453mike/PolarizedLadder/board"

const (
	// WinValue is the score of a win with no depth remaining. A win found
	// with d plies left is worth WinValue*(d+1), so earlier wins score more.
	WinValue = 100
	// FourWeight and ThreeWeight weigh open ladders with four and three of
	// five cells held.
	FourWeight  = 2
	ThreeWeight = 1
)

// Evaluate scores b from player one's point of view, negated when
// maximizer is player two. depthRemaining is the number of plies the search
// still had left when it stopped at this board.
func Evaluate(b *board.Board, maximizer board.Player, depthRemaining int) int {
	v := evaluate(b, depthRemaining)
	if maximizer == board.PlayerTwo {
		return -v
	}
	return v
}

func evaluate(b *board.Board, depthRemaining int) int {
	switch {
	case b.HasWon(board.PlayerOne):
		return WinValue * (depthRemaining + 1)
	case b.HasWon(board.PlayerTwo):
		return -WinValue * (depthRemaining + 1)
	case b.IsFull():
		return 0
	}
	return Heuristic(b, board.PlayerOne) - Heuristic(b, board.PlayerTwo)
}

// Heuristic is the open-ladder term of one side.
func Heuristic(b *board.Board, player board.Player) int {
	return b.CountOpenLadders(player, 4)*FourWeight +
		b.CountOpenLadders(player, 3)*ThreeWeight
}
