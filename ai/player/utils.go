package player

import (
	"github.com/samber/lo"

	"github.com/6453mike/PolarizedLadder/board"
)

// EmptyPositions lists the free cells of b in catalog order.
func EmptyPositions(b *board.Board) []board.Position {
	return lo.Filter(board.AllPositions(), func(p board.Position, _ int) bool {
		return !b.IsOccupied(p)
	})
}
