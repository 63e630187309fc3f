package board

import (
	"strconv"
	"strings"
)

// ToDisplayText draws the board as a triangle with row 7 at the top and
// the column letters underneath. Stones are drawn with their player's
// symbol, empty cells with a dot.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for row := NumRows - 1; row >= 0; row-- {
		sb.WriteString("\n")
		sb.WriteString(strconv.Itoa(row + 1))
		sb.WriteString("  ")
		for col := 0; col < NumColumns; col++ {
			p := PositionAt(col, row)
			switch {
			case p == NoPosition:
				sb.WriteByte(' ')
			case b.IsOccupied(p):
				sb.WriteByte(b.OccupiedBy(p).Symbol())
			default:
				sb.WriteByte('.')
			}
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n   ")
	for col := 0; col < NumColumns; col++ {
		sb.WriteByte(columnLetters[col])
		sb.WriteString("  ")
	}
	sb.WriteString("\n")
	return sb.String()
}
