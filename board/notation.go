package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Position notation lists the rows from row 7 down to row 1, separated by
// slashes. Each row uses player symbols for stones and a number for a run
// of empty cells, so the empty board is "1/3/5/7/9/11/13".

var ErrBadNotation = errors.New("bad position notation")

// Notation returns the position notation of b.
func (b *Board) Notation() string {
	rows := make([]string, 0, NumRows)
	for row := NumRows - 1; row >= 0; row-- {
		var sb strings.Builder
		empties := 0
		for col := row; col < NumColumns-row; col++ {
			p := PositionAt(col, row)
			owner := b.OccupiedBy(p)
			if owner == NoPlayer {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteByte(owner.Symbol())
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "/")
}

// ParseNotation builds a board from position notation.
func ParseNotation(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != NumRows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrBadNotation, NumRows, len(rows))
	}
	b := NewBoard()
	for i, rowText := range rows {
		row := NumRows - 1 - i
		width := NumColumns - 2*row
		col := row
		for j := 0; j < len(rowText); {
			c := rowText[j]
			if c >= '0' && c <= '9' {
				k := j
				for k < len(rowText) && rowText[k] >= '0' && rowText[k] <= '9' {
					k++
				}
				n, err := strconv.Atoi(rowText[j:k])
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrBadNotation, err)
				}
				if n > row+width-col {
					return nil, fmt.Errorf("%w: row %d is too long", ErrBadNotation, row+1)
				}
				col += n
				j = k
				continue
			}
			owner := PlayerFromSymbol(c)
			if owner == NoPlayer {
				return nil, fmt.Errorf("%w: unexpected %q in row %d", ErrBadNotation, c, row+1)
			}
			if col >= row+width {
				return nil, fmt.Errorf("%w: row %d is too long", ErrBadNotation, row+1)
			}
			b.Place(PositionAt(col, row), owner)
			col++
			j++
		}
		if col != row+width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrBadNotation, row+1, col-row, width)
		}
	}
	return b, nil
}
