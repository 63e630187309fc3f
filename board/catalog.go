package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Position is the canonical address of a cell, 0 through 48. Bit n of each
// side's occupancy set corresponds to Position n.
type Position int

const (
	// NumPositions is the number of cells on the board.
	NumPositions = 49
	// NumColumns is the number of labelled columns, A through M.
	NumColumns = 13
	// NumRows is the number of labelled rows, 1 through 7.
	NumRows = 7
	// NoPosition is carried by a Move that does not name a cell.
	NoPosition Position = -1

	columnLetters = "ABCDEFGHIJKLM"
)

var ErrInvalidLabel = errors.New("invalid position label")

// rowStart holds the first Position of each row. Row r (0-based from the
// bottom) spans columns r..12-r.
var rowStart = [NumRows]Position{0, 13, 24, 33, 40, 45, 48}

var (
	labels          [NumPositions]string
	coords          [NumPositions][2]int
	labelToPosition map[string]Position
	allPositions    []Position
)

func init() {
	labelToPosition = make(map[string]Position, NumPositions)
	for row := 0; row < NumRows; row++ {
		for col := row; col < NumColumns-row; col++ {
			p := rowStart[row] + Position(col-row)
			lbl := string(columnLetters[col]) + strconv.Itoa(row+1)
			labels[p] = lbl
			coords[p] = [2]int{col, row}
			labelToPosition[lbl] = p
		}
	}
	if len(labelToPosition) != NumPositions {
		panic(fmt.Sprintf("board: catalog has %d cells", len(labelToPosition)))
	}
	allPositions = make([]Position, NumPositions)
	for i := range allPositions {
		allPositions[i] = Position(i)
	}
}

// LabelToPosition translates a human label such as "G3" into a Position.
// Surrounding whitespace and letter case are ignored.
func LabelToPosition(label string) (Position, error) {
	p, ok := labelToPosition[strings.ToUpper(strings.TrimSpace(label))]
	if !ok {
		return NoPosition, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return p, nil
}

// AllPositions returns every Position in ascending order. This order is the
// move enumeration order of the search, so it must stay deterministic. The
// returned slice is shared; do not modify it.
func AllPositions() []Position {
	return allPositions
}

// AllLabels returns the labels in the same order as AllPositions.
func AllLabels() []string {
	return labels[:]
}

// PositionAt returns the Position at the given 0-based column and row, or
// NoPosition if that cell is off the board.
func PositionAt(col, row int) Position {
	if row < 0 || row >= NumRows || col < row || col >= NumColumns-row {
		return NoPosition
	}
	return rowStart[row] + Position(col-row)
}

// Valid reports whether p names a cell.
func (p Position) Valid() bool {
	return p >= 0 && p < NumPositions
}

// Label returns the human label, e.g. "A1". Invalid positions render as "--".
func (p Position) Label() string {
	if !p.Valid() {
		return "--"
	}
	return labels[p]
}

// Coords returns the 0-based column and row of p, or -1, -1 if p is not
// a cell.
func (p Position) Coords() (col, row int) {
	if !p.Valid() {
		return -1, -1
	}
	c := coords[p]
	return c[0], c[1]
}

// Mirror reflects p across the center column G.
func (p Position) Mirror() Position {
	if !p.Valid() {
		return NoPosition
	}
	col, row := p.Coords()
	return PositionAt(NumColumns-1-col, row)
}

func (p Position) String() string {
	return p.Label()
}

func (p Position) mask() uint64 {
	return uint64(1) << uint(p)
}
