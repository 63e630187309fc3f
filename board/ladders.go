package board

import "fmt"

// Orientation is the lean of a ladder. Each Descending ladder is the mirror
// image of an Ascending one across column G.
type Orientation uint8

const (
	Ascending Orientation = iota
	Descending
)

func (o Orientation) String() string {
	if o == Ascending {
		return "ascending"
	}
	return "descending"
}

const (
	// LadderCells is the number of cells in a ladder.
	LadderCells = 5
	// LadderRows is the number of rows a ladder may start on.
	LadderRows = 5
)

// A Ladder is one anchored instance of a ladder shape. Row is the board
// row holding its two bottom cells; Anchor is its offset along that row.
type Ladder struct {
	Orientation Orientation
	Row         int
	Anchor      int

	cells        uint64
	neutralizers uint64
	positions    [LadderCells]Position
}

// Positions returns the five cells of the ladder.
func (l Ladder) Positions() [LadderCells]Position {
	return l.positions
}

// Neutralizable reports whether an opponent can void this instance.
func (l Ladder) Neutralizable() bool {
	return l.neutralizers != 0
}

// Neutralizers returns the two blocking cells of an interior-row ladder, or
// nil for one that cannot be neutralized.
func (l Ladder) Neutralizers() []Position {
	if l.neutralizers == 0 {
		return nil
	}
	var ps []Position
	for _, p := range allPositions {
		if l.neutralizers&p.mask() != 0 {
			ps = append(ps, p)
		}
	}
	return ps
}

func (l Ladder) String() string {
	return fmt.Sprintf("<ladder %v row %d anchor %d %v>", l.Orientation, l.Row,
		l.Anchor, l.positions)
}

// maxAnchor is the last valid anchor for a ladder starting on the given row.
func maxAnchor(row int) int {
	return 8 - 2*row
}

// ladders is built once and only ever read.
var ladders = buildLadders()

// Ladders returns every ladder instance on the board. The slice is shared
// and must not be modified.
func Ladders() []Ladder {
	return ladders
}

func buildLadders() []Ladder {
	var ls []Ladder
	for _, o := range []Orientation{Ascending, Descending} {
		for row := 0; row < LadderRows; row++ {
			for anchor := 0; anchor <= maxAnchor(row); anchor++ {
				ls = append(ls, newLadder(o, row, anchor))
			}
		}
	}
	return ls
}

func newLadder(o Orientation, row, anchor int) Ladder {
	c := anchor + row
	var cells, neutral [][2]int
	interior := row > 0 && row < LadderRows-1
	switch o {
	case Ascending:
		cells = [][2]int{{c, row}, {c + 1, row}, {c + 1, row + 1}, {c + 2, row + 1}, {c + 2, row + 2}}
		if interior && anchor >= 2 {
			neutral = [][2]int{{c + 2, row}, {c, row + 2}}
		}
	case Descending:
		cells = [][2]int{{c + 3, row}, {c + 4, row}, {c + 2, row + 1}, {c + 3, row + 1}, {c + 2, row + 2}}
		if interior && anchor <= maxAnchor(row)-2 {
			neutral = [][2]int{{c + 2, row}, {c + 4, row + 2}}
		}
	}
	l := Ladder{Orientation: o, Row: row, Anchor: anchor}
	for i, cr := range cells {
		p := PositionAt(cr[0], cr[1])
		if p == NoPosition {
			panic(fmt.Sprintf("board: ladder %v/%d/%d leaves the board", o, row, anchor))
		}
		l.positions[i] = p
		l.cells |= p.mask()
	}
	for _, cr := range neutral {
		p := PositionAt(cr[0], cr[1])
		if p == NoPosition {
			panic(fmt.Sprintf("board: neutralizer of %v/%d/%d leaves the board", o, row, anchor))
		}
		l.neutralizers |= p.mask()
	}
	return l
}

// neutralized reports whether opp holds both blocking cells of l.
func (l *Ladder) neutralized(opp uint64) bool {
	return l.neutralizers != 0 && opp&l.neutralizers == l.neutralizers
}
