// Package board holds the Polarized Ladder position catalog, the two-player
// occupancy state and the ladder shape scans that decide wins.
package board

import (
	"fmt"
	"math/bits"
)

// fullMask has one bit set per cell.
const fullMask = uint64(1)<<NumPositions - 1

// Board is the occupancy of both sides, one bitset per player. The two sets
// never intersect: Place refuses any cell that is already taken.
type Board struct {
	occupied [2]uint64
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Place puts a stone for player on pos. It returns false, leaving the board
// untouched, if either side already holds pos.
func (b *Board) Place(pos Position, player Player) bool {
	if !pos.Valid() || !player.Valid() || b.IsOccupied(pos) {
		return false
	}
	b.occupied[player.Index()] |= pos.mask()
	return true
}

// Retract clears pos for whichever side holds it. It is a no-op on an empty
// cell.
func (b *Board) Retract(pos Position) {
	if !pos.Valid() {
		return
	}
	m := ^pos.mask()
	b.occupied[0] &= m
	b.occupied[1] &= m
}

// IsOccupied reports whether either side holds pos.
func (b *Board) IsOccupied(pos Position) bool {
	return (b.occupied[0]|b.occupied[1])&pos.mask() != 0
}

// OccupiedBy returns the side holding pos, or NoPlayer.
func (b *Board) OccupiedBy(pos Position) Player {
	m := pos.mask()
	for _, p := range Players {
		if b.occupied[p.Index()]&m != 0 {
			return p
		}
	}
	return NoPlayer
}

// IsFull reports whether all 49 cells are taken.
func (b *Board) IsFull() bool {
	return b.occupied[0]|b.occupied[1] == fullMask
}

// NumOccupied returns how many stones are on the board.
func (b *Board) NumOccupied() int {
	return bits.OnesCount64(b.occupied[0] | b.occupied[1])
}

// Stones returns the number of stones player has placed.
func (b *Board) Stones(player Player) int {
	return bits.OnesCount64(b.occupied[player.Index()])
}

// HasWon reports whether player holds all five cells of some ladder that
// the opponent has not neutralized.
func (b *Board) HasWon(player Player) bool {
	_, ok := b.WinningLadder(player)
	return ok
}

// WinningLadder returns the first complete, non-neutralized ladder of
// player in table order.
func (b *Board) WinningLadder(player Player) (Ladder, bool) {
	own := b.occupied[player.Index()]
	opp := b.occupied[player.Next().Index()]
	for i := range ladders {
		l := &ladders[i]
		if own&l.cells != l.cells {
			continue
		}
		if l.neutralized(opp) {
			continue
		}
		return *l, true
	}
	return Ladder{}, false
}

// CountOpenLadders counts ladders where player has exactly tokens of the
// five cells, the opponent has none of them, and the opponent has not
// neutralized the ladder.
func (b *Board) CountOpenLadders(player Player, tokens int) int {
	own := b.occupied[player.Index()]
	opp := b.occupied[player.Next().Index()]
	n := 0
	for i := range ladders {
		l := &ladders[i]
		if opp&l.cells != 0 {
			continue
		}
		if bits.OnesCount64(own&l.cells) != tokens {
			continue
		}
		if l.neutralized(opp) {
			continue
		}
		n++
	}
	return n
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// CopyFrom overwrites b with the contents of o.
func (b *Board) CopyFrom(o *Board) {
	b.occupied = o.occupied
}

// Equal reports whether both boards have identical occupancy.
func (b *Board) Equal(o *Board) bool {
	return b.occupied == o.occupied
}

// Clear removes every stone.
func (b *Board) Clear() {
	b.occupied = [2]uint64{}
}

// Mirror returns the board reflected across column G.
func (b *Board) Mirror() *Board {
	m := NewBoard()
	for _, p := range allPositions {
		if owner := b.OccupiedBy(p); owner != NoPlayer {
			m.Place(p.Mirror(), owner)
		}
	}
	return m
}

func (b *Board) String() string {
	return fmt.Sprintf("<board p1 %049b p2 %049b>", b.occupied[0], b.occupied[1])
}
