package alphabeta

import (
	"fmt"

	"github.com/6453mike/PolarizedLadder/board"
)

// journal records the stones a search has on the board. Each retraction
// must take back the most recent placement.
type journal struct {
	stack    []board.Position
	mismatch bool
}

func (j *journal) reset() {
	j.stack = j.stack[:0]
	j.mismatch = false
}

func (j *journal) push(pos board.Position) {
	j.stack = append(j.stack, pos)
}

func (j *journal) pop(pos board.Position) {
	n := len(j.stack)
	if n == 0 || j.stack[n-1] != pos {
		j.mismatch = true
		return
	}
	j.stack = j.stack[:n-1]
}

func (j *journal) depth() int {
	return len(j.stack)
}

func (j *journal) check() error {
	if j.mismatch {
		return fmt.Errorf("%w: retraction out of order", ErrUnbalancedJournal)
	}
	if len(j.stack) != 0 {
		return fmt.Errorf("%w: %d stones left (%v)", ErrUnbalancedJournal, len(j.stack), j.stack)
	}
	return nil
}
