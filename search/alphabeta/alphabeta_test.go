package alphabeta

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/6453mike/PolarizedLadder/board"
	"github.com/6453mike/PolarizedLadder/config"
)

func setupBoard(t testing.TB, p1, p2 []string) *board.Board {
	t.Helper()
	b := board.NewBoard()
	for _, l := range p1 {
		pos, err := board.LabelToPosition(l)
		if err != nil {
			t.Fatal(err)
		}
		b.Place(pos, board.PlayerOne)
	}
	for _, l := range p2 {
		pos, err := board.LabelToPosition(l)
		if err != nil {
			t.Fatal(err)
		}
		b.Place(pos, board.PlayerTwo)
	}
	return b
}

func newSolver(t testing.TB, b *board.Board) *Solver {
	t.Helper()
	s := &Solver{}
	if err := s.Init(b, nil); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFindsWin(t *testing.T) {
	is := is.New(t)
	for depth := 1; depth <= 3; depth++ {
		b := setupBoard(t, []string{"A1", "B1", "B2", "C2"}, []string{"M1", "L1"})
		before := b.Copy()
		s := newSolver(t, b)
		m := s.Search(board.PlayerOne, DefaultAlpha, DefaultBeta, depth)
		is.Equal(m.Label(), "C3")
		// Faster wins score higher.
		is.Equal(m.Score, 100*depth)
		is.True(b.Equal(before))
		is.Equal(s.journal.depth(), 0)
	}
}

func TestBlocksWin(t *testing.T) {
	is := is.New(t)
	b := setupBoard(t, []string{"A1", "B1", "B2", "C2"}, []string{"M1"})
	s := newSolver(t, b)
	m, err := s.BestMove(context.Background(), board.PlayerTwo, 2)
	is.NoErr(err)
	is.Equal(m.Label(), "C3")
	is.Equal(m.Score, 1)
	is.Equal(s.Nodes(), uint64(497))
}

func TestEmptyBoardIsDeterministic(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	s := newSolver(t, b)
	first, err := s.BestMove(context.Background(), board.PlayerOne, 2)
	is.NoErr(err)
	is.Equal(first.Label(), "A1")
	is.Equal(first.Score, 0)
	is.Equal(s.Nodes(), uint64(146))
	for i := 0; i < 3; i++ {
		m, err := s.BestMove(context.Background(), board.PlayerOne, 2)
		is.NoErr(err)
		is.Equal(m, first)
	}
	is.Equal(b.NumOccupied(), 0)
}

func TestPruningDisabledVisitsEveryNode(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	s := newSolver(t, b)
	s.SetPruningDisabled(true)
	m, err := s.BestMove(context.Background(), board.PlayerOne, 2)
	is.NoErr(err)
	is.Equal(m.Label(), "A1")
	// Root, 49 children, 49*48 grandchildren.
	is.Equal(s.Nodes(), uint64(1+49+49*48))
}

func randomPosition(r *rand.Rand, stones int) (*board.Board, board.Player) {
	b := board.NewBoard()
	player := board.PlayerOne
	for _, i := range r.Perm(board.NumPositions)[:stones] {
		b.Place(board.Position(i), player)
		player = player.Next()
	}
	return b, player
}

func TestPruningEquivalence(t *testing.T) {
	is := is.New(t)
	r := rand.New(rand.NewSource(11))
	checked := 0
	for checked < 25 {
		b, player := randomPosition(r, 4+r.Intn(16))
		if b.HasWon(board.PlayerOne) || b.HasWon(board.PlayerTwo) {
			continue
		}
		depth := 2 + checked%2
		before := b.Copy()

		pruned := newSolver(t, b)
		pm, err := pruned.BestMove(context.Background(), player, depth)
		is.NoErr(err)

		full := newSolver(t, b)
		full.SetPruningDisabled(true)
		fm, err := full.BestMove(context.Background(), player, depth)
		is.NoErr(err)

		is.Equal(pm, fm)
		is.True(pruned.Nodes() <= full.Nodes())
		is.True(b.Equal(before))
		checked++
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	is := is.New(t)
	r := rand.New(rand.NewSource(5))
	checked := 0
	for checked < 15 {
		b, player := randomPosition(r, 2+r.Intn(20))
		if b.HasWon(board.PlayerOne) || b.HasWon(board.PlayerTwo) {
			continue
		}
		seq := newSolver(t, b)
		sm, err := seq.BestMove(context.Background(), player, 3)
		is.NoErr(err)

		par := newSolver(t, b)
		par.SetThreads(4)
		pm, err := par.BestMove(context.Background(), player, 3)
		is.NoErr(err)
		is.Equal(sm, pm)
		checked++
	}
}

func TestParallelFromConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigSearchThreads, 3)
	b := setupBoard(t, []string{"A1", "B1", "B2", "C2"}, []string{"M1"})
	s := &Solver{}
	is.NoErr(s.Init(b, cfg))
	m, err := s.BestMove(context.Background(), board.PlayerTwo, 2)
	is.NoErr(err)
	is.Equal(m.Label(), "C3")
	is.Equal(m.Score, 1)
	is.Equal(b.NumOccupied(), 5)
}

func TestNoMoveOnFullBoard(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	for _, p := range board.AllPositions() {
		col, _ := p.Coords()
		if col%2 == 0 {
			b.Place(p, board.PlayerOne)
		} else {
			b.Place(p, board.PlayerTwo)
		}
	}
	pos, err := BestMove(context.Background(), b, board.PlayerOne, 4)
	is.True(errors.Is(err, ErrNoMoveFound))
	is.Equal(pos, board.NoPosition)

	s := newSolver(t, b)
	m := s.Search(board.PlayerOne, DefaultAlpha, DefaultBeta, 4)
	is.True(!m.HasPosition())
	is.Equal(m.Score, 0)
}

func TestNoMoveAfterWin(t *testing.T) {
	is := is.New(t)
	b := setupBoard(t, []string{"A1", "B1", "B2", "C2", "C3"}, []string{"M1", "L1"})
	_, err := BestMove(context.Background(), b, board.PlayerTwo, 4)
	is.True(errors.Is(err, ErrNoMoveFound))
	s := newSolver(t, b)
	m := s.Search(board.PlayerTwo, DefaultAlpha, DefaultBeta, 4)
	is.Equal(m.Score, 500)
}

func TestInvalidDepth(t *testing.T) {
	is := is.New(t)
	_, err := BestMove(context.Background(), board.NewBoard(), board.PlayerOne, 0)
	is.True(errors.Is(err, ErrInvalidDepth))
}

func TestCancelledSearchLeavesBoard(t *testing.T) {
	is := is.New(t)
	b := setupBoard(t, []string{"G4"}, []string{"F3"})
	before := b.Copy()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, threads := range []int{1, 4} {
		s := newSolver(t, b)
		s.SetThreads(threads)
		_, err := s.BestMove(ctx, board.PlayerOne, 6)
		is.True(errors.Is(err, ErrSearchCancelled))
		is.True(b.Equal(before))
	}
}

func TestTimeLimitStillReturnsMove(t *testing.T) {
	is := is.New(t)
	for _, threads := range []int{1, 4} {
		b := board.NewBoard()
		s := newSolver(t, b)
		s.SetThreads(threads)
		s.SetTimeLimit(time.Millisecond)
		// Nine plies from the empty board cannot finish in a millisecond.
		m, err := s.BestMove(context.Background(), board.PlayerOne, 9)
		is.NoErr(err)
		is.True(m.HasPosition())
		is.Equal(b.NumOccupied(), 0)

		b = setupBoard(t, []string{"A1", "B1", "B2", "C2"}, []string{"M1", "L1"})
		s = newSolver(t, b)
		s.SetThreads(threads)
		s.SetTimeLimit(time.Millisecond)
		m, err = s.BestMove(context.Background(), board.PlayerOne, 9)
		is.NoErr(err)
		is.Equal(m.Label(), "C3")
		is.Equal(b.NumOccupied(), 6)
	}
}

func TestTimeLimitFromConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigSearchTimeLimit, 1)
	b := board.NewBoard()
	s := &Solver{}
	is.NoErr(s.Init(b, cfg))
	m, err := s.BestMove(context.Background(), board.PlayerOne, 7)
	is.NoErr(err)
	is.True(m.HasPosition())
}

func TestTimeLimitRespectsCallerCancel(t *testing.T) {
	is := is.New(t)
	b := setupBoard(t, []string{"G4"}, []string{"F3"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newSolver(t, b)
	s.SetTimeLimit(time.Second)
	_, err := s.BestMove(ctx, board.PlayerOne, 6)
	is.True(errors.Is(err, ErrSearchCancelled))
	is.Equal(b.NumOccupied(), 2)
}

func TestPackageBestMove(t *testing.T) {
	is := is.New(t)
	b := setupBoard(t, []string{"A1", "B1", "B2", "C2"}, []string{"M1", "L1"})
	pos, err := BestMove(context.Background(), b, board.PlayerOne, DefaultDepth)
	is.NoErr(err)
	is.Equal(pos.Label(), "C3")
	is.Equal(b.NumOccupied(), 6)
}

func TestJournal(t *testing.T) {
	is := is.New(t)
	var j journal
	a, c := board.Position(0), board.Position(1)
	j.push(a)
	j.push(c)
	is.Equal(j.depth(), 2)
	j.pop(c)
	is.True(errors.Is(j.check(), ErrUnbalancedJournal))
	j.pop(a)
	is.NoErr(j.check())

	j.push(a)
	j.pop(c)
	is.True(errors.Is(j.check(), ErrUnbalancedJournal))
	j.reset()
	is.NoErr(j.check())
}

func BenchmarkEmptyBoardDepth4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := newSolver(b, board.NewBoard())
		s.Search(board.PlayerOne, DefaultAlpha, DefaultBeta, 4)
	}
}

func BenchmarkParallelDepth4(b *testing.B) {
	bd := setupBoard(b, []string{"G4"}, []string{"F3"})
	for i := 0; i < b.N; i++ {
		s := newSolver(b, bd)
		s.SetThreads(4)
		s.BestMove(context.Background(), board.PlayerOne, 4)
	}
}
