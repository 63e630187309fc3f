// Package alphabeta picks moves with a depth-limited minimax search using
// fail-soft alpha-beta pruning. Player one is always the maximizing side.
package alphabeta

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/6453mike/PolarizedLadder/board"
	"github.com/6453mike/PolarizedLadder/config"
	"github.com/6453mike/PolarizedLadder/equity"
	"github.com/6453mike/PolarizedLadder/move"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
**/

const (
	// Infinity bounds every score the evaluator can produce.
	Infinity     = 10000
	DefaultAlpha = -Infinity
	DefaultBeta  = Infinity
	DefaultDepth = config.DefaultSearchDepth
)

var (
	ErrNoMoveFound       = errors.New("no move found")
	ErrUnbalancedJournal = errors.New("search left stones on the board")
	ErrSearchCancelled   = errors.New("search cancelled")
	ErrInvalidDepth      = errors.New("search depth must be at least 1")
)

// Solver searches a board it shares with its caller. Every stone it places
// is taken back before Search returns.
type Solver struct {
	board          *board.Board
	disablePruning bool
	threads        int
	timeLimit      time.Duration

	nodes   atomic.Uint64
	journal journal
}

// Init points the solver at b and reads its settings from cfg, which may
// be nil.
func (s *Solver) Init(b *board.Board, cfg *config.Config) error {
	s.board = b
	s.threads = 1
	s.timeLimit = 0
	s.nodes.Store(0)
	s.journal.reset()
	if cfg != nil {
		s.threads = max(cfg.GetInt(config.ConfigSearchThreads), 1)
		s.timeLimit = time.Duration(cfg.GetInt(config.ConfigSearchTimeLimit)) * time.Second
	}
	return nil
}

func (s *Solver) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

func (s *Solver) SetThreads(t int) {
	s.threads = max(t, 1)
}

func (s *Solver) SetTimeLimit(d time.Duration) {
	s.timeLimit = d
}

// Nodes is the number of positions visited since the last Init or
// BestMove call.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

func (s *Solver) Board() *board.Board {
	return s.board
}

// Search returns the best move for player within (alpha, beta), searching
// depth plies. The returned move has no position if the board is terminal
// or if no child improved on the bound player starts from.
func (s *Solver) Search(player board.Player, alpha, beta, depth int) move.Move {
	m, _ := s.search(context.Background(), player, alpha, beta, depth)
	return m
}

// BestMove searches from the default window and checks that the board was
// left as it was found. With a time limit set it deepens one ply at a time
// and, once the limit passes, returns the move of the deepest completed
// iteration.
func (s *Solver) BestMove(ctx context.Context, player board.Player, depth int) (move.Move, error) {
	if depth < 1 {
		return move.NoMove(0), ErrInvalidDepth
	}
	if s.board.IsFull() {
		return move.NoMove(0), ErrNoMoveFound
	}
	log.Debug().Int("plies", depth).
		Str("player", player.String()).
		Bool("pruning-disabled", s.disablePruning).
		Int("threads", s.threads).
		Dur("time-limit", s.timeLimit).
		Msg("alphabeta-search-config")

	tstart := time.Now()
	s.nodes.Store(0)
	s.journal.reset()

	var m move.Move
	var err error
	if s.timeLimit > 0 {
		m, err = s.deepen(ctx, player, depth)
	} else {
		m, err = s.searchRoot(ctx, player, depth)
	}
	if jerr := s.journal.check(); jerr != nil {
		return move.NoMove(0), jerr
	}
	if err != nil {
		return move.NoMove(0), err
	}
	log.Debug().
		Str("move", m.Label()).
		Int("score", m.Score).
		Uint64("nodes", s.Nodes()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("alphabeta-search-returning")
	if !m.HasPosition() {
		return m, ErrNoMoveFound
	}
	return m, nil
}

func (s *Solver) searchRoot(ctx context.Context, player board.Player, depth int) (move.Move, error) {
	if s.threads > 1 {
		return s.parallelSearch(ctx, player, DefaultAlpha, DefaultBeta, depth)
	}
	return s.search(ctx, player, DefaultAlpha, DefaultBeta, depth)
}

func (s *Solver) search(ctx context.Context, player board.Player, alpha, beta, depth int) (move.Move, error) {
	select {
	case <-ctx.Done():
		return move.NoMove(0), fmt.Errorf("%w: %v", ErrSearchCancelled, ctx.Err())
	default:
	}
	s.nodes.Add(1)

	if depth == 0 || s.board.IsFull() || s.board.HasWon(player.Next()) {
		return move.NoMove(equity.Evaluate(s.board, board.PlayerOne, depth)), nil
	}

	maximizing := player == board.PlayerOne
	best := move.NoMove(beta)
	if maximizing {
		best = move.NoMove(alpha)
	}
	for _, pos := range board.AllPositions() {
		if !s.place(pos, player) {
			continue
		}
		childAlpha, childBeta := alpha, beta
		if s.disablePruning {
			childAlpha, childBeta = DefaultAlpha, DefaultBeta
		}
		child, err := s.search(ctx, player.Next(), childAlpha, childBeta, depth-1)
		s.retract(pos)
		if err != nil {
			return best, err
		}

		if maximizing {
			if child.Score > best.Score {
				best = move.NewMove(pos, child.Score)
				alpha = child.Score
			}
		} else {
			if child.Score < best.Score {
				best = move.NewMove(pos, child.Score)
				beta = child.Score
			}
		}
		if !s.disablePruning && alpha >= beta {
			break
		}
	}
	return best, nil
}

func (s *Solver) place(pos board.Position, player board.Player) bool {
	if !s.board.Place(pos, player) {
		return false
	}
	s.journal.push(pos)
	return true
}

func (s *Solver) retract(pos board.Position) {
	s.journal.pop(pos)
	s.board.Retract(pos)
}

// BestMove is the entry point for automated play: it searches b for player
// with the default window and returns the chosen position.
func BestMove(ctx context.Context, b *board.Board, player board.Player, depth int) (board.Position, error) {
	s := &Solver{}
	if err := s.Init(b, nil); err != nil {
		return board.NoPosition, err
	}
	m, err := s.BestMove(ctx, player, depth)
	if err != nil {
		return board.NoPosition, err
	}
	return m.Position, nil
}
