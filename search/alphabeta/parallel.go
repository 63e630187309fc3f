package alphabeta

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/6453mike/PolarizedLadder/board"
	"github.com/6453mike/PolarizedLadder/move"
)

type rootResult struct {
	pos   board.Position
	score int
}

// parallelSearch searches every root child on its own copy of the board
// with the full (alpha, beta) window. Children never share bounds, so each
// score is exact, and taking the first strictly better child in catalog
// order yields the move the sequential search would have chosen.
func (s *Solver) parallelSearch(ctx context.Context, player board.Player, alpha, beta, depth int) (move.Move, error) {
	if depth == 0 || s.board.IsFull() || s.board.HasWon(player.Next()) {
		return s.search(ctx, player, alpha, beta, depth)
	}
	s.nodes.Add(1)

	var results []*rootResult
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for _, pos := range board.AllPositions() {
		pos := pos
		if s.board.IsOccupied(pos) {
			continue
		}
		r := &rootResult{pos: pos}
		results = append(results, r)
		g.Go(func() error {
			worker := &Solver{board: s.board.Copy(), disablePruning: s.disablePruning, threads: 1}
			worker.place(pos, player)
			child, err := worker.search(gctx, player.Next(), alpha, beta, depth-1)
			worker.retract(pos)
			s.nodes.Add(worker.Nodes())
			if err != nil {
				return err
			}
			if err := worker.journal.check(); err != nil {
				return err
			}
			r.score = child.Score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return move.NoMove(0), err
	}

	maximizing := player == board.PlayerOne
	best := move.NoMove(beta)
	if maximizing {
		best = move.NoMove(alpha)
	}
	for _, r := range results {
		if (maximizing && r.score > best.Score) || (!maximizing && r.score < best.Score) {
			best = move.NewMove(r.pos, r.score)
		}
	}
	log.Debug().Int("root-moves", len(results)).Str("best", best.Label()).Msg("parallel-root-done")
	return best, nil
}
