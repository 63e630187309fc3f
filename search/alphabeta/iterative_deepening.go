package alphabeta

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/6453mike/PolarizedLadder/board"
	"github.com/6453mike/PolarizedLadder/move"
)

// deepen searches 1, 2, ... maxPlies plies until the time limit runs out.
// The one-ply search ignores the limit, so a move is always found unless
// the caller's own context is done.
func (s *Solver) deepen(ctx context.Context, player board.Player, maxPlies int) (move.Move, error) {
	log.Debug().Msgf("Using iterative deepening with %v max plies", maxPlies)
	dctx, cancel := context.WithTimeout(ctx, s.timeLimit)
	defer cancel()

	best, err := s.searchRoot(ctx, player, 1)
	if err != nil {
		return best, err
	}
	for p := 2; p <= maxPlies; p++ {
		m, err := s.searchRoot(dctx, player, p)
		if err != nil {
			if ctx.Err() != nil || !errors.Is(err, ErrSearchCancelled) {
				return move.NoMove(0), err
			}
			log.Debug().Int("completed-plies", p-1).Str("move", best.Label()).
				Int("score", best.Score).Msg("alphabeta-time-limit-reached")
			return best, nil
		}
		best = m
		log.Debug().Int("plies", p).Str("move", m.Label()).Int("score", m.Score).
			Uint64("nodes", s.Nodes()).Msg("alphabeta-deepened")
	}
	return best, nil
}
