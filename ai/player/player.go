// Package player is an automatic player of Polarized Ladder.
package player

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/6453mike/PolarizedLadder/config"
	"github.com/6453mike/PolarizedLadder/game"
	"github.com/6453mike/PolarizedLadder/move"
	"github.com/6453mike/PolarizedLadder/search/alphabeta"
)

var ErrNoMoveFound = alphabeta.ErrNoMoveFound

// AIPlayer describes an artificial player.
type AIPlayer interface {
	// BestPlay picks a move for the player on turn in g without changing g.
	BestPlay(ctx context.Context, g *game.Game) (move.Move, error)
	String() string
}

// SearchPlayer picks moves with the alpha-beta search.
type SearchPlayer struct {
	depth   int
	threads int
	cfg     *config.Config
	nodes   uint64
}

// NewSearchPlayer reads depth, threads and time limit from cfg, which may
// be nil for the defaults.
func NewSearchPlayer(cfg *config.Config) *SearchPlayer {
	p := &SearchPlayer{depth: alphabeta.DefaultDepth, threads: 1, cfg: cfg}
	if cfg != nil {
		p.depth = cfg.GetInt(config.ConfigSearchDepth)
		p.threads = cfg.GetInt(config.ConfigSearchThreads)
	}
	return p
}

func (p *SearchPlayer) SetDepth(d int) {
	p.depth = d
}

func (p *SearchPlayer) Depth() int {
	return p.depth
}

// LastNodes is the node count of the most recent search.
func (p *SearchPlayer) LastNodes() uint64 {
	return p.nodes
}

// BestPlay searches a copy of the game's board so the game is never
// touched, even if the search is cancelled.
func (p *SearchPlayer) BestPlay(ctx context.Context, g *game.Game) (move.Move, error) {
	if g.Playing() != game.StatePlaying {
		return move.NoMove(0), game.ErrGameOver
	}
	s := &alphabeta.Solver{}
	if err := s.Init(g.Board().Copy(), p.cfg); err != nil {
		return move.NoMove(0), err
	}
	s.SetThreads(p.threads)
	m, err := s.BestMove(ctx, g.PlayerOnTurn(), p.depth)
	p.nodes = s.Nodes()
	if err != nil {
		return m, err
	}
	log.Debug().Str("player", g.PlayerOnTurn().String()).Str("move", m.Label()).
		Int("score", m.Score).Uint64("nodes", p.nodes).Msg("search-player-best-play")
	return m, nil
}

func (p *SearchPlayer) String() string {
	return "search"
}

// RandomPlayer picks uniformly among the empty cells.
type RandomPlayer struct{}

func (RandomPlayer) BestPlay(ctx context.Context, g *game.Game) (move.Move, error) {
	if g.Playing() != game.StatePlaying {
		return move.NoMove(0), game.ErrGameOver
	}
	empty := EmptyPositions(g.Board())
	if len(empty) == 0 {
		return move.NoMove(0), ErrNoMoveFound
	}
	return move.NewMove(empty[frand.Intn(len(empty))], 0), nil
}

func (RandomPlayer) String() string {
	return "random"
}

// PlayBestTurn asks p for a move and plays it.
func PlayBestTurn(ctx context.Context, g *game.Game, p AIPlayer) (move.Move, error) {
	m, err := p.BestPlay(ctx, g)
	if err != nil {
		return m, err
	}
	if !m.HasPosition() {
		return m, ErrNoMoveFound
	}
	if err := g.PlayPosition(m.Position); err != nil {
		return m, errors.Join(ErrNoMoveFound, err)
	}
	return m, nil
}
