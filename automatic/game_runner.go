// Package automatic plays computer-vs-computer games of Polarized Ladder
// and collects statistics about them.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/6453mike/PolarizedLadder/ai/player"
	"github.com/6453mike/PolarizedLadder/board"
	"github.com/6453mike/PolarizedLadder/config"
	"github.com/6453mike/PolarizedLadder/game"
)

const (
	SearchPlayer = "search"
	RandomPlayer = "random"
)

// GameResult is the outcome of one automatic game.
type GameResult struct {
	GameID int
	// Names[0] moved first.
	Names  [2]string
	Winner board.Player
	Turns  int
	Nodes  [2]uint64
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game        *game.Game
	config      *config.Config
	logchan     chan string
	aiplayers   [2]player.AIPlayer
	names       [2]string
	randomPlies int
	nodes       [2]uint64
	gameID      int
}

// NewGameRunner creates a runner that sends a CSV line per turn to
// logchan, if it is not nil. Call Init before playing.
func NewGameRunner(logchan chan string, cfg *config.Config) *GameRunner {
	return &GameRunner{logchan: logchan, config: cfg}
}

// Init sets the player types. player1 moves first. Players of the same
// type are told apart by a numeric suffix.
func (r *GameRunner) Init(player1, player2 string) error {
	for idx, name := range []string{player1, player2} {
		p, err := newAIPlayer(name, r.config)
		if err != nil {
			return err
		}
		r.aiplayers[idx] = p
		r.names[idx] = name
		if player1 == player2 {
			r.names[idx] = fmt.Sprintf("%s-%d", name, idx+1)
		}
	}
	r.game = game.NewGame(r.names[0], r.names[1])
	return nil
}

func newAIPlayer(name string, cfg *config.Config) (player.AIPlayer, error) {
	switch name {
	case SearchPlayer:
		return player.NewSearchPlayer(cfg), nil
	case RandomPlayer:
		return player.RandomPlayer{}, nil
	}
	return nil, fmt.Errorf("unknown player type %q", name)
}

// SetRandomOpening makes the first plies of each game random, so that
// games between deterministic players differ.
func (r *GameRunner) SetRandomOpening(plies int) {
	r.randomPlies = plies
}

func (r *GameRunner) StartGame() {
	r.game.StartGame()
	r.nodes = [2]uint64{}
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayBestTurn has the player on turn pick a move and plays it.
func (r *GameRunner) PlayBestTurn(ctx context.Context) error {
	onturn := r.game.PlayerOnTurn()
	var p player.AIPlayer = r.aiplayers[onturn.Index()]
	if r.game.Turn() < r.randomPlies {
		p = player.RandomPlayer{}
	}
	m, err := player.PlayBestTurn(ctx, r.game, p)
	if err != nil {
		return err
	}
	var nodes uint64
	if sp, ok := p.(*player.SearchPlayer); ok {
		nodes = sp.LastNodes()
		r.nodes[onturn.Index()] += nodes
	}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v\n",
			r.game.NickFor(onturn),
			r.gameID,
			r.game.Turn(),
			m.ShortDescription(),
			m.Score,
			nodes)
	}
	return nil
}

// PlayFullGame plays a game from the empty board to the end.
func (r *GameRunner) PlayFullGame(ctx context.Context, gameID int) (GameResult, error) {
	r.gameID = gameID
	r.StartGame()
	for r.game.Playing() == game.StatePlaying {
		if err := r.PlayBestTurn(ctx); err != nil {
			return GameResult{}, err
		}
	}
	res := GameResult{
		GameID: gameID,
		Names:  r.names,
		Winner: r.game.Winner(),
		Turns:  r.game.Turn(),
		Nodes:  r.nodes,
	}
	log.Debug().Int("game", gameID).Str("winner", res.Winner.String()).
		Int("turns", res.Turns).Msg("automatic-game-over")
	return res, nil
}
