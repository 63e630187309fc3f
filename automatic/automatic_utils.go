package automatic

// Data collection for automatic games.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/6453mike/PolarizedLadder/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

var gameLogHeader = []string{"gameID", "first", "second", "winner", "turns", "firstnodes", "secondnodes"}

const turnLogHeader = "nick,gameID,turn,move,score,nodes\n"

// playing guards against two batches running at once. IsPlaying mirrors
// it for expvar readers.
var playing atomic.Bool

// CompVsComp plays numGames games on up to threads goroutines. The two
// player types swap sides every game. Results are written to
// outputFilename as CSV if it is not empty, and every turn is written to
// turnLogFilename if that is not empty.
func CompVsComp(ctx context.Context, cfg *config.Config, player1, player2 string,
	numGames, threads, randomPlies int, outputFilename, turnLogFilename string) (*Summary, error) {

	if !playing.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	defer playing.Store(false)
	IsPlaying.Set(1)
	defer IsPlaying.Set(0)
	CVCCounter.Set(0)
	log.Debug().Int("games", numGames).Int("threads", threads).
		Int("random-plies", randomPlies).Msg("starting-cvc")

	var logChan chan string
	var logDone chan error
	if turnLogFilename != "" {
		logfile, err := os.Create(turnLogFilename)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		logDone = make(chan error, 1)
		go func() {
			defer logfile.Close()
			_, werr := logfile.WriteString(turnLogHeader)
			for msg := range logChan {
				if werr == nil {
					_, werr = logfile.WriteString(msg)
				}
			}
			log.Debug().Msg("exiting-turn-logger")
			logDone <- werr
		}()
	}

	results := make([]GameResult, numGames)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(threads, 1))
	for i := 0; i < numGames; i++ {
		i := i
		g.Go(func() error {
			first, second := player1, player2
			if i%2 == 1 {
				first, second = player2, player1
			}
			r := NewGameRunner(logChan, cfg)
			if err := r.Init(first, second); err != nil {
				return err
			}
			r.SetRandomOpening(randomPlies)
			res, err := r.PlayFullGame(gctx, i+1)
			if err != nil {
				return err
			}
			results[i] = res
			CVCCounter.Add(1)
			if n := CVCCounter.Value(); n%100 == 0 {
				log.Info().Int64("games", n).Msg("cvc-progress")
			}
			return nil
		})
	}
	err := g.Wait()
	if logChan != nil {
		close(logChan)
		if lerr := <-logDone; lerr != nil && err == nil {
			err = fmt.Errorf("writing %v: %w", turnLogFilename, lerr)
		}
	}
	if err != nil {
		return nil, err
	}
	if outputFilename != "" {
		if err := writeGameLog(outputFilename, results); err != nil {
			return nil, err
		}
	}
	return Summarize(results), nil
}

func writeGameLog(filename string, results []GameResult) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(gameLogHeader); err != nil {
		return err
	}
	for _, res := range results {
		rec := []string{
			strconv.Itoa(res.GameID),
			res.Names[0],
			res.Names[1],
			string(res.Winner.Symbol()),
			strconv.Itoa(res.Turns),
			strconv.FormatUint(res.Nodes[0], 10),
			strconv.FormatUint(res.Nodes[1], 10),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %v: %w", filename, err)
	}
	return nil
}
