package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/6453mike/PolarizedLadder/ai/player"
	"github.com/6453mike/PolarizedLadder/automatic"
	"github.com/6453mike/PolarizedLadder/board"
	"github.com/6453mike/PolarizedLadder/config"
	"github.com/6453mike/PolarizedLadder/game"
	"github.com/6453mike/PolarizedLadder/search/alphabeta"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

// modes maps the `new` argument to the types of player one and two.
var modes = map[string][2]string{
	"hh": {config.PlayerTypeHuman, config.PlayerTypeHuman},
	"hc": {config.PlayerTypeHuman, config.PlayerTypeComputer},
	"ch": {config.PlayerTypeComputer, config.PlayerTypeHuman},
	"cc": {config.PlayerTypeComputer, config.PlayerTypeComputer},
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	types := [2]string{
		sc.config.GetString(config.ConfigPlayerOne),
		sc.config.GetString(config.ConfigPlayerTwo),
	}
	if len(cmd.args) > 0 {
		mode := strings.ToLower(cmd.args[0])
		if mode == "random" {
			// The human goes first or second at random.
			mode = "hc"
			if frand.Intn(2) == 1 {
				mode = "ch"
			}
		}
		t, ok := modes[mode]
		if !ok {
			return nil, fmt.Errorf("unknown mode %v; use hh, hc, ch, cc or random", cmd.args[0])
		}
		types = t
	}
	sc.playerTypes = types
	sc.game = game.NewGame(sc.nickname(0), sc.nickname(1))
	log.Debug().Str("player-one", types[0]).Str("player-two", types[1]).Msg("new-game")

	var sb strings.Builder
	sb.WriteString(sc.game.ToDisplayText())
	if err := sc.computerTurns(&sb); err != nil {
		return nil, err
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) nickname(idx int) string {
	if sc.playerTypes[idx] == config.PlayerTypeComputer {
		return fmt.Sprintf("computer%d", idx+1)
	}
	return fmt.Sprintf("human%d", idx+1)
}

func (sc *ShellController) isComputer(p board.Player) bool {
	return sc.playerTypes[p.Index()] == config.PlayerTypeComputer
}

// computerTurns plays for the computer until it is a human's turn or the
// game is over, writing each board to sb.
func (sc *ShellController) computerTurns(sb *strings.Builder) error {
	for sc.game.Playing() == game.StatePlaying && sc.isComputer(sc.game.PlayerOnTurn()) {
		if err := sc.playComputerMove(sb); err != nil {
			return err
		}
	}
	return nil
}

func (sc *ShellController) playComputerMove(sb *strings.Builder) error {
	nick := sc.game.NickOnTurn()
	tstart := time.Now()
	m, err := player.PlayBestTurn(sc.ctx, sc.game, sc.aiplayer)
	if err != nil {
		return err
	}
	fmt.Fprintf(sb, "\n%v plays %v (score %d, %d nodes, %.2fs)\n", nick, m.ShortDescription(),
		m.Score, sc.aiplayer.LastNodes(), time.Since(tstart).Seconds())
	sb.WriteString(sc.game.ToDisplayText())
	return nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <cell>, e.g. play G4")
	}
	if sc.game.Playing() != game.StatePlaying {
		return nil, game.ErrGameOver
	}
	if err := sc.game.PlayLabel(cmd.args[0]); err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(sc.game.ToDisplayText())
	if err := sc.computerTurns(&sb); err != nil {
		return nil, err
	}
	return msg(sb.String()), nil
}

// computerMove has the computer play for whoever is on turn.
func (sc *ShellController) computerMove(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	var sb strings.Builder
	if err := sc.playComputerMove(&sb); err != nil {
		return nil, err
	}
	if err := sc.computerTurns(&sb); err != nil {
		return nil, err
	}
	return msg(sb.String()), nil
}

// best shows the search result for the side on turn without playing it.
func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	depth := sc.aiplayer.Depth()
	if len(cmd.args) > 0 {
		d, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		depth = d
	}
	s := &alphabeta.Solver{}
	if err := s.Init(sc.game.Board().Copy(), sc.config); err != nil {
		return nil, err
	}
	s.SetPruningDisabled(cmd.options.Bool("nopruning"))
	tstart := time.Now()
	m, err := s.BestMove(sc.ctx, sc.game.PlayerOnTurn(), depth)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("best: %v score: %d depth: %d nodes: %d time: %.2fs",
		m.ShortDescription(), m.Score, depth, s.Nodes(), time.Since(tstart).Seconds())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(strings.TrimRight(sc.game.HistoryString(), "\n")), nil
}

func (sc *ShellController) notation(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(fmt.Sprintf("%s %c", sc.game.Board().Notation(),
		sc.game.PlayerOnTurn().Symbol())), nil
}

// setup loads a position: setup <notation> [o|x]
func (sc *ShellController) setup(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 1 || len(cmd.args) > 2 {
		return nil, errors.New("usage: setup <notation> [o|x]")
	}
	onturn := board.PlayerOne
	if len(cmd.args) == 2 {
		if len(cmd.args[1]) != 1 {
			return nil, fmt.Errorf("bad side %q", cmd.args[1])
		}
		onturn = board.PlayerFromSymbol(cmd.args[1][0])
	}
	if sc.game == nil {
		sc.game = game.NewGame(sc.nickname(0), sc.nickname(1))
	}
	if err := sc.game.SetPosition(cmd.args[0], onturn); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

// set changes a setting for this session only.
func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		var sb strings.Builder
		for _, k := range []string{config.ConfigSearchDepth, config.ConfigSearchThreads,
			config.ConfigSearchTimeLimit, config.ConfigPlayerOne, config.ConfigPlayerTwo} {
			fmt.Fprintf(&sb, "%-20s%v\n", k, sc.config.Get(k))
		}
		return msg(strings.TrimRight(sb.String(), "\n")), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <key> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	switch key {
	case "depth", config.ConfigSearchDepth:
		d, err := strconv.Atoi(value)
		if err != nil || d < 1 {
			return nil, fmt.Errorf("%w: depth %q", config.ErrBadSetting, value)
		}
		sc.config.Set(config.ConfigSearchDepth, d)
		sc.aiplayer.SetDepth(d)
	case "threads", config.ConfigSearchThreads, "timelimit", config.ConfigSearchTimeLimit:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %v %q", config.ErrBadSetting, key, value)
		}
		if key == "threads" || key == config.ConfigSearchThreads {
			sc.config.Set(config.ConfigSearchThreads, max(n, 1))
		} else {
			sc.config.Set(config.ConfigSearchTimeLimit, n)
		}
		sc.aiplayer = player.NewSearchPlayer(sc.config)
	default:
		return nil, fmt.Errorf("%w: unknown setting %v", config.ErrBadSetting, key)
	}
	return msg(fmt.Sprintf("set %v to %v", key, value)), nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}

	key := cmd.args[0]
	value := cmd.args[1]

	old := sc.config.Get(key)
	sc.config.Set(key, value)
	if err := sc.config.Validate(); err != nil {
		sc.config.Set(key, old)
		return nil, err
	}
	err := sc.config.Write(cmd.options.String("file"))
	if err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	sc.aiplayer = player.NewSearchPlayer(sc.config)
	sc.playerTypes = [2]string{
		sc.config.GetString(config.ConfigPlayerOne),
		sc.config.GetString(config.ConfigPlayerTwo),
	}
	return msg(fmt.Sprintf("set config %s to %s and saved to file", key, value)), nil
}

// autoplay [player1] [player2] -games n -threads t -random k -file out.csv -turnlog turns.csv
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	player1, player2 := automatic.SearchPlayer, automatic.SearchPlayer
	if len(cmd.args) > 0 {
		player1 = cmd.args[0]
	}
	if len(cmd.args) > 1 {
		player2 = cmd.args[1]
	}
	games, err := cmd.options.IntDefault("games", 10)
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", 1)
	if err != nil {
		return nil, err
	}
	randomPlies, err := cmd.options.IntDefault("random", 2)
	if err != nil {
		return nil, err
	}
	summary, err := automatic.CompVsComp(sc.ctx, sc.config, player1, player2,
		games, threads, randomPlies, cmd.options.String("file"), cmd.options.String("turnlog"))
	if err != nil {
		return nil, err
	}
	out, err := summary.YAML()
	if err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(out, "\n")), nil
}

func (sc *ShellController) autoAnalyze(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: autoanalyze <file>")
	}
	summary, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	out, err := summary.YAML()
	if err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(out, "\n")), nil
}
