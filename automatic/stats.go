package automatic

import (
	"sort"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/6453mike/PolarizedLadder/board"
)

type PlayerSummary struct {
	Name        string  `yaml:"name"`
	Games       int     `yaml:"games"`
	Wins        int     `yaml:"wins"`
	WinsAsFirst int     `yaml:"wins-as-first"`
	MeanNodes   float64 `yaml:"mean-nodes"`
	StdevNodes  float64 `yaml:"stdev-nodes"`
}

// Summary aggregates a batch of automatic games.
type Summary struct {
	Games           int             `yaml:"games"`
	Draws           int             `yaml:"draws"`
	FirstPlayerWins int             `yaml:"first-player-wins"`
	MeanTurns       float64         `yaml:"mean-turns"`
	StdevTurns      float64         `yaml:"stdev-turns"`
	Players         []PlayerSummary `yaml:"players"`
}

func Summarize(results []GameResult) *Summary {
	s := &Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}
	turns := make([]float64, 0, len(results))
	nodes := map[string][]float64{}
	players := map[string]*PlayerSummary{}
	get := func(name string) *PlayerSummary {
		if p, ok := players[name]; ok {
			return p
		}
		p := &PlayerSummary{Name: name}
		players[name] = p
		return p
	}
	for _, res := range results {
		turns = append(turns, float64(res.Turns))
		for idx, name := range res.Names {
			p := get(name)
			p.Games++
			nodes[name] = append(nodes[name], float64(res.Nodes[idx]))
		}
		switch res.Winner {
		case board.PlayerOne:
			s.FirstPlayerWins++
			p := get(res.Names[0])
			p.Wins++
			p.WinsAsFirst++
		case board.PlayerTwo:
			get(res.Names[1]).Wins++
		default:
			s.Draws++
		}
	}
	s.MeanTurns, s.StdevTurns = meanStdDev(turns)
	for name, p := range players {
		p.MeanNodes, p.StdevNodes = meanStdDev(nodes[name])
		s.Players = append(s.Players, *p)
	}
	sort.Slice(s.Players, func(i, j int) bool {
		return s.Players[i].Name < s.Players[j].Name
	})
	return s
}

// meanStdDev returns a zero deviation for a single sample instead of NaN.
func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}

// YAML renders the summary for display.
func (s *Summary) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
