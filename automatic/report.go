package automatic

import (
	"errors"
	"io"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/game"
)

var ErrNoSearches = errors.New("no computer searches to plot")

// Report summarizes a batch of finished games.
type Report struct {
	Games        int `yaml:"games"`
	ComputerWins int `yaml:"computer_wins"`
	HumanWins    int `yaml:"human_wins"`
	Ties         int `yaml:"ties"`

	PliesMean   float64 `yaml:"plies_mean"`
	PliesStdDev float64 `yaml:"plies_stddev"`

	Searches       int     `yaml:"searches"`
	SearchMsMean   float64 `yaml:"search_ms_mean"`
	SearchMsStdDev float64 `yaml:"search_ms_stddev"`

	searchMs []float64
}

func NewReport(results []game.Result) *Report {
	plies := lo.Map(results, func(r game.Result, _ int) float64 {
		return float64(r.Plies)
	})
	searchMs := lo.FlatMap(results, func(r game.Result, _ int) []float64 {
		return lo.Map(r.SearchTimes, func(d time.Duration, _ int) float64 {
			return float64(d) / float64(time.Millisecond)
		})
	})
	rep := &Report{
		Games: len(results),
		ComputerWins: lo.CountBy(results, func(r game.Result) bool {
			return r.Winner == board.Computer
		}),
		HumanWins: lo.CountBy(results, func(r game.Result) bool {
			return r.Winner == board.Human
		}),
		Ties: lo.CountBy(results, func(r game.Result) bool {
			return r.Winner == board.NoPlayer
		}),
		Searches: len(searchMs),
		searchMs: searchMs,
	}
	rep.PliesMean, rep.PliesStdDev = meanStdDev(plies)
	rep.SearchMsMean, rep.SearchMsStdDev = meanStdDev(searchMs)
	return rep
}

// meanStdDev is 0, 0 for an empty sample; the deviation of a single value
// is 0.
func meanStdDev(x []float64) (float64, float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteHistogram plots the distribution of computer search times.
func (r *Report) WriteHistogram(w io.Writer, bins, width int) error {
	if len(r.searchMs) == 0 {
		return ErrNoSearches
	}
	if _, err := io.WriteString(w, "search time (ms)\n"); err != nil {
		return err
	}
	h := histogram.Hist(bins, r.searchMs)
	return histogram.Fprint(w, h, histogram.Linear(width))
}
