package automatic

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func testConfig(games, threads int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigAutoplayGames, games)
	cfg.Set(config.ConfigAutoplayThreads, threads)
	return cfg
}

func TestPlayGameComputerFirst(t *testing.T) {
	is := is.New(t)
	out := &bytes.Buffer{}
	runner := NewGameRunner(out, 0)
	res, err := runner.PlayGame(context.Background())
	is.NoErr(err)
	is.True(res.Winner != board.Human)
	is.True(res.Plies >= 5)
	is.True(res.Plies <= 9)
	// the opening is random, every later computer move is searched
	is.Equal(len(res.SearchTimes), (res.Plies+1)/2-1)
	is.True(strings.Contains(out.String(), "computer: playing random move"))
}

func TestComputerNeverLoses(t *testing.T) {
	is := is.New(t)
	results, err := NewRunner(testConfig(60, 4)).Run(context.Background())
	is.NoErr(err)
	is.Equal(len(results), 60)
	for _, r := range results {
		is.True(r.Winner != board.Human)
	}
	is.Equal(CVCCounter.Value(), int64(60))
	is.Equal(IsPlaying.Value(), int64(0))
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := NewRunner(testConfig(50, 2)).Run(ctx)
	is.True(errors.Is(err, context.Canceled))
	is.True(len(results) < 50)
}

func TestReport(t *testing.T) {
	is := is.New(t)
	results := []game.Result{
		{Winner: board.Computer, Plies: 5, SearchTimes: []time.Duration{2 * time.Millisecond, 4 * time.Millisecond}},
		{Winner: board.NoPlayer, Plies: 9, SearchTimes: []time.Duration{6 * time.Millisecond}},
		{Winner: board.Computer, Plies: 7},
	}
	rep := NewReport(results)
	is.Equal(rep.Games, 3)
	is.Equal(rep.ComputerWins, 2)
	is.Equal(rep.HumanWins, 0)
	is.Equal(rep.Ties, 1)
	is.Equal(rep.PliesMean, 7.0)
	is.Equal(rep.PliesStdDev, 2.0)
	is.Equal(rep.Searches, 3)
	is.Equal(rep.SearchMsMean, 4.0)
	is.Equal(rep.SearchMsStdDev, 2.0)

	out, err := rep.YAML()
	is.NoErr(err)
	decoded := map[string]any{}
	is.NoErr(yaml.Unmarshal(out, &decoded))
	is.Equal(decoded["computer_wins"], 2)
	is.Equal(decoded["ties"], 1)

	var hist bytes.Buffer
	is.NoErr(rep.WriteHistogram(&hist, 3, 20))
	is.True(strings.HasPrefix(hist.String(), "search time (ms)\n"))
}

func TestEmptyReport(t *testing.T) {
	is := is.New(t)
	rep := NewReport(nil)
	is.Equal(rep.Games, 0)
	is.Equal(rep.PliesMean, 0.0)
	is.Equal(rep.SearchMsStdDev, 0.0)
	err := rep.WriteHistogram(&bytes.Buffer{}, 5, 20)
	is.True(errors.Is(err, ErrNoSearches))
}
