package automatic

// Batch play: many games on several goroutines.

import (
	"context"
	"errors"
	"expvar"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/game"
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

type Runner struct {
	numGames   int
	threads    int
	thinkDelay time.Duration
	out        io.Writer
}

// NewRunner reads the game count and thread count from cfg. Autoplay games
// never pause to think.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		numGames: cfg.GetInt(config.ConfigAutoplayGames),
		threads:  max(1, cfg.GetInt(config.ConfigAutoplayThreads)),
	}
}

// Run plays all games and returns the results in game order. If ctx is
// cancelled the games finished so far are returned along with ctx's error.
func (r *Runner) Run(ctx context.Context) ([]game.Result, error) {
	logger := zerolog.Ctx(ctx)
	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	logger.Debug().Int("games", r.numGames).Int("threads", r.threads).Msg("autoplay-start")
	CVCCounter.Set(0)

	results := make([]game.Result, r.numGames)
	done := make([]bool, r.numGames)
	jobs := make(chan int, 100)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range r.numGames {
			select {
			case jobs <- i:
			case <-gctx.Done():
				logger.Info().Msg("Got stop signal, exiting soon...")
				return gctx.Err()
			}
		}
		return nil
	})

	for t := 0; t < r.threads; t++ {
		g.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			runner := NewGameRunner(r.out, r.thinkDelay)
			for i := range jobs {
				res, err := runner.PlayGame(gctx)
				if err != nil {
					return err
				}
				results[i] = res
				done[i] = true
				CVCCounter.Add(1)
				if n := CVCCounter.Value(); n%1000 == 0 {
					logger.Info().Int64("games", n).Msg("autoplay-progress")
				}
			}
			return nil
		})
	}

	err := g.Wait()
	finished := make([]game.Result, 0, r.numGames)
	for i, ok := range done {
		if ok {
			finished = append(finished, results[i])
		}
	}
	logger.Debug().Int("finished", len(finished)).Msg("autoplay-done")
	return finished, err
}
