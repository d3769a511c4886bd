package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/tictactoe/automatic"
	"github.com/domino14/tictactoe/config"
)

func main() {
	fs := pflag.NewFlagSet("autoplay", pflag.ExitOnError)
	fs.Bool(config.ConfigDebug, false, "debug logging")
	fs.Int(config.ConfigAutoplayGames, 1000, "number of games to play")
	fs.Int(config.ConfigAutoplayThreads, runtime.NumCPU(), "number of games played at once")
	fs.String(config.ConfigAutoplayReport, "", "write the YAML report to this file instead of stdout")
	bins := fs.Int("bins", 15, "histogram bins")
	fs.Parse(os.Args[1:])

	cfg := config.DefaultConfig()
	if err := cfg.Load(fs); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	start := time.Now()
	results, err := automatic.NewRunner(cfg).Run(ctx)
	if err != nil {
		log.Error().Err(err).Int("finished", len(results)).Msg("autoplay stopped early")
	}
	log.Info().Int("games", len(results)).Dur("elapsed", time.Since(start)).Msg("autoplay-finished")

	rep := automatic.NewReport(results)
	out, err := rep.YAML()
	if err != nil {
		log.Fatal().Err(err).Msg("marshalling report")
	}
	if fn := cfg.GetString(config.ConfigAutoplayReport); fn != "" {
		if err := os.WriteFile(fn, out, 0o644); err != nil {
			log.Fatal().Err(err).Msg("writing report")
		}
		log.Info().Str("file", fn).Msg("wrote report")
	} else {
		os.Stdout.Write(out)
	}
	if err := rep.WriteHistogram(os.Stdout, *bins, 50); err != nil {
		log.Warn().Err(err).Msg("no histogram")
	}
	if rep.HumanWins > 0 {
		log.Fatal().Int("human-wins", rep.HumanWins).Msg("computer lost a game")
	}
}
