package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/tictactoe/board"
)

const (
	ConfigDebug           = "debug"
	ConfigThinkDelay      = "think-delay"
	ConfigFirstPlayer     = "first-player"
	ConfigHistoryFile     = "history-file"
	ConfigAutoplayGames   = "autoplay-games"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigAutoplayReport  = "autoplay-report"
)

var ErrBadFirstPlayer = errors.New("first-player must be human or computer")

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with every default set and environment
// overrides (TICTACTOE_THINK_DELAY etc.) enabled. It does not read any file.
func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigThinkDelay, time.Second)
	v.SetDefault(ConfigFirstPlayer, "human")
	v.SetDefault(ConfigHistoryFile, "/tmp/tictactoe-readline.tmp")
	v.SetDefault(ConfigAutoplayGames, 1000)
	v.SetDefault(ConfigAutoplayThreads, runtime.NumCPU())
	v.SetDefault(ConfigAutoplayReport, "")

	v.SetEnvPrefix("tictactoe")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{Viper: v}
}

// Load reads an optional tictactoe.yaml from the working directory or
// $HOME/.tictactoe, then binds any flags in fs. fs may be nil.
func (c *Config) Load(fs *pflag.FlagSet) error {
	c.SetConfigName("tictactoe")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	c.AddConfigPath("$HOME/.tictactoe")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	if fs != nil {
		if err := c.BindPFlags(fs); err != nil {
			return err
		}
	}
	return nil
}

// FirstPlayer is who opens the game.
func (c *Config) FirstPlayer() (board.Player, error) {
	switch strings.ToLower(strings.TrimSpace(c.GetString(ConfigFirstPlayer))) {
	case "human", "":
		return board.Human, nil
	case "computer":
		return board.Computer, nil
	}
	return board.NoPlayer, fmt.Errorf("%w: got %q", ErrBadFirstPlayer, c.GetString(ConfigFirstPlayer))
}

func (c *Config) ThinkDelay() time.Duration {
	return c.GetDuration(ConfigThinkDelay)
}
