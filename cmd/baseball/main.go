// baseball simulates dice baseball games in the terminal.
//
// Usage:
//
//	baseball teams                 - List the league's teams and ballparks
//	baseball sim [away] [home]     - Simulate a game and print the play-by-play
//	baseball watch [away] [home]   - Watch or manage a game in the terminal UI
//	baseball serve                 - Start SSH server for remote viewers
//	baseball results [team]        - Show saved results and records
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.baseball/configs, ./configs)
//	--seed <value>      - Set dice seed for a reproducible game
//	--db <path>         - Set results database path (default: ~/.baseball/results.db)
//	--log-level <level> - debug, info, warn or error
//	--teams <dir>       - Load teams from a directory instead of the built-in league
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dice-baseball/internal/config"
	"github.com/vovakirdan/dice-baseball/internal/platform/tui"
	"github.com/vovakirdan/dice-baseball/internal/roster"
	"github.com/vovakirdan/dice-baseball/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagTeams    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "baseball",
	Short: "Dice baseball - simulate ball games with dice in your terminal",
	Long: `Dice baseball plays full nine-inning games from player cards and dice.

Available commands:
  teams    - Show the teams in the league
  sim      - Simulate a game and print the play-by-play
  watch    - Watch a game step by step, or call the plays yourself
  serve    - Start SSH server for remote viewers
  results  - View saved results and win/loss records

Examples:
  baseball teams
  baseball sim pilots gulls --seed 42
  baseball watch
  baseball serve --ssh :2222
  baseball results pilots`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Dice seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default ~/.baseball/results.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTeams, "teams", "", "Directory of .team and .park files")

	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}

// setup is everything a command needs before it starts playing.
type setup struct {
	cfg    config.GameConfig
	logger *log.Logger
	league *roster.League
}

// loadSetup reads the config, applies command-line overrides and loads the
// league.
func loadSetup(cmd *cobra.Command) (*setup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Sim.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("teams") {
		cfg.Sim.Teams = flagTeams
	}
	cfg.Normalize()

	return newSetup(cfg)
}

func newSetup(cfg config.GameConfig) (*setup, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "baseball",
		Level:           level,
	})

	var league *roster.League
	if cfg.Sim.Teams != "" {
		dir, expandErr := config.ExpandHome(cfg.Sim.Teams)
		if expandErr != nil {
			return nil, expandErr
		}
		league, err = roster.LoadDir(dir)
	} else {
		league, err = roster.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load teams: %w", err)
	}

	return &setup{cfg: cfg, logger: logger, league: league}, nil
}

// settings bundles the setup for the terminal UI. store may be nil.
func (s *setup) settings(store *storage.Store) tui.Settings {
	return tui.Settings{
		League: s.league,
		Config: s.cfg,
		Store:  store,
		Logger: s.logger,
	}
}

// openStore opens the results database. A failure is logged and the
// command carries on without saving.
func (s *setup) openStore() *storage.Store {
	store, err := storage.Open(s.cfg.Storage.Path)
	if err != nil {
		s.logger.Warn("could not open results database", "path", s.cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}

// matchup resolves "[away] [home]" arguments. Missing teams are drawn from
// the league with seed.
func matchup(league *roster.League, args []string, seed int64) (home, away *roster.Team, err error) {
	if len(league.Teams) < 2 {
		return nil, nil, fmt.Errorf("league has %d teams, need at least 2", len(league.Teams))
	}

	lookup := func(key string) (*roster.Team, error) {
		t, ok := league.Team(key)
		if !ok {
			return nil, fmt.Errorf("unknown team %q (run 'baseball teams' to list them)", key)
		}
		return t, nil
	}

	if len(args) > 0 {
		if away, err = lookup(args[0]); err != nil {
			return nil, nil, err
		}
	}
	if len(args) > 1 {
		if home, err = lookup(args[1]); err != nil {
			return nil, nil, err
		}
	}
	if home != nil && home == away {
		return nil, nil, fmt.Errorf("the %s cannot play themselves", home.Name)
	}

	rng := rand.New(rand.NewSource(seed))
	for away == nil || away == home {
		away = league.Teams[rng.Intn(len(league.Teams))]
	}
	for home == nil || home == away {
		home = league.Teams[rng.Intn(len(league.Teams))]
	}
	return home, away, nil
}
