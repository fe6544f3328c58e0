package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dice-baseball/internal/config"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/engine"
	"github.com/vovakirdan/dice-baseball/internal/storage"
)

var (
	flagManager string
	flagQuiet   bool
	flagNoSave  bool
	flagGames   int
)

var simCmd = &cobra.Command{
	Use:   "sim [away] [home]",
	Short: "Simulate a game",
	Long: `Play a whole game with the automatic manager calling the plays, then
print the play-by-play and the linescore. Teams are picked at random when
not given. Finished games are saved to the results database.

Manager styles:
  passive    - Always swing away
  balanced   - Steal and bunt when the odds are good
  aggressive - Run at nearly every chance
  custom     - Use manager.aggression from the config

Examples:
  baseball sim
  baseball sim pilots gulls
  baseball sim pilots gulls --seed 42 --quiet
  baseball sim --games 10 --manager aggressive`,
	Args: cobra.MaximumNArgs(2),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagManager, "manager", "", "Manager style: passive, balanced, aggressive, custom")
	simCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print only the linescore")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not save results")
	simCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
}

func runSim(cmd *cobra.Command, args []string) {
	s, err := loadSetup(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagManager != "" {
		config.ApplyStyle(&s.cfg, config.ManagerStyle(flagManager))
	}

	var store *storage.Store
	if !flagNoSave {
		store = s.openStore()
		if store != nil {
			defer store.Close()
		}
	}

	opts := simOptions{quiet: flagQuiet, games: flagGames}
	if err := simulate(cmd.OutOrStdout(), s, store, args, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type simOptions struct {
	quiet bool
	games int
}

// simulate plays opts.games games, printing each one to w. Consecutive
// games use consecutive seeds.
func simulate(w io.Writer, s *setup, store *storage.Store, args []string, opts simOptions) error {
	seed := s.settings(nil).Seed()
	games := max(opts.games, 1)

	for i := 0; i < games; i++ {
		gameSeed := seed + int64(i)
		home, away, err := matchup(s.league, args, gameSeed)
		if err != nil {
			return err
		}
		game, err := s.settings(store).NewGame(home, away)
		if err != nil {
			return err
		}

		state, err := game.PlayGame(dice.NewRoller(gameSeed), engine.Manager{Aggression: s.cfg.Manager.Aggression})
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		if !opts.quiet {
			fmt.Fprintln(w, state.Narration())
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, game.Linescore(state).String())
		fmt.Fprintf(w, "Seed: %d\n", gameSeed)

		if store != nil {
			id, err := store.SaveResult(storage.NewResult(game, state, gameSeed))
			if err != nil {
				s.logger.Warn("could not save game", "error", err)
				continue
			}
			fmt.Fprintf(w, "Saved game %s\n", id)
		}
	}
	return nil
}
