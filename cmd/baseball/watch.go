package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dice-baseball/internal/platform/tui"
	"github.com/vovakirdan/dice-baseball/internal/roster"
)

var flagPace int

var watchCmd = &cobra.Command{
	Use:   "watch [away] [home]",
	Short: "Watch or manage a game in the terminal",
	Long: `Start a game in the terminal UI. Without teams a picker opens first.

Controls:
  Space/N    - Let the manager make the call
  S          - Swing away
  2 / 3 / H  - Steal second, third or home
  D          - Double steal
  B          - Bunt
  R          - Hit and run
  A          - Toggle auto play
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Examples:
  baseball watch
  baseball watch pilots gulls
  baseball watch pilots gulls --seed 7 --pace 0`,
	Args: cobra.MaximumNArgs(2),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagPace, "pace", -1, "Auto play interval in milliseconds (0 = manual only)")
}

func runWatch(cmd *cobra.Command, args []string) {
	s, err := loadSetup(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagPace >= 0 {
		s.cfg.Sim.PaceMS = flagPace
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := s.openStore()
	if store != nil {
		defer store.Close()
	}
	st := s.settings(store)

	seed := st.Seed()
	var runErr error
	if len(args) == 0 {
		home, away, ok, menuErr := tui.RunMenu(s.league, width, height, seed)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		if !ok {
			return
		}
		runErr = startWatch(st, home, away, seed)
	} else {
		home, away, matchErr := matchup(s.league, args, seed)
		if matchErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", matchErr)
			os.Exit(1)
		}
		runErr = startWatch(st, home, away, seed)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func startWatch(st tui.Settings, home, away *roster.Team, seed int64) error {
	game, err := st.NewGame(home, away)
	if err != nil {
		return err
	}
	return tui.Run(game, seed, st)
}
