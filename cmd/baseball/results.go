package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dice-baseball/internal/platform/tui"
	"github.com/vovakirdan/dice-baseball/internal/roster"
	"github.com/vovakirdan/dice-baseball/internal/storage"
)

var (
	flagResultsTUI bool
	flagClear      bool
	flagLimit      int
)

var resultsCmd = &cobra.Command{
	Use:   "results [team]",
	Short: "View saved results",
	Long: `Show saved games and each team's win/loss record.

Examples:
  baseball results              # Recent games and standings
  baseball results pilots       # Every game the Pilots played
  baseball results --limit 5    # Only the five latest games
  baseball results --tui        # Browse interactively
  baseball results --clear      # Forget every saved game`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagResultsTUI, "tui", false, "Browse results in the terminal UI")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every saved game")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recent games to show")
}

func runResults(cmd *cobra.Command, args []string) {
	s, err := loadSetup(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(s.cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All saved games deleted.")
		return
	}

	if flagResultsTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunResults(store, s.league, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var team *roster.Team
	if len(args) == 1 {
		t, ok := s.league.Team(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown team %q\n", args[0])
			os.Exit(1)
		}
		team = t
	}

	if err := printResults(cmd.OutOrStdout(), store, s.league, team, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printResults writes the saved games and the standings. With a team only
// that team's games are listed.
func printResults(w io.Writer, store *storage.Store, league *roster.League, team *roster.Team, limit int) error {
	var (
		results []storage.GameResult
		err     error
	)
	if team != nil {
		results, err = store.TeamResults(team.ID)
	} else {
		results, err = store.RecentResults(limit)
	}
	if err != nil {
		return err
	}

	if team != nil {
		rec, recErr := store.TeamRecord(team.ID)
		if recErr != nil {
			return recErr
		}
		fmt.Fprintf(w, "%s: %d-%d\n\n", team.FullName(), rec.Wins, rec.Losses)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w, "Play one with 'baseball sim'!")
		return nil
	}

	for _, r := range results {
		extra := ""
		if r.Innings != 9 {
			extra = fmt.Sprintf(" (%d)", r.Innings)
		}
		fmt.Fprintf(w, "  %s  %-16s %2d  @ %-16s %2d%s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.AwayName, r.AwayRuns, r.HomeName, r.HomeRuns, extra, r.ID.String()[:8])
	}

	if team != nil {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Standings:")
	for _, t := range league.Teams {
		rec, recErr := store.TeamRecord(t.ID)
		if recErr != nil {
			return recErr
		}
		fmt.Fprintf(w, "  %-24s %3d-%-3d\n", t.FullName(), rec.Wins, rec.Losses)
	}
	return nil
}
