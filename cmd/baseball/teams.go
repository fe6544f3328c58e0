package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dice-baseball/internal/player"
	"github.com/vovakirdan/dice-baseball/internal/roster"
)

var flagRoster bool

var teamsCmd = &cobra.Command{
	Use:   "teams [team]",
	Short: "List the teams in the league",
	Long: `List every team with its ballpark, or show one team's roster.

Examples:
  baseball teams
  baseball teams pilots
  baseball teams --roster
  baseball teams --teams ./my-league`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTeams,
}

func init() {
	teamsCmd.Flags().BoolVar(&flagRoster, "roster", false, "Show every team's roster")
}

func runTeams(cmd *cobra.Command, args []string) {
	s, err := loadSetup(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := cmd.OutOrStdout()
	if len(args) == 1 {
		t, ok := s.league.Team(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown team %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'baseball teams' to see available teams.")
			os.Exit(1)
		}
		printRoster(w, s.league, t)
		return
	}

	listTeams(w, s.league)
	if flagRoster {
		for _, t := range s.league.Teams {
			fmt.Fprintln(w)
			printRoster(w, s.league, t)
		}
	}
}

// listTeams prints one line per team.
func listTeams(w io.Writer, league *roster.League) {
	fmt.Fprintln(w, "Teams:")
	fmt.Fprintln(w)
	for _, t := range league.Teams {
		park := league.HomePark(t)
		fmt.Fprintf(w, "  %-10s %-24s %s\n", t.ID, t.FullName(), park.Name)
	}
}

// printRoster prints a team's lineup and pitching staff.
func printRoster(w io.Writer, league *roster.League, t *roster.Team) {
	park := league.HomePark(t)
	fmt.Fprintf(w, "%s (%s era)\n", t.FullName(), t.Era)
	if park.Location != "" {
		fmt.Fprintf(w, "Home: %s, %s\n", park.Name, park.Location)
	} else {
		fmt.Fprintf(w, "Home: %s\n", park.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-3s %-24s %-4s %4s %4s  %s\n", "Pos", "Name", "Hand", "BT", "OBT", "Traits")
	for _, p := range t.Lineup() {
		fmt.Fprintf(w, "  %-3s %-24s %-4s %4d %4d  %s\n",
			p.Position, p.Name(), p.Hand, p.BatterTarget, p.OnBaseTarget, traitList(p.Traits))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-3s %-24s %-4s %4s\n", "", "Pitchers", "Hand", "PD")
	for _, p := range t.Pitchers {
		fmt.Fprintf(w, "  %-3s %-24s %-4s %4s  %s\n",
			p.Position, p.Name(), p.Hand, player.DieLabel(p.PitchDie), traitList(p.Traits))
	}
}

func traitList(traits []player.Trait) string {
	names := make([]string, len(traits))
	for i, tr := range traits {
		names[i] = string(tr)
	}
	return strings.Join(names, " ")
}
