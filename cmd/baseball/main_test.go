package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dice-baseball/internal/config"
	"github.com/vovakirdan/dice-baseball/internal/roster"
	"github.com/vovakirdan/dice-baseball/internal/storage"
)

func testSetup(t *testing.T, seed int64) *setup {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Sim.Seed = seed
	cfg.Storage.Path = filepath.Join(t.TempDir(), "results.db")
	s, err := newSetup(cfg)
	if err != nil {
		t.Fatalf("newSetup() error = %v", err)
	}
	s.logger = log.New(io.Discard)
	return s
}

func TestMatchup(t *testing.T) {
	league, err := roster.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantHome string
		wantAway string
		wantErr  bool
	}{
		{"both given", []string{"pilots", "gulls"}, "gulls", "pilots", false},
		{"unknown away", []string{"nobody"}, "", "", true},
		{"unknown home", []string{"pilots", "nobody"}, "", "", true},
		{"same team", []string{"gulls", "gulls"}, "", "", true},
		{"away only", []string{"miners"}, "", "miners", false},
		{"random", nil, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away, err := matchup(league, tt.args, 3)
			if (err != nil) != tt.wantErr {
				t.Fatalf("matchup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if home == nil || away == nil || home == away {
				t.Fatalf("matchup() = %v, %v", home, away)
			}
			if tt.wantHome != "" && home.ID != tt.wantHome {
				t.Errorf("home = %s, want %s", home.ID, tt.wantHome)
			}
			if tt.wantAway != "" && away.ID != tt.wantAway {
				t.Errorf("away = %s, want %s", away.ID, tt.wantAway)
			}
		})
	}
}

func TestMatchupIsSeeded(t *testing.T) {
	league, err := roster.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	h1, a1, _ := matchup(league, nil, 99)
	h2, a2, _ := matchup(league, nil, 99)
	if h1 != h2 || a1 != a2 {
		t.Error("same seed picked different teams")
	}
}

func TestMatchupNeedsTwoTeams(t *testing.T) {
	league, err := roster.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	league.Teams = league.Teams[:1]
	if _, _, err := matchup(league, nil, 1); err == nil {
		t.Error("expected error for a one-team league")
	}
}

func TestSimulatePrintsAndSaves(t *testing.T) {
	s := testSetup(t, 42)
	store, err := storage.Open(s.cfg.Storage.Path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := simulate(&out, s, store, []string{"pilots", "gulls"}, simOptions{games: 2}); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	text := out.String()
	for _, want := range []string{"Seed: 42", "Seed: 43", "R  H  E", "Saved game "} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("saved %d games, want 2", len(results))
	}
	for _, r := range results {
		if r.AwayID != "pilots" || r.HomeID != "gulls" {
			t.Errorf("saved %s @ %s", r.AwayID, r.HomeID)
		}
		if r.Winner() == "" {
			t.Error("finished game has no winner")
		}
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	s := testSetup(t, 7)

	var first, second bytes.Buffer
	if err := simulate(&first, s, nil, []string{"millers", "miners"}, simOptions{}); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if err := simulate(&second, s, nil, []string{"millers", "miners"}, simOptions{}); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if first.String() != second.String() {
		t.Error("same seed produced different games")
	}
	if strings.Contains(first.String(), "Saved game") {
		t.Error("saved without a store")
	}
}

func TestSimulateReplaysZeroSeed(t *testing.T) {
	s := testSetup(t, -1)

	var first, second bytes.Buffer
	opts := simOptions{quiet: true, games: 2}
	if err := simulate(&first, s, nil, []string{"pilots", "gulls"}, opts); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if err := simulate(&second, s, nil, []string{"pilots", "gulls"}, opts); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if !strings.Contains(first.String(), "Seed: 0\n") {
		t.Errorf("second game should report seed 0:\n%s", first.String())
	}
	if first.String() != second.String() {
		t.Error("a game seeded with 0 did not replay")
	}
}

func TestSimulateQuiet(t *testing.T) {
	s := testSetup(t, 5)

	var loud, quiet bytes.Buffer
	if err := simulate(&loud, s, nil, []string{"pilots", "gulls"}, simOptions{}); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if err := simulate(&quiet, s, nil, []string{"pilots", "gulls"}, simOptions{quiet: true}); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if quiet.Len() >= loud.Len() {
		t.Errorf("quiet output (%d bytes) not shorter than full (%d bytes)", quiet.Len(), loud.Len())
	}
	if !strings.HasSuffix(loud.String(), quiet.String()) {
		t.Error("quiet output should be the tail of the full output")
	}
}

func TestListTeamsAndRoster(t *testing.T) {
	league, err := roster.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	var out bytes.Buffer
	listTeams(&out, league)
	for _, team := range league.Teams {
		if !strings.Contains(out.String(), team.FullName()) {
			t.Errorf("team list missing %s", team.FullName())
		}
	}

	team, _ := league.Team("pilots")
	out.Reset()
	printRoster(&out, league, team)
	text := out.String()
	if !strings.Contains(text, "Pitchers") {
		t.Error("roster missing pitching staff")
	}
	for _, p := range team.Lineup() {
		if !strings.Contains(text, p.Name()) {
			t.Errorf("roster missing %s", p.Name())
		}
	}
}

func TestPrintResults(t *testing.T) {
	s := testSetup(t, 11)
	store, err := storage.Open(s.cfg.Storage.Path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := printResults(&out, store, s.league, nil, 10); err != nil {
		t.Fatalf("printResults() error = %v", err)
	}
	if !strings.Contains(out.String(), "No games recorded yet.") {
		t.Errorf("empty output = %q", out.String())
	}

	if err := simulate(io.Discard, s, store, []string{"pilots", "gulls"}, simOptions{quiet: true}); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	out.Reset()
	if err := printResults(&out, store, s.league, nil, 10); err != nil {
		t.Fatalf("printResults() error = %v", err)
	}
	if !strings.Contains(out.String(), "Standings:") {
		t.Error("missing standings")
	}

	pilots, _ := s.league.Team("pilots")
	out.Reset()
	if err := printResults(&out, store, s.league, pilots, 10); err != nil {
		t.Fatalf("printResults() error = %v", err)
	}
	text := out.String()
	if !strings.HasPrefix(text, pilots.FullName()+": ") {
		t.Errorf("team header = %q", text)
	}
	if !strings.Contains(text, "1-0") && !strings.Contains(text, "0-1") {
		t.Errorf("record missing from %q", text)
	}
}
