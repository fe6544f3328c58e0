package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/player"
	"github.com/vovakirdan/dice-baseball/internal/roster"
)

// swingOut is a pitch and swing that makes a plain out (4 + 76 = 80).
var swingOut = []int{4, 76}

// setInning puts s in the given half with one run total per side as given.
func setInning(s *State, inning int, half Half, awayRuns, homeRuns int) {
	s.Inning = inning
	s.Half = half
	for _, ts := range []*TeamState{&s.Away, &s.Home} {
		ts.Runs = make([]int, inning)
		ts.Hits = make([]int, inning)
		ts.Errors = make([]int, inning)
	}
	s.Away.Runs[0] = awayRuns
	s.Home.Runs[0] = homeRuns
}

func assertGolden(t *testing.T, name, actual string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	expectedBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", path, err)
	}
	expected := strings.TrimSpace(string(expectedBytes))
	actual = strings.TrimSpace(actual)
	if expected == actual {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	t.Errorf("Narration mismatch for %s:\n%s", name, diff)
}

func TestFirstStepStartsGame(t *testing.T) {
	m, _ := newTestGame(t)
	s := m.NewState()
	if s.Status != StatusNotStarted {
		t.Fatalf("status = %v", s.Status)
	}
	if err := m.Step(s, script(swingOut...), PlaySwing); err != nil {
		t.Fatal(err)
	}
	if s.Status != StatusOngoing {
		t.Errorf("status = %v, want ongoing", s.Status)
	}
	if len(s.Away.Runs) != 1 || len(s.Home.Runs) != 1 {
		t.Errorf("per-inning arrays: away %d, home %d, want 1", len(s.Away.Runs), len(s.Home.Runs))
	}
	if s.Outs != 1 || s.Away.BatterIndex != 1 {
		t.Errorf("outs=%d index=%d", s.Outs, s.Away.BatterIndex)
	}
}

func TestNewStateCopiesStarters(t *testing.T) {
	m, s := newTestGame(t)
	if s.Home.Pitcher == m.Home.Starter() {
		t.Fatal("state must own its pitcher")
	}
	s.Home.Pitcher.Traits = append(s.Home.Pitcher.Traits, player.TraitStrikeout)
	if m.Home.Starter().Has(player.TraitStrikeout) {
		t.Error("changing the state pitcher leaked into the roster")
	}
}

func TestThreeOutsEndHalf(t *testing.T) {
	m, s := newTestGame(t)
	putRunners(s, 0b011)
	s.Outs = 2

	if err := m.Step(s, script(swingOut...), PlaySwing); err != nil {
		t.Fatal(err)
	}
	if s.Half != Bottom || s.Inning != 1 || s.Outs != 0 {
		t.Errorf("got %v of %d with %d outs, want bottom of 1 with 0", s.Half, s.Inning, s.Outs)
	}
	if s.Bases.Occupancy() != bases.Empty {
		t.Error("bases must clear between halves")
	}
	if s.Home.InningsPitched != 1 {
		t.Errorf("home innings pitched = %d, want 1", s.Home.InningsPitched)
	}

	s.Outs = 2
	if err := m.Step(s, script(swingOut...), PlaySwing); err != nil {
		t.Fatal(err)
	}
	if s.Half != Top || s.Inning != 2 {
		t.Errorf("got %v of %d, want top of 2", s.Half, s.Inning)
	}
	if len(s.Away.Runs) != 2 || len(s.Home.Hits) != 2 {
		t.Error("both sides should have a slot for the 2nd inning")
	}
	if s.Home.BatterIndex != 1 || s.Away.BatterIndex != 1 {
		t.Errorf("batting order: away %d home %d", s.Away.BatterIndex, s.Home.BatterIndex)
	}
}

func TestGameEnd(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		inning     int
		half       Half
		away, home int
		wantStatus Status
		wantInning int
		wantHalf   Half
	}{
		{"lead after nine", nil, 9, Bottom, 1, 0, StatusOver, 10, Top},
		{"home lead after nine", nil, 9, Bottom, 0, 2, StatusOver, 10, Top},
		{"tied after nine", nil, 9, Bottom, 1, 1, StatusOngoing, 10, Top},
		{"extra innings decided", nil, 10, Bottom, 2, 1, StatusOver, 11, Top},
		{"visitors lead after top of ten", nil, 10, Top, 2, 1, StatusOver, 10, Bottom},
		{"home lead after top of ten", nil, 10, Top, 1, 2, StatusOver, 10, Bottom},
		{"tied after top of ten", nil, 10, Top, 1, 1, StatusOngoing, 10, Bottom},
		{"no end after eight", nil, 8, Bottom, 3, 0, StatusOngoing, 9, Top},
		{"home lead after top of nine plays on", nil, 9, Top, 0, 1, StatusOngoing, 9, Bottom},
		{"walk-off rule skips bottom", []Option{WithWalkOff(true)}, 9, Top, 0, 1, StatusOver, 9, Bottom},
		{"walk-off rule plays bottom when trailing", []Option{WithWalkOff(true)}, 9, Top, 1, 0, StatusOngoing, 9, Bottom},
		{"short game", []Option{WithExtraInningsFrom(3)}, 2, Bottom, 1, 0, StatusOver, 3, Top},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, s := newTestGame(t, tc.opts...)
			setInning(s, tc.inning, tc.half, tc.away, tc.home)
			s.Outs = 2
			if err := m.Step(s, script(swingOut...), PlaySwing); err != nil {
				t.Fatal(err)
			}
			if s.Status != tc.wantStatus {
				t.Errorf("status = %v, want %v", s.Status, tc.wantStatus)
			}
			if s.Inning != tc.wantInning || s.Half != tc.wantHalf {
				t.Errorf("at %v of %d, want %v of %d", s.Half, s.Inning, tc.wantHalf, tc.wantInning)
			}
		})
	}
}

func TestStepAfterGameOver(t *testing.T) {
	m, s := newTestGame(t)
	setInning(s, 9, Bottom, 1, 0)
	s.Outs = 2
	if err := m.Step(s, script(swingOut...), PlaySwing); err != nil {
		t.Fatal(err)
	}
	before := s.Snapshot()
	if err := m.Step(s, script(swingOut...), PlaySwing); !errors.Is(err, ErrGameOver) {
		t.Errorf("err = %v, want ErrGameOver", err)
	}
	if s.Snapshot() != before {
		t.Error("a finished game must not change")
	}
}

func TestWalkOffHomeRun(t *testing.T) {
	for _, walkOff := range []bool{false, true} {
		m, s := newTestGame(t, WithWalkOff(walkOff))
		setInning(s, 9, Bottom, 0, 0)
		putRunners(s, 0b100)

		if err := m.Step(s, script(4, 16, 19), PlaySwing); err != nil {
			t.Fatal(err)
		}
		want := StatusOngoing
		if walkOff {
			want = StatusOver
		}
		if s.Status != want {
			t.Errorf("walkOff=%v: status = %v, want %v", walkOff, s.Status, want)
		}
		if _, home := s.Score(); home != 2 {
			t.Errorf("home runs = %d, want 2", home)
		}
	}
}

func TestStepRejectsIllegalPlays(t *testing.T) {
	m, s := newTestGame(t)
	before := s.Snapshot()
	for _, play := range []Play{PlayStealSecond, PlayStealThird, PlayStealHome, PlayDoubleSteal, PlayHitAndRun, Play(42)} {
		if err := m.Step(s, script(), play); !errors.Is(err, ErrIllegalPlay) {
			t.Errorf("%v: err = %v, want ErrIllegalPlay", play, err)
		}
	}
	if s.Snapshot() != before {
		t.Error("rejected plays must not change the state")
	}
}

func TestHalfInningNarration(t *testing.T) {
	m, _ := newTestGame(t)
	s := m.NewState()
	d := script(
		4, 16, 9, // single
		4, 30, // walk
		4, 50, // double play
		4, 16, 19, // home run
		4, 76, // fly out
	)
	for i := 0; i < 5; i++ {
		if err := m.Step(s, d, PlaySwing); err != nil {
			t.Fatal(err)
		}
	}
	if d.Remaining() != 0 {
		t.Errorf("%d scripted rolls left over", d.Remaining())
	}
	assertGolden(t, "top_first.golden", s.Narration())

	ls := m.Linescore(s)
	if ls.Away.Runs != 2 || ls.Away.Hits != 2 || ls.Home.Errors != 0 {
		t.Errorf("linescore away R=%d H=%d", ls.Away.Runs, ls.Away.Hits)
	}
	if ls.Winner() != "Visitors" {
		t.Errorf("Winner() = %q", ls.Winner())
	}
	if !strings.Contains(ls.String(), "Visitors  2") {
		t.Errorf("linescore table missing the first inning:\n%s", ls)
	}
}

func TestManagerChoose(t *testing.T) {
	tests := []struct {
		name       string
		mask       int
		runner     []player.Trait
		batter     []player.Trait
		batTarget  int
		outs       int
		aggression float64
		want       Play
	}{
		{"passive", 0b001, []player.Trait{player.TraitFast}, nil, 30, 0, 0, PlaySwing},
		{"steal second", 0b001, []player.Trait{player.TraitFast}, nil, 30, 0, 0.5, PlayStealSecond},
		{"hit and run", 0b001, nil, []player.Trait{player.TraitContact}, 30, 1, 0.5, PlayHitAndRun},
		{"bunt", 0b001, nil, nil, 20, 0, 0.3, PlayBunt},
		{"no bunt with an out", 0b001, nil, nil, 20, 1, 0.3, PlaySwing},
		{"double steal", 0b011, []player.Trait{player.TraitFast}, nil, 30, 0, 0.8, PlayDoubleSteal},
		{"steal third", 0b010, []player.Trait{player.TraitFast}, nil, 30, 1, 0.6, PlayStealThird},
		{"steal home", 0b100, []player.Trait{player.TraitFast}, nil, 30, 2, 1, PlayStealHome},
		{"empty bases", 0b000, nil, nil, 20, 0, 1, PlaySwing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, s := newTestGame(t)
			putRunners(s, tc.mask, tc.runner...)
			s.Outs = tc.outs
			m.Away.Players[0].Traits = tc.batter
			m.Away.Players[0].BatterTarget = tc.batTarget

			got := Manager{Aggression: tc.aggression}.Choose(m, s)
			if got != tc.want {
				t.Errorf("Choose() = %v, want %v", got, tc.want)
			}
		})
	}
}

func defaultGame(t *testing.T, opts ...Option) *Modern {
	t.Helper()
	league, err := roster.Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	home, away := league.Teams[0], league.Teams[1]
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	m, err := NewModern(home, away, league.HomePark(home), opts...)
	if err != nil {
		t.Fatalf("NewModern failed: %v", err)
	}
	return m
}

func TestDeterminism(t *testing.T) {
	m := defaultGame(t)
	mgr := Manager{Aggression: 0.5}

	s1, err := m.PlayGame(dice.NewRoller(12345), mgr)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := m.PlayGame(dice.NewRoller(12345), mgr)
	if err != nil {
		t.Fatal(err)
	}
	if s1.Snapshot() != s2.Snapshot() {
		t.Errorf("snapshots differ: %+v vs %+v", s1.Snapshot(), s2.Snapshot())
	}
	if s1.Narration() != s2.Narration() {
		t.Error("narration differs for the same seed")
	}
}

func TestRecordedGameReplays(t *testing.T) {
	m := defaultGame(t)
	mgr := Manager{Aggression: 0.7}

	rec := dice.NewRecorder(dice.NewRoller(7))
	s1, err := m.PlayGame(rec, mgr)
	if err != nil {
		t.Fatal(err)
	}
	replay := dice.NewScripted(dice.NewRoller(99), rec.Draws()...)
	s2, err := m.PlayGame(replay, mgr)
	if err != nil {
		t.Fatal(err)
	}
	if replay.Remaining() != 0 {
		t.Errorf("replay left %d draws unused", replay.Remaining())
	}
	if s1.Narration() != s2.Narration() {
		t.Error("replayed game differs from the recorded one")
	}
}

func TestPlayGameInvariants(t *testing.T) {
	for _, walkOff := range []bool{false, true} {
		m := defaultGame(t, WithWalkOff(walkOff))
		for seed := int64(1); seed <= 40; seed++ {
			s, err := m.PlayGame(dice.NewRoller(seed), Manager{Aggression: float64(seed%5) / 4})
			if err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
			if s.Status != StatusOver {
				t.Fatalf("seed %d: status %v", seed, s.Status)
			}
			away, home := s.Score()
			if away == home {
				t.Errorf("seed %d: game ended tied %d-%d", seed, away, home)
			}
			if s.Inning < 9 {
				t.Errorf("seed %d: game ended in inning %d", seed, s.Inning)
			}
			if len(s.Away.Runs) != len(s.Home.Runs) {
				t.Errorf("seed %d: inning arrays differ", seed)
			}
			if s.Outs < 0 || s.Outs > MaxOuts {
				t.Errorf("seed %d: outs %d", seed, s.Outs)
			}
			if m.Linescore(s).Winner() == "" {
				t.Errorf("seed %d: no winner", seed)
			}
		}
	}
}

func TestNewModernValidation(t *testing.T) {
	home := testTeam("Hosts", hostNames, "Hurley")
	away := testTeam("Visitors", visitorNames, "Archer")

	short := testTeam("Shorts", hostNames[:7], "Tiny")
	_, err := NewModern(short, away, roster.Ballpark{})
	var rerr *RosterError
	if !errors.As(err, &rerr) || !errors.Is(err, ErrInvalidGame) {
		t.Fatalf("err = %v, want RosterError", err)
	}
	if rerr.Team != "Test Shorts" || rerr.Count != 7 {
		t.Errorf("RosterError = %+v", rerr)
	}

	old := testTeam("Ancients", visitorNames, "Zeus")
	old.Era = roster.EraAncient
	_, err = NewModern(home, old, roster.Ballpark{})
	var eerr *EraError
	if !errors.As(err, &eerr) || !errors.Is(err, ErrInvalidGame) {
		t.Fatalf("err = %v, want EraError", err)
	}
	if eerr.Team != "Test Ancients" {
		t.Errorf("EraError team = %q", eerr.Team)
	}

	noStaff := testTeam("Bullpenless", visitorNames, "x")
	noStaff.Pitchers = nil
	if _, err := NewModern(home, noStaff, roster.Ballpark{}); !errors.Is(err, ErrInvalidGame) {
		t.Errorf("err = %v, want ErrInvalidGame", err)
	}

	eight := testTeam("Eights", hostNames[:8], "Eightball")
	m, err := NewModern(eight, away, roster.Ballpark{})
	if err != nil {
		t.Fatalf("eight position players should be enough: %v", err)
	}
	if !m.Oddities || m.ExtraInningsFrom != DefaultExtraInningsFrom {
		t.Error("unexpected defaults")
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 21: "21st", 113: "113th"}
	for n, want := range cases {
		if got := ordinal(n); got != want {
			t.Errorf("ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}
