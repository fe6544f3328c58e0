package engine

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/player"
	"github.com/vovakirdan/dice-baseball/internal/roster"
)

var lineupPositions = []player.Position{
	player.PositionCenterField,
	player.PositionShortstop,
	player.PositionFirstBase,
	player.PositionRightField,
	player.PositionThirdBase,
	player.PositionLeftField,
	player.PositionSecondBase,
	player.PositionCatcher,
	player.PositionDesignatedHitter,
}

var (
	visitorNames = []string{"Abbott", "Baker", "Carter", "Dixon", "Evans", "Foster", "Grant", "Hayes", "Irwin"}
	hostNames    = []string{"Jones", "Klein", "Lopez", "Moore", "Nash", "Ortiz", "Price", "Quinn", "Reed"}
)

// testTeam builds a team of left-handed 30/36 hitters behind a right-handed
// d8 pitcher, so no matchup adjustments apply unless a test adds them.
func testTeam(name string, names []string, pitcher string) *roster.Team {
	t := &roster.Team{ID: roster.Slug(name), Name: name, City: "Test", Era: roster.EraModern}
	for i, last := range names {
		t.Players = append(t.Players, &player.Player{
			FirstName:    "T",
			LastName:     last,
			Position:     lineupPositions[i],
			Hand:         player.HandLeft,
			BatterTarget: 30,
			OnBaseTarget: 36,
			PitchDie:     -4,
		})
	}
	t.Pitchers = []*player.Player{{
		FirstName:    "T",
		LastName:     pitcher,
		Position:     player.PositionPitcher,
		Hand:         player.HandRight,
		BatterTarget: 15,
		OnBaseTarget: 20,
		PitchDie:     8,
	}}
	return t
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// newTestGame returns a started game: top of the 1st, no outs.
func newTestGame(t *testing.T, opts ...Option) (*Modern, *State) {
	t.Helper()
	home := testTeam("Hosts", hostNames, "Hurley")
	away := testTeam("Visitors", visitorNames, "Archer")
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	m, err := NewModern(home, away, roster.Ballpark{Name: "Test Field"}, opts...)
	if err != nil {
		t.Fatalf("NewModern failed: %v", err)
	}
	s := m.NewState()
	m.start(s)
	return m, s
}

// script replays values and then falls back to a fixed-seed roller.
func script(values ...int) *dice.Scripted {
	return dice.NewScripted(dice.NewRoller(1), values...)
}

func runner(name string, traits ...player.Trait) *player.Player {
	return &player.Player{FirstName: "R", LastName: name, Hand: player.HandRight, Traits: traits}
}

// putRunners fills the bases given by mask (bit0=1st, bit1=2nd, bit2=3rd)
// with fresh runners and returns them indexed by base.
func putRunners(s *State, mask int, traits ...player.Trait) map[bases.Base]*player.Player {
	out := make(map[bases.Base]*player.Player)
	names := []string{"First", "Second", "Third"}
	for i := 0; i < 3; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		base := bases.Base(i + 1)
		r := runner(names[i], traits...)
		s.Bases.Add(base, r)
		out[base] = r
	}
	return out
}
