package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/player"
	"github.com/vovakirdan/dice-baseball/internal/roster"
)

// Status is the lifecycle stage of a game.
type Status int

const (
	StatusNotStarted Status = iota
	StatusOngoing
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusOver:
		return "over"
	default:
		return "not started"
	}
}

// Half is the top or bottom of an inning.
type Half int

const (
	Top Half = iota
	Bottom
)

func (h Half) String() string {
	if h == Bottom {
		return "bottom"
	}
	return "top"
}

// MaxOuts ends a half inning.
const MaxOuts = 3

// TeamState is one side's running state.
type TeamState struct {
	// BatterIndex points into the lineup, 0..8.
	BatterIndex int
	// Pitcher is the side's own copy of its pitcher.
	Pitcher        *player.Player
	InningsPitched int

	// Per-inning tallies; index i is inning i+1.
	Runs   []int
	Hits   []int
	Errors []int
}

func newTeamState(starter *player.Player) TeamState {
	ts := TeamState{}
	if starter != nil {
		cp := *starter
		cp.Traits = append([]player.Trait(nil), starter.Traits...)
		ts.Pitcher = &cp
	}
	return ts
}

// TotalRuns sums the per-inning runs.
func (t *TeamState) TotalRuns() int { return sum(t.Runs) }

// TotalHits sums the per-inning hits.
func (t *TeamState) TotalHits() int { return sum(t.Hits) }

// TotalErrors sums the per-inning errors.
func (t *TeamState) TotalErrors() int { return sum(t.Errors) }

func (t *TeamState) startInning() {
	t.Runs = append(t.Runs, 0)
	t.Hits = append(t.Hits, 0)
	t.Errors = append(t.Errors, 0)
}

func (t *TeamState) nextBatter() {
	t.BatterIndex = (t.BatterIndex + 1) % roster.LineupSize
}

// repeatBatter steps the pointer back so the following advance lands on
// the same batter again.
func (t *TeamState) repeatBatter() {
	t.BatterIndex = (t.BatterIndex + roster.LineupSize - 1) % roster.LineupSize
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

func bump(xs []int, by int) {
	if len(xs) > 0 {
		xs[len(xs)-1] += by
	}
}

// State is the whole game in flight. It is owned by a single caller and
// passed by pointer through every resolution function.
type State struct {
	Status Status
	Inning int
	Half   Half
	Outs   int
	Bases  bases.Bases

	Away TeamState
	Home TeamState

	// Log is the append-only play-by-play.
	Log []string
}

// Batting returns the side at the plate.
func (s *State) Batting() *TeamState {
	if s.Half == Bottom {
		return &s.Home
	}
	return &s.Away
}

// Fielding returns the side in the field.
func (s *State) Fielding() *TeamState {
	if s.Half == Bottom {
		return &s.Away
	}
	return &s.Home
}

// Score returns away and home runs.
func (s *State) Score() (away, home int) {
	return s.Away.TotalRuns(), s.Home.TotalRuns()
}

// Narration joins the log into one string.
func (s *State) Narration() string {
	return strings.Join(s.Log, "\n")
}

func (s *State) logf(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
}

// addOut records an out, saturating at three.
func (s *State) addOut() {
	if s.Outs < MaxOuts {
		s.Outs++
	}
}

func (s *State) inningOver() bool {
	return s.Outs >= MaxOuts
}

func (s *State) addHit() {
	bump(s.Batting().Hits, 1)
}

func (s *State) addError() {
	bump(s.Fielding().Errors, 1)
}

// score credits every runner in scored to the batting side.
func (s *State) score(scored ...*player.Player) {
	for _, r := range scored {
		if r == nil {
			continue
		}
		bump(s.Batting().Runs, 1)
		s.logf("  %s scores.", r.ShortName())
	}
}

// advance moves all runners n bases, crediting any runs, unless the third
// out has already been made.
func (s *State) advance(n int) {
	if s.inningOver() {
		return
	}
	s.score(s.Bases.Advance(n)...)
}

// forceAdvance pushes forced runners and places p on first.
func (s *State) forceAdvance(p *player.Player) {
	s.score(s.Bases.ForceAdvance())
	s.Bases.Add(bases.First, p)
}

// Snapshot is a compact comparable view of a state, used by determinism
// checks and the watcher.
type Snapshot struct {
	Status    Status
	Inning    int
	Half      Half
	Outs      int
	Occupancy bases.Occupancy
	AwayRuns  int
	HomeRuns  int
	AwayHits  int
	HomeHits  int
	AwayAt    int
	HomeAt    int
	LogLen    int
}

// Snapshot returns the comparable view of s.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Status:    s.Status,
		Inning:    s.Inning,
		Half:      s.Half,
		Outs:      s.Outs,
		Occupancy: s.Bases.Occupancy(),
		AwayRuns:  s.Away.TotalRuns(),
		HomeRuns:  s.Home.TotalRuns(),
		AwayHits:  s.Away.TotalHits(),
		HomeHits:  s.Home.TotalHits(),
		AwayAt:    s.Away.BatterIndex,
		HomeAt:    s.Home.BatterIndex,
		LogLen:    len(s.Log),
	}
}
