package engine

import (
	"fmt"

	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/player"
)

// StealKind selects a steal attempt.
type StealKind int

const (
	StealSecond StealKind = iota
	StealThird
	StealHome
	DoubleSteal
)

func (k StealKind) String() string {
	switch k {
	case StealSecond:
		return "steal of second"
	case StealThird:
		return "steal of third"
	case StealHome:
		return "steal of home"
	case DoubleSteal:
		return "double steal"
	default:
		return "steal"
	}
}

const (
	stealSuccessOver = 3
	stealHomeBonus   = 1
	stealHomeNeed    = 8
)

// stealSpeed is the runner's speed adjustment to a steal roll. A slow
// runner loses 2 on a single steal but only 1 on a double steal.
func stealSpeed(runner *player.Player, double bool) int {
	switch {
	case runner.IsFast():
		return 1
	case runner.IsSlow() && double:
		return -1
	case runner.IsSlow():
		return -2
	default:
		return 0
	}
}

// CanSteal reports whether the bases allow the given attempt.
func CanSteal(b *bases.Bases, kind StealKind) bool {
	switch kind {
	case StealSecond:
		return b.Occupied(bases.First) && !b.Occupied(bases.Second)
	case StealThird:
		return b.Occupied(bases.Second) && !b.Occupied(bases.Third)
	case StealHome:
		return b.Occupied(bases.Third)
	case DoubleSteal:
		return b.Occupied(bases.First) && b.Occupied(bases.Second) && !b.Occupied(bases.Third)
	}
	return false
}

// Steal resolves a steal attempt with one d8. The catcher's defense and the
// runner's speed are added to the roll. A steal is not a plate appearance,
// so the batter stays at the plate.
func (m *Modern) Steal(s *State, d dice.Source, kind StealKind) error {
	if !CanSteal(&s.Bases, kind) {
		return fmt.Errorf("%w: %s with %s", ErrIllegalPlay, kind, s.Bases.Occupancy())
	}
	catcher := m.Fielder(s, player.PositionCatcher)
	roll := m.roll(d, 8, kind.String()) + catcher.Defense()

	switch kind {
	case StealSecond, StealThird:
		from := bases.First
		if kind == StealThird {
			from = bases.Second
		}
		runner := s.Bases.Runner(from)
		if roll+stealSpeed(runner, false) > stealSuccessOver {
			s.Bases.AdvanceFrom(from, 1)
			s.logf("%s steals %s.", runner.ShortName(), from+1)
			return nil
		}
		s.Bases.Remove(from)
		s.logf("%s is caught stealing %s.", runner.ShortName(), from+1)
		s.addOut()

	case StealHome:
		runner := s.Bases.Remove(bases.Third)
		if roll+stealHomeBonus+stealSpeed(runner, false) >= stealHomeNeed {
			s.logf("%s steals home!", runner.ShortName())
			s.score(runner)
			return nil
		}
		s.logf("%s is tagged out at the plate.", runner.ShortName())
		s.addOut()

	case DoubleSteal:
		lead := s.Bases.Runner(bases.Second)
		trail := s.Bases.Runner(bases.First)
		if roll+stealSpeed(lead, true) > stealSuccessOver {
			s.Bases.AdvanceFrom(bases.Second, 1)
			s.Bases.AdvanceFrom(bases.First, 1)
			s.logf("Double steal: %s takes 3rd, %s takes 2nd.", lead.ShortName(), trail.ShortName())
			return nil
		}
		s.Bases.Remove(bases.Second)
		s.Bases.AdvanceFrom(bases.First, 1)
		s.logf("%s is thrown out at 3rd; %s reaches 2nd.", lead.ShortName(), trail.ShortName())
		s.addOut()
	}
	return nil
}
