package engine

import (
	"fmt"

	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/player"
)

// HitAndRunResult is what a hit-and-run swing collapses to.
type HitAndRunResult int

const (
	HitAndRunHit HitAndRunResult = iota
	HitAndRunPopFly
	HitAndRunGroundball
)

func (r HitAndRunResult) String() string {
	switch r {
	case HitAndRunHit:
		return "hit"
	case HitAndRunPopFly:
		return "pop fly or strikeout"
	default:
		return "groundball"
	}
}

const (
	hitAndRunBonus = 5
	// hitAndRunErrorMax is two below the regular possible-error threshold.
	hitAndRunErrorMax = possibleErrorMax - 2
)

// collapseByDigit splits non-hits by the fielder the roll points to.
func collapseByDigit(combined int) HitAndRunResult {
	if airGroup(fielderFromRoll(combined)) {
		return HitAndRunPopFly
	}
	return HitAndRunGroundball
}

// HitAndRun sends the runner from first while the batter swings. Dice are
// drawn pitch, swing, steal, then a defense roll on a possible error.
func (m *Modern) HitAndRun(s *State, d dice.Source) error {
	if s.Bases.Occupancy() != bases.OnFirst {
		return fmt.Errorf("%w: hit and run with %s", ErrIllegalPlay, s.Bases.Occupancy())
	}
	batter := m.Batter(s)
	pitcher := s.Fielding().Pitcher
	runner := s.Bases.Runner(bases.First)

	ab := m.swing(s, d, batter, pitcher, hitAndRunBonus*batter.Contact())
	catcher := m.Fielder(s, player.PositionCatcher)
	stolen := m.roll(d, 8, "hit and run steal")+catcher.Defense()+stealSpeed(runner, false) > stealSuccessOver
	s.logf("Hit and run: %s runs, %s swings (%d).", runner.ShortName(), batter.ShortName(), ab.Combined)

	result := collapseByDigit(ab.Combined)
	credited := false
	switch ab.Outcome {
	case OutcomeCriticalHit, OutcomeHit:
		result, credited = HitAndRunHit, true
	case OutcomeWalk:
		result = HitAndRunHit
	case OutcomePossibleError:
		pos := ab.Fielder()
		f := m.Fielder(s, pos)
		if m.roll(d, 20, "defense")+f.Defense() <= hitAndRunErrorMax {
			s.logf("%s (%s) can't handle it.", f.ShortName(), pos)
			s.addError()
			result = HitAndRunHit
		}
	}

	s.Bases.Remove(bases.First)
	switch result {
	case HitAndRunHit:
		if credited {
			s.addHit()
		}
		if stolen {
			m.place(s, bases.Third, runner)
			s.logf("%s is on, %s goes first to third.", batter.ShortName(), runner.ShortName())
		} else {
			m.place(s, bases.Second, runner)
			s.logf("%s is on, %s to second.", batter.ShortName(), runner.ShortName())
		}
		m.place(s, bases.First, batter)
	case HitAndRunPopFly:
		s.addOut()
		if stolen {
			m.place(s, bases.First, runner)
			s.logf("%s: %s is out, %s gets back to first.", result, batter.ShortName(), runner.ShortName())
			break
		}
		s.addOut()
		s.logf("%s: double play, %s and %s are out.", result, batter.ShortName(), runner.ShortName())
	default:
		s.addOut()
		if stolen {
			m.place(s, bases.Second, runner)
			s.logf("%s: %s is out, %s makes second.", result, batter.ShortName(), runner.ShortName())
			break
		}
		s.addOut()
		s.logf("%s: double play, %s and %s are out.", result, batter.ShortName(), runner.ShortName())
	}

	s.Batting().nextBatter()
	return nil
}
