package engine

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/dice-baseball/internal/dice"
)

// Play is what the batting side tries on a step.
type Play int

const (
	PlaySwing Play = iota
	PlayStealSecond
	PlayStealThird
	PlayStealHome
	PlayDoubleSteal
	PlayBunt
	PlayHitAndRun
)

var playNames = map[Play]string{
	PlaySwing:       "swing away",
	PlayStealSecond: "steal second",
	PlayStealThird:  "steal third",
	PlayStealHome:   "steal home",
	PlayDoubleSteal: "double steal",
	PlayBunt:        "bunt",
	PlayHitAndRun:   "hit and run",
}

func (p Play) String() string {
	if name, ok := playNames[p]; ok {
		return name
	}
	return "play " + strconv.Itoa(int(p))
}

var stealForPlay = map[Play]StealKind{
	PlayStealSecond: StealSecond,
	PlayStealThird:  StealThird,
	PlayStealHome:   StealHome,
	PlayDoubleSteal: DoubleSteal,
}

// maxSteps bounds PlayGame. A real game is a few hundred steps.
const maxSteps = 20000

// Step advances the game by one play. The first step starts the game.
// After the play the half inning ends on the third out, and the game ends
// when the rules say so.
func (m *Modern) Step(s *State, d dice.Source, play Play) error {
	switch s.Status {
	case StatusOver:
		return ErrGameOver
	case StatusNotStarted:
		m.start(s)
	}

	var err error
	switch play {
	case PlaySwing:
		m.PlateAppearance(s, d)
	case PlayBunt:
		m.Bunt(s, d)
	case PlayHitAndRun:
		err = m.HitAndRun(s, d)
	default:
		kind, ok := stealForPlay[play]
		if !ok {
			return fmt.Errorf("%w: %v", ErrIllegalPlay, play)
		}
		err = m.Steal(s, d, kind)
	}
	if err != nil {
		return err
	}

	m.afterPlay(s)
	return nil
}

func (m *Modern) start(s *State) {
	s.Status = StatusOngoing
	s.Inning = 1
	s.Half = Top
	s.Away.startInning()
	s.Home.startInning()
	s.logf("%s at %s, %s.", m.Away.FullName(), m.Home.FullName(), m.Ballpark.Name)
	m.announceHalf(s)
}

func (m *Modern) announceHalf(s *State) {
	s.logf("--- %s of the %s: %s batting ---", halfTitle(s.Half), ordinal(s.Inning), m.BattingTeam(s).Name)
}

func (m *Modern) afterPlay(s *State) {
	away, home := s.Score()
	if m.WalkOff && s.Half == Bottom && s.Inning >= walkOffInning && home > away {
		m.finish(s)
		return
	}
	if s.inningOver() {
		m.endHalf(s)
	}
}

// endHalf resets outs and bases and hands the bat to the other side. The
// inning number only moves at the bottom-to-top boundary. A game in extra
// innings with unequal scores ends at either boundary.
func (m *Modern) endHalf(s *State) {
	s.logf("  Side retired.")
	s.Fielding().InningsPitched++
	s.Outs = 0
	s.Bases.Clear()

	away, home := s.Score()
	if s.Half == Top {
		s.Half = Bottom
		if s.Inning >= m.ExtraInningsFrom && away != home {
			m.finish(s)
			return
		}
		if m.WalkOff && s.Inning >= walkOffInning && home > away {
			m.finish(s)
			return
		}
		m.announceHalf(s)
		return
	}

	s.Half = Top
	s.Inning++
	if s.Inning >= m.ExtraInningsFrom && away != home {
		m.finish(s)
		return
	}
	s.Away.startInning()
	s.Home.startInning()
	m.announceHalf(s)
}

func (m *Modern) finish(s *State) {
	s.Status = StatusOver
	away, home := s.Score()
	s.logf("Final: %s %d, %s %d.", m.Away.Name, away, m.Home.Name, home)
}

// PlayGame plays a whole game from a fresh state, letting mgr pick the
// plays. A play the bases do not allow falls back to swinging away.
func (m *Modern) PlayGame(d dice.Source, mgr Manager) (*State, error) {
	s := m.NewState()
	for i := 0; i < maxSteps; i++ {
		if s.Status == StatusOver {
			return s, nil
		}
		play := mgr.Choose(m, s)
		err := m.Step(s, d, play)
		if errors.Is(err, ErrIllegalPlay) {
			m.logger.Warn("manager chose an illegal play", "play", play, "bases", s.Bases.Occupancy())
			err = m.Step(s, d, PlaySwing)
		}
		if err != nil {
			return s, err
		}
	}
	if s.Status == StatusOver {
		return s, nil
	}
	return s, fmt.Errorf("engine: game still running after %d steps", maxSteps)
}

func halfTitle(h Half) string {
	if h == Bottom {
		return "Bottom"
	}
	return "Top"
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
