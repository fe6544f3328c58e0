package engine

import (
	"github.com/vovakirdan/dice-baseball/internal/bases"
)

// Manager picks plays for the batting side. It never draws dice, so a game
// played by a Manager stays reproducible from its seed.
type Manager struct {
	// Aggression from 0 (always swing) to 1 (run whenever it makes sense).
	Aggression float64
}

// weakHitter is the batter target below which a bunt looks attractive.
const weakHitter = 25

// Choose returns the play for the current state.
func (mg Manager) Choose(m *Modern, s *State) Play {
	a := mg.Aggression
	if a <= 0 {
		return PlaySwing
	}
	batter := m.Batter(s)
	b := &s.Bases

	switch b.Occupancy() {
	case bases.OnFirst:
		runner := b.Runner(bases.First)
		switch {
		case runner.IsFast() && s.Outs < 2 && a >= 0.3:
			return PlayStealSecond
		case batter.IsContactHitter() && s.Outs < 2 && a >= 0.5:
			return PlayHitAndRun
		case s.Outs == 0 && batter.BatterTarget < weakHitter && a >= 0.2:
			return PlayBunt
		}
	case bases.FirstAndSecond:
		switch {
		case b.Runner(bases.Second).IsFast() && s.Outs < 2 && a >= 0.7:
			return PlayDoubleSteal
		case s.Outs == 0 && batter.BatterTarget < weakHitter && a >= 0.2:
			return PlayBunt
		}
	case bases.OnSecond:
		if b.Runner(bases.Second).IsFast() && s.Outs == 1 && a >= 0.6 {
			return PlayStealThird
		}
	case bases.OnThird:
		if b.Runner(bases.Third).IsFast() && s.Outs == 2 && a >= 0.9 {
			return PlayStealHome
		}
	}
	return PlaySwing
}
