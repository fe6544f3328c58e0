package engine

import (
	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/player"
)

// buntHitRoll is the hit-table row a fast bunter reaches: a single with a
// defense roll by the third baseman.
const buntHitRoll = 5

// Bunt resolves a bunt by the current batter with one d6 plus the batter's
// contact modifier. It counts as a plate appearance.
func (m *Modern) Bunt(s *State, d dice.Source) {
	batter := m.Batter(s)
	roll := m.roll(d, 6, "bunt") + batter.Contact()
	s.logf("%s squares to bunt (%d).", batter.ShortName(), roll)

	switch {
	case s.Bases.Count() == 0:
		if roll >= 6 && batter.IsFast() {
			m.ResolveHit(s, d, buntHitRoll, batter)
			break
		}
		s.logf("%s is thrown out at first.", batter.ShortName())
		s.addOut()
	case roll <= 2:
		m.leadRunnerOut(s, batter)
	case roll == 3:
		if s.Bases.Occupancy() == bases.OnThird {
			m.leadRunnerOut(s, batter)
			break
		}
		m.sacrifice(s, batter)
	case roll <= 5:
		m.sacrifice(s, batter)
	default:
		if batter.IsFast() {
			m.ResolveHit(s, d, buntHitRoll, batter)
			break
		}
		m.sacrifice(s, batter)
	}

	s.Batting().nextBatter()
}

// leadRunnerOut cuts down the most advanced runner and leaves the batter
// safe at first.
func (m *Modern) leadRunnerOut(s *State, batter *player.Player) {
	lead := s.Bases.Lead()
	r := s.Bases.Remove(lead)
	s.logf("%s is cut down at %s; %s safe at first.", r.ShortName(), lead+1, batter.ShortName())
	s.addOut()
	s.forceAdvance(batter)
}

// sacrifice retires the batter and moves the lead runner up one base.
// Trailing runners hold.
func (m *Modern) sacrifice(s *State, batter *player.Player) {
	lead := s.Bases.Lead()
	s.logf("%s sacrifices; %s moves up.", batter.ShortName(), s.Bases.Runner(lead).ShortName())
	s.addOut()
	if s.inningOver() {
		return
	}
	scored, _ := s.Bases.AdvanceFrom(lead, 1)
	s.score(scored)
}
