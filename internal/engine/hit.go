package engine

import (
	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/player"
)

// hitResult is one row of the hit table.
type hitResult struct {
	// bases is 1 for a single up to 4 for a home run.
	bases int
	// advance is how far runners already on base move.
	advance int
	// fielder is the defender who gets a defense roll, if any.
	fielder player.Position
}

var hitNames = [...]string{"", "singles", "doubles", "triples", "homers"}

// hitTable reads the 1..20 hit table.
func hitTable(roll int, batter *player.Player) hitResult {
	switch {
	case roll <= 2:
		switch {
		case batter.IsFast() && roll == 1:
			return hitResult{bases: 2, advance: 2}
		case batter.IsFast():
			return hitResult{bases: 3, advance: 3}
		case batter.IsContactHitter():
			return hitResult{bases: 2, advance: 2}
		default:
			return hitResult{bases: 1, advance: 1}
		}
	case roll <= 6:
		// 3..6 map onto 1B, 2B, 3B, SS.
		return hitResult{bases: 1, advance: 1, fielder: player.Position(roll)}
	case roll <= 9:
		return hitResult{bases: 1, advance: 1}
	case roll <= 14:
		return hitResult{bases: 1, advance: 2}
	case roll <= 17:
		// 15..17 map onto LF, CF, RF.
		return hitResult{bases: 2, advance: 2, fielder: player.Position(roll - 8)}
	case roll == 18:
		return hitResult{bases: 2, advance: 3}
	default:
		return hitResult{bases: 4, advance: 3}
	}
}

// Defense roll bands.
const (
	defenseErrorMax     = 2
	defenseStandsMax    = 9
	defenseDowngradeMax = 11
)

// ResolveHit applies a hit-table roll for batter. Rolls below 1 count as 1.
// Rows with a fielder draw one d20 defense roll after the hit roll.
func (m *Modern) ResolveHit(s *State, d dice.Source, roll int, batter *player.Player) {
	if roll < 1 {
		roll = 1
	}
	h := hitTable(roll, batter)
	if h.fielder == player.PositionNone {
		m.creditHit(s, batter, h)
		return
	}

	fielder := m.Fielder(s, h.fielder)
	def := m.roll(d, 20, "defense") + fielder.Defense()
	switch {
	case def <= defenseErrorMax:
		s.logf("%s reaches on an error by %s (%s).", batter.ShortName(), fielder.ShortName(), h.fielder)
		s.addError()
		s.advance(h.advance + 1)
		m.place(s, bases.Base(h.bases+1), batter)
	case def <= defenseStandsMax:
		m.creditHit(s, batter, h)
	case def <= defenseDowngradeMax:
		if h.bases >= 2 {
			s.logf("%s (%s) holds it to a single.", fielder.ShortName(), h.fielder)
			m.creditHit(s, batter, hitResult{bases: 1, advance: 2})
			return
		}
		s.logf("%s (%s) throws out %s; the runners move up.", fielder.ShortName(), h.fielder, batter.ShortName())
		s.addOut()
		s.advance(1)
	default:
		s.logf("%s (%s) robs %s.", fielder.ShortName(), h.fielder, batter.ShortName())
		s.addOut()
	}
}

func (m *Modern) creditHit(s *State, batter *player.Player, h hitResult) {
	s.addHit()
	s.logf("%s %s.", batter.ShortName(), hitNames[h.bases])
	s.advance(h.advance)
	if h.bases >= 4 {
		s.score(batter)
		return
	}
	m.place(s, bases.Base(h.bases), batter)
}

// place puts p on base, logging if the base is somehow taken.
func (m *Modern) place(s *State, base bases.Base, p *player.Player) {
	if base > bases.Third {
		s.score(p)
		return
	}
	if !s.Bases.Add(base, p) {
		m.invariant("base already occupied", "base", base, "runner", p.Name(), "occupant", s.Bases.Runner(base).Name())
	}
}
