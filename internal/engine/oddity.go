package engine

import (
	"github.com/vovakirdan/dice-baseball/internal/dice"
)

var oddityNames = map[int]string{
	2:  "Fan interference",
	3:  "A dog runs onto the field",
	4:  "Rain delay",
	5:  "The bat shatters",
	6:  "Lost in the sun",
	7:  "Argument with the umpire",
	8:  "Streaker",
	9:  "Injury scare",
	10: "Wild pitch",
	11: "Hit by pitch",
	12: "Passed ball",
	13: "Ball stuck in the ivy",
	14: "The lights go out",
	15: "Mascot mischief",
	16: "The pitcher slips",
	17: "Ejection threat",
	18: "Hidden ball trick",
	19: "Balk",
	20: "Catcher interference",
}

// Oddity rolls 2d10 on the oddity table. Entries without a rule of their
// own leave the bases alone and bring the same batter back up.
func (m *Modern) Oddity(s *State, d dice.Source, ab AtBat) {
	roll := m.roll(d, 10, "oddity") + m.roll(d, 10, "oddity")
	name, ok := oddityNames[roll]
	if !ok {
		m.invariant("oddity roll out of table", "roll", roll)
		return
	}
	batter := m.Batter(s)
	s.logf("Oddity (%d): %s!", roll, name)

	switch roll {
	case 2:
		if ab.Pitch%2 == 0 {
			s.logf("A home run by %s is overturned by fan interference; batter out.", batter.ShortName())
			s.addOut()
			return
		}
		s.logf("A sure out is dropped; %s bats again.", batter.ShortName())
	case 9:
		check := m.roll(d, 6, "injury") + batter.Toughness()
		if check >= 4 {
			s.logf("%s shakes it off.", batter.ShortName())
		} else {
			s.logf("%s is slow getting up but stays in.", batter.ShortName())
		}
	case 10, 12:
		s.advance(1)
	case 11, 19, 20:
		s.forceAdvance(batter)
		return
	}
	s.Batting().repeatBatter()
}
