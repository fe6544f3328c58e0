package engine

import (
	"github.com/vovakirdan/dice-baseball/internal/bases"
	"github.com/vovakirdan/dice-baseball/internal/dice"
	"github.com/vovakirdan/dice-baseball/internal/player"
)

// fatigueInnings is how many innings a pitcher without ST+ throws before
// the pitch die starts to drop.
const fatigueInnings = 6

// pressurePenalty is taken off a free swinger's targets with a runner in
// scoring position.
const pressurePenalty = 3

// possibleErrorMax is the highest defense roll that turns a possible error
// into an error.
const possibleErrorMax = 5

// AtBat records the dice and targets of one swing.
type AtBat struct {
	PitchDie     int
	Pitch        int
	Swing        int
	Combined     int
	BatTarget    int
	OnBaseTarget int
	Outcome      Outcome
}

// Fielder is the position the combined roll sends the ball to.
func (ab AtBat) Fielder() player.Position {
	return fielderFromRoll(ab.Combined)
}

// fielderFromRoll maps the last digit of a roll, clamped to 1..9, onto a
// fielding position.
func fielderFromRoll(roll int) player.Position {
	if roll < 0 {
		roll = -roll
	}
	digit := roll % 10
	if digit < 1 {
		digit = 1
	}
	return player.Position(digit)
}

// airGroup reports whether pos is one of P, 1B, LF, CF, RF. The rest of the
// diamond (C, 2B, 3B, SS) turns force plays.
func airGroup(pos player.Position) bool {
	switch pos {
	case player.PositionPitcher, player.PositionFirstBase,
		player.PositionLeftField, player.PositionCenterField, player.PositionRightField:
		return true
	}
	return false
}

// PitchDie returns the die pitcher throws at batter in the current state.
func (m *Modern) PitchDie(s *State, pitcher, batter *player.Player) int {
	if pitcher == nil {
		return 0
	}
	die := pitcher.PitchDie
	steps := 0
	if extra := s.Fielding().InningsPitched - (fatigueInnings + pitcher.Stamina()); extra > 0 {
		steps -= extra
	}
	if pitcher.GroundballInducer() && s.Bases.Occupancy() == bases.Loaded {
		steps++
	}
	if batter != nil && player.SameSide(pitcher.Hand, batter.Hand) {
		steps++
	}
	if steps == 0 || die == 0 {
		return die
	}
	return player.AdjustDie(die, steps)
}

// Targets returns the batter's hit and walk targets after trait effects.
func (m *Modern) Targets(s *State, batter, pitcher *player.Player) (bt, obt int) {
	if batter == nil {
		return 0, 0
	}
	bt, obt = batter.BatterTarget, batter.OnBaseTarget
	if pw := batter.Power(); pw != 0 {
		bt += pw
		obt += pw
	}
	obt -= 2 * pitcher.Control()
	if k := pitcher.Strikeout(); k > 0 {
		bt -= k
		obt -= k
	}
	if batter.IsFreeSwinger() && s.Bases.ScoringPosition() {
		bt -= pressurePenalty
		obt -= pressurePenalty
	}
	return bt, obt
}

// swing draws the pitch die then the d100 and classifies the result. bonus
// is added straight to both targets.
func (m *Modern) swing(s *State, d dice.Source, batter, pitcher *player.Player, bonus int) AtBat {
	ab := AtBat{PitchDie: m.PitchDie(s, pitcher, batter)}
	ab.Pitch = dice.RollSigned(d, ab.PitchDie)
	m.logger.Debug("roll", "die", player.DieLabel(ab.PitchDie), "value", ab.Pitch, "for", "pitch")
	ab.Swing = m.roll(d, 100, "swing")
	ab.Combined = ab.Pitch + ab.Swing

	bt, obt := m.Targets(s, batter, pitcher)
	ab.BatTarget, ab.OnBaseTarget = bt+bonus, obt+bonus
	ab.Outcome = Classify(ab.BatTarget, ab.OnBaseTarget, ab.Combined, m.Oddities)

	m.logger.Debug("plate appearance",
		"batter", batter.Name(), "pitcher", pitcher.Name(),
		"pitch", ab.Pitch, "swing", ab.Swing, "bt", ab.BatTarget, "obt", ab.OnBaseTarget,
		"outcome", ab.Outcome)
	return ab
}

// PlateAppearance resolves one batter against the current pitcher and
// moves the batting order along.
func (m *Modern) PlateAppearance(s *State, d dice.Source) AtBat {
	batter := m.Batter(s)
	pitcher := s.Fielding().Pitcher
	ab := m.swing(s, d, batter, pitcher, 0)
	s.logf("%s vs %s: %s%+d, d100 %d = %d.", batter.ShortName(), pitcher.ShortName(),
		player.DieLabel(ab.PitchDie), ab.Pitch, ab.Swing, ab.Combined)

	switch ab.Outcome {
	case OutcomeOddity:
		m.Oddity(s, d, ab)
	case OutcomeCriticalHit:
		s.logf("Critical hit!")
		roll := CritHit(m.roll(d, 20, "crit hit")) + batter.Power()
		m.ResolveHit(s, d, roll, batter)
	case OutcomeHit:
		roll := m.roll(d, 20, "hit") + batter.Power()
		m.ResolveHit(s, d, roll, batter)
	case OutcomeWalk:
		s.logf("%s walks.", batter.ShortName())
		s.forceAdvance(batter)
	case OutcomePossibleError:
		m.possibleError(s, d, ab, batter)
	case OutcomeProductiveOut1:
		m.productiveOut(s, ab, batter, false)
	case OutcomeProductiveOut2:
		m.productiveOut(s, ab, batter, true)
	case OutcomeOut:
		m.out(s, ab, batter, pitcher)
	case OutcomeMegaOut:
		m.megaOut(s, batter)
	default:
		m.invariant("unknown outcome", "outcome", int(ab.Outcome))
	}

	s.Batting().nextBatter()
	return ab
}

func (m *Modern) possibleError(s *State, d dice.Source, ab AtBat, batter *player.Player) {
	pos := ab.Fielder()
	f := m.Fielder(s, pos)
	def := m.roll(d, 20, "defense") + f.Defense()
	if def <= possibleErrorMax {
		s.logf("%s boots it (%s); %s is safe at first.", f.ShortName(), pos, batter.ShortName())
		s.addError()
		s.advance(1)
		m.place(s, bases.First, batter)
		return
	}
	s.logf("%s is retired by %s (%s).", batter.ShortName(), f.ShortName(), pos)
	s.addOut()
}

// productiveOut handles both productive-out bands. Balls to the air group
// let runners on 2nd and 3rd tag up; balls to the force group move
// everyone up on the first band and turn force plays on the second.
func (m *Modern) productiveOut(s *State, ab AtBat, batter *player.Player, second bool) {
	pos := ab.Fielder()
	if airGroup(pos) {
		s.logf("%s flies out to %s.", batter.ShortName(), pos)
		s.addOut()
		m.tagUp(s)
		return
	}

	if s.Fielding().Pitcher.GroundballInducer() && pos == player.PositionCatcher {
		m.doublePlay(s, batter, pos)
		return
	}

	if !second {
		s.logf("%s grounds out to %s.", batter.ShortName(), pos)
		s.addOut()
		s.advance(1)
		return
	}

	switch {
	case s.Bases.Occupied(bases.First) && s.Outs < MaxOuts-1:
		m.doublePlay(s, batter, pos)
	case s.Bases.Occupied(bases.First):
		r := s.Bases.Remove(bases.First)
		s.logf("%s grounds to %s; %s forced at second.", batter.ShortName(), pos, r.ShortName())
		s.addOut()
	default:
		s.logf("%s grounds out to %s; runners hold.", batter.ShortName(), pos)
		s.addOut()
	}
}

// tagUp moves the runners on 3rd and 2nd one base if the inning is alive.
func (m *Modern) tagUp(s *State) {
	if s.inningOver() {
		return
	}
	if r, ok := s.Bases.AdvanceFrom(bases.Third, 1); ok {
		s.score(r)
	}
	s.Bases.AdvanceFrom(bases.Second, 1)
}

// doublePlay retires the batter and the lead forced runner, or the lead
// runner when nobody is forced. Remaining runners move up one base if the
// inning survives.
func (m *Modern) doublePlay(s *State, batter *player.Player, pos player.Position) {
	lead := bases.First
	if !s.Bases.Occupied(bases.First) {
		lead = s.Bases.Lead()
	}
	if lead == bases.None {
		s.logf("%s grounds out to %s.", batter.ShortName(), pos)
		s.addOut()
		return
	}
	r := s.Bases.Remove(lead)
	s.logf("%s grounds into a double play (%s); %s and %s are out.", batter.ShortName(), pos, r.ShortName(), batter.ShortName())
	s.addOut()
	s.addOut()
	s.advance(1)
}

func (m *Modern) out(s *State, ab AtBat, batter, pitcher *player.Player) {
	switch {
	case pitcher.Strikeout() > 0:
		s.logf("%s strikes out %s.", pitcher.ShortName(), batter.ShortName())
	case airGroup(ab.Fielder()):
		s.logf("%s flies out to %s.", batter.ShortName(), ab.Fielder())
	default:
		s.logf("%s grounds out to %s.", batter.ShortName(), ab.Fielder())
	}
	s.addOut()
}

func (m *Modern) megaOut(s *State, batter *player.Player) {
	switch {
	case s.Outs == 0 && s.Bases.Count() >= 2:
		s.logf("%s hits into a triple play!", batter.ShortName())
		s.Bases.Clear()
		s.Outs = MaxOuts
	case s.Outs < MaxOuts-1 && s.Bases.Occupied(bases.First):
		r := s.Bases.Remove(bases.First)
		s.logf("%s lines into a double play; %s doubled off first.", batter.ShortName(), r.ShortName())
		s.addOut()
		s.addOut()
	default:
		s.logf("%s is out.", batter.ShortName())
		s.addOut()
	}
}
