// Package bases implements the base-runner state machine: which of first,
// second and third are occupied, who stands there, and how runners move.
package bases

import "github.com/vovakirdan/dice-baseball/internal/player"

// Base identifies a base. Home is only used as a destination.
type Base int

const (
	None Base = iota
	First
	Second
	Third
	Home
)

// String returns "1st", "2nd", "3rd" or "home".
func (b Base) String() string {
	switch b {
	case First:
		return "1st"
	case Second:
		return "2nd"
	case Third:
		return "3rd"
	case Home:
		return "home"
	default:
		return "-"
	}
}

// Occupancy is one of the eight base configurations.
type Occupancy int

const (
	Empty Occupancy = iota
	OnFirst
	OnSecond
	OnThird
	FirstAndSecond
	FirstAndThird
	SecondAndThird
	Loaded
)

// occupancyByMask maps a bitmask (bit0=1st, bit1=2nd, bit2=3rd) to its variant.
var occupancyByMask = [8]Occupancy{
	Empty, OnFirst, OnSecond, FirstAndSecond,
	OnThird, FirstAndThird, SecondAndThird, Loaded,
}

var occupancyCount = [8]int{0, 1, 1, 1, 2, 2, 2, 3}

var occupancyNames = [8]string{
	"bases empty", "runner on 1st", "runner on 2nd", "runner on 3rd",
	"runners on 1st and 2nd", "runners on 1st and 3rd", "runners on 2nd and 3rd",
	"bases loaded",
}

// Count returns the number of runners on base.
func (o Occupancy) Count() int {
	if o < Empty || o > Loaded {
		return 0
	}
	return occupancyCount[o]
}

// String describes the configuration.
func (o Occupancy) String() string {
	if o < Empty || o > Loaded {
		return "unknown"
	}
	return occupancyNames[o]
}

// Bases holds the runner on each base. A base is occupied exactly when its
// slot is non-nil, so the occupancy variant can never disagree with the
// runner identities.
type Bases struct {
	runners [3]*player.Player
}

func valid(b Base) bool {
	return b >= First && b <= Third
}

// Occupancy returns the current configuration.
func (b *Bases) Occupancy() Occupancy {
	mask := 0
	for i, r := range b.runners {
		if r != nil {
			mask |= 1 << i
		}
	}
	return occupancyByMask[mask]
}

// Count returns how many runners are on base.
func (b *Bases) Count() int {
	return b.Occupancy().Count()
}

// Runner returns the runner on base, or nil.
func (b *Bases) Runner(base Base) *player.Player {
	if !valid(base) {
		return nil
	}
	return b.runners[base-1]
}

// Occupied reports whether base has a runner.
func (b *Bases) Occupied(base Base) bool {
	return b.Runner(base) != nil
}

// ScoringPosition reports whether a runner is on 2nd or 3rd.
func (b *Bases) ScoringPosition() bool {
	return b.Occupied(Second) || b.Occupied(Third)
}

// Lead returns the most advanced occupied base, or None.
func (b *Bases) Lead() Base {
	for base := Third; base >= First; base-- {
		if b.Occupied(base) {
			return base
		}
	}
	return None
}

// Add places p on base. It returns false, leaving the state unchanged, if
// the base is invalid, already occupied, or p is nil.
func (b *Bases) Add(base Base, p *player.Player) bool {
	if !valid(base) || p == nil || b.runners[base-1] != nil {
		return false
	}
	b.runners[base-1] = p
	return true
}

// Remove takes the runner off base and returns it.
func (b *Bases) Remove(base Base) *player.Player {
	if !valid(base) {
		return nil
	}
	r := b.runners[base-1]
	b.runners[base-1] = nil
	return r
}

// Clear empties the bases and returns the runners that were on them, lead
// runner first.
func (b *Bases) Clear() []*player.Player {
	var out []*player.Player
	for base := Third; base >= First; base-- {
		if r := b.Remove(base); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Advance moves every runner up n bases. Runners passing home are removed
// and returned in the order they crossed the plate. n of 3 or more clears
// the bases.
func (b *Bases) Advance(n int) []*player.Player {
	if n <= 0 {
		return nil
	}
	var scored []*player.Player
	for base := Third; base >= First; base-- {
		r := b.Remove(base)
		if r == nil {
			continue
		}
		dest := base + Base(n)
		if dest > Third {
			scored = append(scored, r)
			continue
		}
		b.runners[dest-1] = r
	}
	return scored
}

// AdvanceFrom moves only the runner on base up n bases, pushing no one. It
// returns the runner if they scored. The destination must be empty; a
// blocked move leaves the runner in place.
func (b *Bases) AdvanceFrom(base Base, n int) (scored *player.Player, moved bool) {
	r := b.Runner(base)
	if r == nil || n <= 0 {
		return nil, false
	}
	dest := base + Base(n)
	if dest > Third {
		b.Remove(base)
		return r, true
	}
	if b.Occupied(dest) {
		return nil, false
	}
	b.Remove(base)
	b.runners[dest-1] = r
	return nil, true
}

// ForceAdvance makes room on first for a batter awarded the base. Only
// runners with an occupied base behind them move. A runner forced off third
// scores and is returned.
func (b *Bases) ForceAdvance() *player.Player {
	if !b.Occupied(First) {
		return nil
	}
	var scored *player.Player
	if b.Occupied(Second) {
		if b.Occupied(Third) {
			scored = b.Remove(Third)
		}
		b.runners[Third-1] = b.Remove(Second)
	}
	b.runners[Second-1] = b.Remove(First)
	return scored
}

// Forced reports whether the runner on base would be forced by a batter
// reaching first.
func (b *Bases) Forced(base Base) bool {
	for bb := First; bb <= base; bb++ {
		if !b.Occupied(bb) {
			return false
		}
	}
	return valid(base)
}

// String describes the configuration.
func (b *Bases) String() string {
	return b.Occupancy().String()
}
