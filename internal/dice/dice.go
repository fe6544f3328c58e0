// Package dice provides the randomness abstraction used by the game engine.
// Every draw in a plate appearance goes through a Source so that a scripted
// queue can replay a play exactly.
package dice

import (
	"math/rand"
	"time"
)

// TimeSeed returns a seed taken from the clock, for games that were not
// given one.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Source supplies die rolls.
type Source interface {
	// Roll returns an integer in [1, sides]. Sides below 1 are treated as 1.
	Roll(sides int) int
}

// Roller is a Source backed by a seeded math/rand generator.
type Roller struct {
	rng  *rand.Rand
	seed int64
}

// NewRoller creates a Roller. Every seed, zero included, is used as given so
// a recorded seed always replays the same game.
func NewRoller(seed int64) *Roller {
	return &Roller{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (r *Roller) Seed() int64 {
	return r.seed
}

// Roll returns a value in [1, sides].
func (r *Roller) Roll(sides int) int {
	if sides < 1 {
		sides = 1
	}
	return r.rng.Intn(sides) + 1
}

// RollSigned rolls a signed die. A positive die d rolls 1..d, a negative die
// rolls -1..-|d|, and zero always yields zero.
func RollSigned(src Source, die int) int {
	switch {
	case die > 0:
		return src.Roll(die)
	case die < 0:
		return -src.Roll(-die)
	default:
		return 0
	}
}
