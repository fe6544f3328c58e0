package player

import "strconv"

// DieLadder lists the pitch die sizes in ascending order of pitcher quality.
// Negative entries are placeholder dice for position players on the mound.
var DieLadder = [...]int{-20, -12, -8, -4, 4, 8, 12, 20}

// LadderIndex returns the ladder position nearest to die. Ties go to the
// lower rung.
func LadderIndex(die int) int {
	best := 0
	bestDist := abs(DieLadder[0] - die)
	for i := 1; i < len(DieLadder); i++ {
		if d := abs(DieLadder[i] - die); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// AdjustDie snaps die to the ladder and moves it by steps rungs, clamped to
// the ladder ends.
func AdjustDie(die, steps int) int {
	idx := LadderIndex(die) + steps
	if idx < 0 {
		idx = 0
	}
	if idx >= len(DieLadder) {
		idx = len(DieLadder) - 1
	}
	return DieLadder[idx]
}

// DieLabel formats a signed die as "d8" or "-d12".
func DieLabel(die int) string {
	if die < 0 {
		return "-d" + strconv.Itoa(-die)
	}
	return "d" + strconv.Itoa(die)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

