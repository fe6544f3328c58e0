package bases

import (
	"testing"

	"github.com/vovakirdan/dice-baseball/internal/player"
)

var (
	alice = &player.Player{FirstName: "Alice", LastName: "One"}
	bob   = &player.Player{FirstName: "Bob", LastName: "Two"}
	cara  = &player.Player{FirstName: "Cara", LastName: "Three"}
	dan   = &player.Player{FirstName: "Dan", LastName: "Batter"}
)

// fromMask builds bases for a bitmask (bit0=1st, bit1=2nd, bit2=3rd).
func fromMask(mask int) Bases {
	var b Bases
	runners := []*player.Player{alice, bob, cara}
	for i := 0; i < 3; i++ {
		if mask&(1<<i) != 0 {
			b.Add(Base(i+1), runners[i])
		}
	}
	return b
}

func populated(b *Bases) int {
	n := 0
	for base := First; base <= Third; base++ {
		if b.Runner(base) != nil {
			n++
		}
	}
	return n
}

func TestOccupancyMatchesSlots(t *testing.T) {
	want := []Occupancy{Empty, OnFirst, OnSecond, FirstAndSecond, OnThird, FirstAndThird, SecondAndThird, Loaded}
	for mask := 0; mask < 8; mask++ {
		b := fromMask(mask)
		if b.Occupancy() != want[mask] {
			t.Errorf("mask %03b: Occupancy() = %v, want %v", mask, b.Occupancy(), want[mask])
		}
		if b.Count() != populated(&b) {
			t.Errorf("mask %03b: Count() = %d, populated = %d", mask, b.Count(), populated(&b))
		}
	}
}

func TestAdvanceConservesRunners(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		for n := 1; n <= 3; n++ {
			b := fromMask(mask)
			before := b.Count()
			scored := b.Advance(n)
			if b.Count()+len(scored) != before {
				t.Errorf("mask %03b advance %d: %d on base + %d scored != %d",
					mask, n, b.Count(), len(scored), before)
			}
			if b.Count() != populated(&b) {
				t.Errorf("mask %03b advance %d: occupancy disagrees with slots", mask, n)
			}
		}
	}
}

func TestAdvanceThreeClearsBases(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		b := fromMask(mask)
		b.Advance(3)
		if b.Occupancy() != Empty {
			t.Errorf("mask %03b: advance 3 left %v", mask, b.Occupancy())
		}
	}
}

func TestAdvanceScoringOrder(t *testing.T) {
	b := fromMask(0b111)
	scored := b.Advance(2)
	if len(scored) != 2 || scored[0] != cara || scored[1] != bob {
		t.Fatalf("scored = %v, want cara then bob", scored)
	}
	if b.Runner(Third) != alice {
		t.Errorf("runner from 1st should be on 3rd, got %v", b.Runner(Third).Name())
	}
}

func TestAddRunnerThenRemoveRestores(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		b := fromMask(mask)
		orig := b
		for base := First; base <= Third; base++ {
			if b.Occupied(base) {
				if b.Add(base, dan) {
					t.Errorf("mask %03b: Add to occupied %v must be a no-op", mask, base)
				}
				continue
			}
			if !b.Add(base, dan) {
				t.Fatalf("mask %03b: Add to empty %v failed", mask, base)
			}
			if got := b.Remove(base); got != dan {
				t.Fatalf("mask %03b: Remove(%v) = %v", mask, base, got)
			}
		}
		if b != orig {
			t.Errorf("mask %03b: runner identities changed", mask)
		}
	}
}

func TestAdvanceBeforeAddKeepsIdentities(t *testing.T) {
	// Runner on first, batter singles: advance first, then place the batter.
	b := fromMask(0b001)
	b.Advance(1)
	if !b.Add(First, dan) {
		t.Fatal("first should be free after the advance")
	}
	if b.Runner(Second) != alice || b.Runner(First) != dan {
		t.Errorf("unexpected runners: 1st=%s 2nd=%s", b.Runner(First).Name(), b.Runner(Second).Name())
	}
}

func TestForceAdvance(t *testing.T) {
	tests := []struct {
		name      string
		mask      int
		want      Occupancy
		wantScore bool
	}{
		{"empty", 0b000, Empty, false},
		{"first", 0b001, OnSecond, false},
		{"second only stays", 0b010, OnSecond, false},
		{"third only stays", 0b100, OnThird, false},
		{"first and second", 0b011, SecondAndThird, false},
		{"first and third", 0b101, SecondAndThird, false},
		{"second and third stay", 0b110, SecondAndThird, false},
		{"loaded", 0b111, SecondAndThird, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := fromMask(tc.mask)
			scored := b.ForceAdvance()
			if b.Occupancy() != tc.want {
				t.Errorf("Occupancy() = %v, want %v", b.Occupancy(), tc.want)
			}
			if (scored != nil) != tc.wantScore {
				t.Errorf("scored = %v, want score %v", scored, tc.wantScore)
			}
			if !b.Add(First, dan) {
				t.Error("first must be open after a force advance")
			}
		})
	}
}

func TestWalkWithBasesLoaded(t *testing.T) {
	b := fromMask(0b111)
	scored := b.ForceAdvance()
	b.Add(First, dan)
	if scored != cara {
		t.Errorf("runner from third should score, got %v", scored)
	}
	if b.Occupancy() != Loaded {
		t.Errorf("bases should stay loaded, got %v", b.Occupancy())
	}
}

func TestAdvanceFrom(t *testing.T) {
	b := fromMask(0b011)
	if _, moved := b.AdvanceFrom(First, 1); moved {
		t.Error("runner on 1st is blocked by the runner on 2nd")
	}
	if _, moved := b.AdvanceFrom(Second, 1); !moved {
		t.Error("runner on 2nd should reach 3rd")
	}
	scored, moved := b.AdvanceFrom(Third, 1)
	if !moved || scored != bob {
		t.Errorf("runner from 3rd should score, got %v moved=%v", scored, moved)
	}
}

func TestLeadAndForced(t *testing.T) {
	b := fromMask(0b101)
	if b.Lead() != Third {
		t.Errorf("Lead() = %v, want 3rd", b.Lead())
	}
	if !b.Forced(First) || b.Forced(Third) {
		t.Error("only the runner on 1st is forced with 1st and 3rd occupied")
	}
	var empty Bases
	if empty.Lead() != None {
		t.Error("empty bases have no lead runner")
	}
}
