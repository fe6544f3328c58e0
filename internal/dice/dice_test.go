package dice

import "testing"

func TestRollerDeterminism(t *testing.T) {
	r1 := NewRoller(12345)
	r2 := NewRoller(12345)

	for i := 0; i < 200; i++ {
		a, b := r1.Roll(100), r2.Roll(100)
		if a != b {
			t.Fatalf("roll %d mismatch: %d vs %d", i, a, b)
		}
		if a < 1 || a > 100 {
			t.Fatalf("roll %d out of range: %d", i, a)
		}
	}
}

func TestRollerZeroSeedIsDeterministic(t *testing.T) {
	for _, seed := range []int64{0, -1} {
		r1, r2 := NewRoller(seed), NewRoller(seed)
		if r1.Seed() != seed {
			t.Errorf("Seed() = %d, want %d", r1.Seed(), seed)
		}
		for i := 0; i < 50; i++ {
			if a, b := r1.Roll(20), r2.Roll(20); a != b {
				t.Fatalf("seed %d roll %d mismatch: %d vs %d", seed, i, a, b)
			}
		}
	}
}

func TestRollerClampsSides(t *testing.T) {
	r := NewRoller(1)
	for i := 0; i < 10; i++ {
		if got := r.Roll(0); got != 1 {
			t.Fatalf("Roll(0) = %d, want 1", got)
		}
	}
}

func TestRollSigned(t *testing.T) {
	tests := []struct {
		name   string
		die    int
		script int
		want   int
	}{
		{"positive die", 8, 5, 5},
		{"negative die", -12, 7, -7},
		{"zero die", 0, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := NewScripted(nil, tc.script)
			if got := RollSigned(src, tc.die); got != tc.want {
				t.Errorf("RollSigned(%d) = %d, want %d", tc.die, got, tc.want)
			}
		})
	}
}

func TestScriptedFallsBack(t *testing.T) {
	s := NewScripted(NewRoller(7), 3, 99)

	if got := s.Roll(6); got != 3 {
		t.Fatalf("first roll = %d, want 3", got)
	}
	if got := s.Roll(6); got != 99 {
		t.Fatalf("second roll = %d, want scripted 99 unclamped", got)
	}
	if s.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", s.Remaining())
	}
	for i := 0; i < 20; i++ {
		if got := s.Roll(6); got < 1 || got > 6 {
			t.Fatalf("fallback roll out of range: %d", got)
		}
	}
}

func TestRecorderReplays(t *testing.T) {
	rec := NewRecorder(NewRoller(42))
	var want []int
	for i := 0; i < 10; i++ {
		want = append(want, rec.Roll(20))
	}

	replay := NewScripted(nil, rec.Draws()...)
	for i, w := range want {
		if got := replay.Roll(20); got != w {
			t.Fatalf("replay %d = %d, want %d", i, got, w)
		}
	}
}
