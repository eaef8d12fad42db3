package back_test

import (
	"roster/internal/back"
	"testing"
)

func TestComputeLevel(t *testing.T) {
	cases := []struct {
		experience            int
		level, untilNextLevel int
	}{
		{0, 0, 100},
		{1, 0, 99},
		{99, 0, 1},
		{100, 1, 200},
		{299, 1, 1},
		{300, 2, 300},
		{5000, 9, 500},
		{50 * 446 * 447, 446, 447 * 100},
		{back.MaxExperience, 446, 12800},
	}

	for k, v := range cases {
		level, until := back.ComputeLevel(v.experience)
		if level != v.level || until != v.untilNextLevel {
			t.Errorf(
				"case #%d: ComputeLevel(%d): expected (%d, %d) got (%d, %d)",
				k, v.experience, v.level, v.untilNextLevel, level, until,
			)
		}
	}
}

func TestComputeLevelIsMonotonic(t *testing.T) {
	prevLevel, _ := back.ComputeLevel(0)
	for xp := 1; xp <= back.MaxExperience; xp++ {
		level, until := back.ComputeLevel(xp)
		if level < prevLevel {
			t.Fatalf("level decreased from %d to %d at %d experience", prevLevel, level, xp)
		}
		if until <= 0 {
			t.Fatalf("expected a positive untilNextLevel at %d experience, got %d", xp, until)
		}
		prevLevel = level
	}
}
