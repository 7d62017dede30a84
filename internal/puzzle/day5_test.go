package puzzle

import "testing"

const day5Example = `3-5
10-14
16-20
12-18

1
5
8
11
17
32`

func TestSolveDay5Part1(t *testing.T) {
	got, err := solveDay5(day5Example, false)
	if err != nil {
		t.Fatalf("solveDay5() error = %v", err)
	}
	if got != "3" {
		t.Errorf("solveDay5() = %q, want %q", got, "3")
	}
}

func TestSolveDay5Part2(t *testing.T) {
	// Ranges merge to [3-5] and [10-20]: 3 + 11 = 14 fresh IDs
	got, err := solveDay5(day5Example, true)
	if err != nil {
		t.Fatalf("solveDay5() error = %v", err)
	}
	if got != "14" {
		t.Errorf("solveDay5() = %q, want %q", got, "14")
	}
}

func TestSolveDay5Part2NoIDSection(t *testing.T) {
	// Part 2 never reads the ID list, so a missing separator is fine
	got, err := solveDay5("3-5\n10-14", true)
	if err != nil {
		t.Fatalf("solveDay5() error = %v", err)
	}
	if got != "8" {
		t.Errorf("solveDay5() = %q, want %q", got, "8")
	}
}

func TestSolveDay5Part1MissingSeparator(t *testing.T) {
	if _, err := solveDay5("3-5\n10-14", false); err == nil {
		t.Error("solveDay5() part 1 without blank-line separator should return an error")
	}
}
