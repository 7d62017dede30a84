package puzzle

import "testing"

func TestSolveDay2Part1(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single range", "11-22", "Sum of invalid IDs: 33"},
		{"doubled candidates across ranges", "11-22,95-115,998-1012", "Sum of invalid IDs: 1142"},
		{"whitespace and newlines tolerated", "11-22,\n 95-115", "Sum of invalid IDs: 132"},
		{"no invalid ids", "100-108", "Sum of invalid IDs: 0"},
		{"empty input", "", "Sum of invalid IDs: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := solveDay2(tt.input, false)
			if err != nil {
				t.Fatalf("solveDay2() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("solveDay2() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSolveDay2Part2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"repeats of any count", "95-115", "Sum of invalid IDs: 210"}, // 99 + 111
		{"doubled digits", "11-22", "Sum of invalid IDs: 33"},
		{"empty input", "", "Sum of invalid IDs: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := solveDay2(tt.input, true)
			if err != nil {
				t.Fatalf("solveDay2() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("solveDay2() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeIDRanges(t *testing.T) {
	got := mergeIDRanges([]idRange{{11, 22}, {20, 30}, {95, 115}})
	want := []idRange{{11, 30}, {95, 115}}
	if len(got) != len(want) {
		t.Fatalf("mergeIDRanges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mergeIDRanges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Adjacent ranges merge too
	got = mergeIDRanges([]idRange{{10, 14}, {15, 18}})
	if len(got) != 1 || got[0] != (idRange{10, 18}) {
		t.Errorf("mergeIDRanges() adjacent = %v, want [{10 18}]", got)
	}
}

func TestIsRepeatedPattern(t *testing.T) {
	invalid := []uint64{11, 99, 111, 1212, 6464, 123123, 12341234, 1212121212}
	for _, n := range invalid {
		if !isRepeatedPattern(n) {
			t.Errorf("isRepeatedPattern(%d) = false, want true", n)
		}
	}
	valid := []uint64{1, 12, 123, 1234, 1213, 110}
	for _, n := range valid {
		if isRepeatedPattern(n) {
			t.Errorf("isRepeatedPattern(%d) = true, want false", n)
		}
	}
}
