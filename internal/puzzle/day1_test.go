package puzzle

import "testing"

func TestSolveDay1Part1(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single wrap to zero", "R50", "Password: 1"},
		{"never lands on zero", "L68\nR30", "Password: 0"},
		{"blank lines ignored", "R50\n\nL100\n", "Password: 2"},
		{"negative wraparound", "L60", "Password: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := solveDay1(tt.input, false)
			if err != nil {
				t.Fatalf("solveDay1() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("solveDay1() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSolveDay1Part2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"passes through zero once", "R50", "Password: 1"},
		{"never reaches zero", "L5", "Password: 0"},
		{"pass through then land", "R60\nL10", "Password: 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := solveDay1(tt.input, true)
			if err != nil {
				t.Fatalf("solveDay1() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("solveDay1() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSolveDay1MalformedInput(t *testing.T) {
	if _, err := solveDay1("X5", false); err == nil {
		t.Error("solveDay1() with unknown direction should return an error")
	}
	if _, err := solveDay1("Labc", false); err == nil {
		t.Error("solveDay1() with non-numeric distance should return an error")
	}
}
