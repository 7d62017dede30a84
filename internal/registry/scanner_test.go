package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestScanFindsDays(t *testing.T) {
	srcDir := t.TempDir()
	inputDir := t.TempDir()

	writeFile(t, srcDir, "day1.go", "// DAY 1: COMBINATION LOCK\npackage puzzle\n")
	writeFile(t, srcDir, "day3.go", "// DAY 3: LOBBY BATTERIES\npackage puzzle\n")
	writeFile(t, srcDir, "day2.go", "package puzzle\n") // no header
	writeFile(t, inputDir, "day3.txt", "987654321\n")

	days, err := Scan(srcDir, inputDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(days) != 3 {
		t.Fatalf("Scan() found %d days, want 3", len(days))
	}

	// Sorted ascending regardless of directory order
	for i, want := range []int{1, 2, 3} {
		if days[i].Number != want {
			t.Errorf("days[%d].Number = %d, want %d", i, days[i].Number, want)
		}
	}

	if days[0].Title != "COMBINATION LOCK" {
		t.Errorf("day 1 title = %q, want %q", days[0].Title, "COMBINATION LOCK")
	}
	if days[1].Title != "Day 2" {
		t.Errorf("day 2 fallback title = %q, want %q", days[1].Title, "Day 2")
	}

	if days[0].HasInput {
		t.Error("day 1 HasInput = true, want false")
	}
	if !days[2].HasInput {
		t.Error("day 3 HasInput = false, want true")
	}
}

func TestScanSkipsNonMatchingFiles(t *testing.T) {
	srcDir := t.TempDir()

	writeFile(t, srcDir, "day4.go", "// DAY 4: PRINTING DEPARTMENT\npackage puzzle\n")
	writeFile(t, srcDir, "day4_test.go", "// DAY 99: NOT A MODULE\npackage puzzle\n")
	writeFile(t, srcDir, "solver.go", "package puzzle\n")
	writeFile(t, srcDir, "doc.go", "package puzzle\n")
	writeFile(t, srcDir, "notes.txt", "day5 ideas\n")

	days, err := Scan(srcDir, t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(days) != 1 {
		t.Fatalf("Scan() found %d days, want 1", len(days))
	}
	if days[0].Number != 4 {
		t.Errorf("days[0].Number = %d, want 4", days[0].Number)
	}
}

func TestScanSkipsOutOfCalendarDays(t *testing.T) {
	srcDir := t.TempDir()

	writeFile(t, srcDir, "day0.go", "// DAY 0: NOT A DAY\npackage puzzle\n")
	writeFile(t, srcDir, "day26.go", "// DAY 26: OFF THE CALENDAR\npackage puzzle\n")
	writeFile(t, srcDir, "day25.go", "// DAY 25: FINALE\npackage puzzle\n")

	days, err := Scan(srcDir, t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(days) != 1 {
		t.Fatalf("Scan() found %d days, want 1", len(days))
	}
	if days[0].Number != 25 {
		t.Errorf("days[0].Number = %d, want 25", days[0].Number)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	days, err := Scan(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(days) != 0 {
		t.Errorf("Scan() of empty dir found %d days, want 0", len(days))
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"), t.TempDir())
	if err == nil {
		t.Error("Scan() of missing dir should return an error")
	}
}

func TestScanIsolatesUnreadableModule(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	srcDir := t.TempDir()
	inputDir := t.TempDir()

	writeFile(t, srcDir, "day1.go", "// DAY 1: COMBINATION LOCK\npackage puzzle\n")
	writeFile(t, srcDir, "day2.go", "// DAY 2: INVALID ID DETECTION\npackage puzzle\n")
	writeFile(t, inputDir, "day2.txt", "11-22\n")

	if err := os.Chmod(filepath.Join(srcDir, "day2.go"), 0000); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}

	days, err := Scan(srcDir, inputDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("Scan() found %d days, want 2 (one bad file must not break the rest)", len(days))
	}

	// The unreadable module gets fallback metadata
	if days[1].Title != "Day 2" {
		t.Errorf("unreadable module title = %q, want %q", days[1].Title, "Day 2")
	}
	if days[1].HasInput {
		t.Error("unreadable module HasInput = true, want false")
	}

	// The readable module is unaffected
	if days[0].Title != "COMBINATION LOCK" {
		t.Errorf("readable module title = %q, want %q", days[0].Title, "COMBINATION LOCK")
	}
}

func TestDefaultInputPath(t *testing.T) {
	got := DefaultInputPath("inputs", 7)
	want := filepath.Join("inputs", "day7.txt")
	if got != want {
		t.Errorf("DefaultInputPath() = %q, want %q", got, want)
	}
}
