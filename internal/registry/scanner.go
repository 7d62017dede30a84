package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"adventcode/internal/logging"
)

// MaxDay is the highest day number considered by the scanner, matching
// the puzzle calendar.
const MaxDay = 25

// dayFilePattern matches solution module filenames like "day5.go".
// Test files ("day5_test.go") deliberately do not match.
var dayFilePattern = regexp.MustCompile(`^day(\d+)\.go$`)

// Day describes one discovered solution module. It is discovery
// metadata only; whether the day can actually be dispatched is the
// puzzle package's concern.
type Day struct {
	// Number is the day number, derived from the filename
	Number int
	// Title is extracted from the module's header comment, or "Day N"
	// when no header is present
	Title string
	// HasInput reports whether day<N>.txt exists in the input directory
	HasInput bool
}

// Scan enumerates day<N>.go modules in sourceDir and returns one
// descriptor per day, sorted ascending by day number. Filenames with
// day numbers outside 1..MaxDay are skipped. A module that exists but
// cannot be read still yields a descriptor (fallback title, no input)
// so that one bad file does not break discovery of the others.
func Scan(sourceDir, inputDir string) ([]Day, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", sourceDir, err)
	}

	days := []Day{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		m := dayFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > MaxDay {
			logging.Debug("Skipping out-of-calendar module file",
				zap.String("file", entry.Name()),
			)
			continue
		}

		day := Day{Number: n, Title: FallbackTitle(n)}

		src, err := os.ReadFile(filepath.Join(sourceDir, entry.Name()))
		if err != nil {
			logging.Warn("Unreadable solution module",
				zap.String("file", entry.Name()),
				zap.Error(err),
			)
			days = append(days, day)
			continue
		}

		day.Title = ExtractTitle(src, n)
		day.HasInput = fileExists(DefaultInputPath(inputDir, n))
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Number < days[j].Number })

	logging.Debug("Scan complete",
		zap.String("source_dir", sourceDir),
		zap.Int("days_found", len(days)),
	)

	return days, nil
}

// DefaultInputPath returns the conventional input file path for a day.
func DefaultInputPath(inputDir string, day int) string {
	return filepath.Join(inputDir, fmt.Sprintf("day%d.txt", day))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
