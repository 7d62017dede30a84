package registry

import (
	"fmt"
	"regexp"
	"strings"
)

// titlePattern matches the header comment each solution module carries:
//
//	// DAY 5: CAFETERIA
//
// The marker is a line comment, "DAY" is case-sensitive (lowercase
// prose mentioning "day" must not match), followed by the day number,
// a colon, a single space and the title running to end of line.
var titlePattern = regexp.MustCompile(`^\s*//\s*DAY\s+\d+: (.*)$`)

// ExtractTitle returns the title declared in the module's header
// comment, trimmed of surrounding whitespace. When no line matches it
// falls back to "Day N" - extraction is best-effort metadata and
// never fails.
func ExtractTitle(src []byte, day int) string {
	for _, line := range strings.Split(string(src), "\n") {
		if m := titlePattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return FallbackTitle(day)
}

// FallbackTitle is the placeholder title used when a module declares
// none (or cannot be read).
func FallbackTitle(day int) string {
	return fmt.Sprintf("Day %d", day)
}
