// DAY 1: COMBINATION LOCK

package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// solveDay1 follows rotation instructions around a circular dial with
// positions 0-99, starting at 50. Each input line is a direction (L or
// R) followed by a distance, e.g. "L49".
//
// Part 1 counts instructions whose final position is 0. Part 2 counts
// every individual click that passes through 0 during a rotation.
func solveDay1(input string, part2 bool) (string, error) {
	pos := 50
	zeroHits := 0

	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		dir, rest := line[:1], line[1:]
		if dir != "L" && dir != "R" {
			return "", fmt.Errorf("unknown direction in %q", line)
		}
		dist, err := strconv.Atoi(rest)
		if err != nil {
			return "", fmt.Errorf("invalid distance in %q: %w", line, err)
		}

		if part2 {
			// Simulate each click so passes through 0 are seen.
			for i := 0; i < dist; i++ {
				if dir == "L" {
					pos--
					if pos < 0 {
						pos = 99
					}
				} else {
					pos++
					if pos > 99 {
						pos = 0
					}
				}
				if pos == 0 {
					zeroHits++
				}
			}
		} else {
			// Jump straight to the final position. The
			// ((pos % 100) + 100) % 100 form handles negatives.
			if dir == "L" {
				pos -= dist
			} else {
				pos += dist
			}
			pos = ((pos % 100) + 100) % 100
			if pos == 0 {
				zeroHits++
			}
		}
	}

	return fmt.Sprintf("Password: %d", zeroHits), nil
}
