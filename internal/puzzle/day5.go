// DAY 5: CAFETERIA

package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// solveDay5 works on the cafeteria's inventory: a list of fresh
// ingredient ID ranges, a blank line, then a list of available
// ingredient IDs.
//
// Part 1 counts available IDs that fall inside any fresh range.
// Part 2 ignores the ID list and counts every ID the ranges cover,
// merging overlapping and adjacent ranges so nothing is
// double-counted.
func solveDay5(input string, part2 bool) (string, error) {
	lines := strings.Split(input, "\n")

	blankIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			blankIdx = i
			break
		}
	}
	if blankIdx == -1 && !part2 {
		return "", fmt.Errorf("no blank line separating ranges from ingredient IDs")
	}
	if blankIdx == -1 {
		blankIdx = len(lines)
	}

	var ranges []idRange
	for _, line := range lines[:blankIdx] {
		a, b, ok := strings.Cut(strings.TrimSpace(line), "-")
		if !ok {
			continue
		}
		start, err1 := strconv.ParseUint(a, 10, 64)
		end, err2 := strconv.ParseUint(b, 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ranges = append(ranges, idRange{start, end})
	}

	if part2 {
		merged := mergeIDRanges(ranges)
		var totalFresh uint64
		for _, r := range merged {
			totalFresh += r.end - r.start + 1
		}
		return strconv.FormatUint(totalFresh, 10), nil
	}

	merged := mergeIDRanges(ranges)
	freshCount := 0
	for _, line := range lines[blankIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		id, err := strconv.ParseUint(trimmed, 10, 64)
		if err != nil {
			continue
		}
		if inMergedRanges(id, merged) {
			freshCount++
		}
	}

	return strconv.Itoa(freshCount), nil
}
