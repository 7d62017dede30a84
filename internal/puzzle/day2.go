// DAY 2: INVALID ID DETECTION

package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// idRange is an inclusive numeric range [start, end].
type idRange struct {
	start, end uint64
}

// solveDay2 finds "invalid IDs" inside comma-separated inclusive
// ranges like "11-22,95-115".
//
// Part 1: an ID is invalid when it is a digit sequence repeated
// exactly twice (11, 6464, 123123). Part 2: repeated at least twice
// (111, 12341234, 1212121212). Both parts report the sum of invalid
// IDs found in the ranges.
func solveDay2(input string, part2 bool) (string, error) {
	ranges := parseIDRanges(input)

	var sum uint64
	if part2 {
		sum = sumInvalidIDsAnyRepeat(ranges)
	} else {
		sum = sumInvalidIDsDoubled(ranges)
	}

	return fmt.Sprintf("Sum of invalid IDs: %d", sum), nil
}

// parseIDRanges parses "start-end,start-end,..." with whitespace and
// newlines ignored. Malformed parts are skipped.
func parseIDRanges(input string) []idRange {
	cleaned := strings.NewReplacer("\n", "", " ", "").Replace(input)

	var ranges []idRange
	for _, part := range strings.Split(cleaned, ",") {
		if part == "" {
			continue
		}
		a, b, ok := strings.Cut(part, "-")
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
	return ranges
}

// mergeIDRanges merges overlapping and adjacent ranges so membership
// checks can binary-search a sorted, disjoint list.
func mergeIDRanges(ranges []idRange) []idRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]idRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].start != sorted[j].start {
			return sorted[i].start < sorted[j].start
		}
		return sorted[i].end < sorted[j].end
	})

	merged := []idRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.start <= last.end+1 {
			if r.end > last.end {
				last.end = r.end
			}
		} else {
			merged = append(merged, r)
		}
	}
	return merged
}

// inMergedRanges reports whether x falls in any of the merged,
// sorted ranges.
func inMergedRanges(x uint64, merged []idRange) bool {
	lo, hi := 0, len(merged)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case x < merged[mid].start:
			hi = mid
		case x > merged[mid].end:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// isRepeatedPattern reports whether n's decimal digits are some
// pattern repeated at least twice.
func isRepeatedPattern(n uint64) bool {
	s := strconv.FormatUint(n, 10)
	for patternLen := 1; patternLen <= len(s)/2; patternLen++ {
		if len(s)%patternLen != 0 {
			continue
		}
		pattern := s[:patternLen]
		ok := true
		for i := patternLen; i < len(s); i += patternLen {
			if s[i:i+patternLen] != pattern {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// sumInvalidIDsDoubled generates doubled-pattern candidates instead of
// scanning every number in the ranges: for each even digit count, every
// half-length pattern is doubled ("64" -> 6464) and checked against the
// merged ranges. Candidate counts stay tiny even for huge ranges.
func sumInvalidIDsDoubled(ranges []idRange) uint64 {
	if len(ranges) == 0 {
		return 0
	}

	merged := mergeIDRanges(ranges)
	var maxUpper uint64
	for _, r := range merged {
		if r.end > maxUpper {
			maxUpper = r.end
		}
	}
	maxDigits := len(strconv.FormatUint(maxUpper, 10))

	var sum uint64
	for totalLen := 2; totalLen <= maxDigits; totalLen += 2 {
		half := totalLen / 2

		// All patterns with 'half' digits, no leading zeros.
		start := pow10(half - 1)
		end := pow10(half)

		for t := start; t < end; t++ {
			s := strconv.FormatUint(t, 10)
			doubled, err := strconv.ParseUint(s+s, 10, 64)
			if err != nil {
				break
			}
			if doubled > maxUpper {
				break
			}
			if inMergedRanges(doubled, merged) {
				sum += doubled
			}
		}
	}
	return sum
}

// sumInvalidIDsAnyRepeat checks every number in the merged ranges for
// any repeated pattern. Brute force, but part 2 patterns (any
// repetition count) do not generate as cleanly as doubled ones.
func sumInvalidIDsAnyRepeat(ranges []idRange) uint64 {
	if len(ranges) == 0 {
		return 0
	}

	var sum uint64
	for _, r := range mergeIDRanges(ranges) {
		for n := r.start; n <= r.end; n++ {
			if isRepeatedPattern(n) {
				sum += n
			}
		}
	}
	return sum
}

func pow10(n int) uint64 {
	result := uint64(1)
	for i := 0; i < n; i++ {
		result *= 10
	}
	return result
}
