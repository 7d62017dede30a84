// DAY 3: LOBBY BATTERIES

package puzzle

import (
	"fmt"
	"strings"
)

// solveDay3 reads banks of batteries, one bank of digit joltages per
// line, and turns on a fixed number of batteries per bank to maximize
// the number formed by the chosen digits in their original order.
// Part 1 picks 2 digits per bank, part 2 picks 12. The answer is the
// sum of each bank's maximum.
func solveDay3(input string, part2 bool) (string, error) {
	var total uint64

	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		digits := make([]int, 0, len(line))
		for _, c := range line {
			if c >= '0' && c <= '9' {
				digits = append(digits, int(c-'0'))
			}
		}

		k := 2
		if part2 {
			k = 12
		}
		if len(digits) < k {
			continue
		}

		total += maxKDigits(digits, k)
	}

	return fmt.Sprintf("Total output joltage: %d", total), nil
}

// maxKDigits selects k digits preserving relative order to form the
// largest k-digit number. Greedy: for each output position, take the
// largest digit whose index still leaves enough digits to finish.
func maxKDigits(digits []int, k int) uint64 {
	if k == 0 || k > len(digits) {
		return 0
	}

	var result uint64
	startIdx := 0

	for i := 0; i < k; i++ {
		remainingNeeded := k - i - 1
		searchEnd := len(digits) - remainingNeeded

		maxDigit, maxIdx := digits[startIdx], startIdx
		for j := startIdx; j < searchEnd; j++ {
			if digits[j] > maxDigit {
				maxDigit, maxIdx = digits[j], j
			}
		}

		result = result*10 + uint64(maxDigit)
		startIdx = maxIdx + 1
	}

	return result
}
