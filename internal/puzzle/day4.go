// DAY 4: PRINTING DEPARTMENT

package puzzle

import (
	"fmt"
	"strings"
)

// solveDay4 works on a grid of paper rolls marked '@'. A roll is
// accessible to a forklift when fewer than 4 of its 8 neighbors
// (including diagonals) are also rolls.
//
// Part 1 counts accessible rolls. Part 2 repeatedly removes every
// accessible roll in batches until none remain and counts the total
// removed.
func solveDay4(input string, part2 bool) (string, error) {
	grid := parseRollGrid(input)

	if part2 {
		return fmt.Sprintf("Total removable rolls: %d", countRemovableRolls(grid)), nil
	}
	return fmt.Sprintf("Accessible rolls: %d", countAccessibleRolls(grid)), nil
}

func parseRollGrid(input string) [][]byte {
	var grid [][]byte
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		grid = append(grid, []byte(line))
	}
	return grid
}

// adjacentRolls counts '@' cells among the 8 neighbors of (row, col).
func adjacentRolls(grid [][]byte, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
				continue
			}
			if grid[r][c] == '@' {
				count++
			}
		}
	}
	return count
}

func countAccessibleRolls(grid [][]byte) int {
	accessible := 0
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] == '@' && adjacentRolls(grid, row, col) < 4 {
				accessible++
			}
		}
	}
	return accessible
}

// countRemovableRolls removes accessible rolls in batches: all rolls
// accessible in the current state go at once, then accessibility is
// recomputed. Removing one at a time would give different results.
func countRemovableRolls(grid [][]byte) int {
	totalRemoved := 0

	for {
		var accessible [][2]int
		for row := range grid {
			for col := range grid[row] {
				if grid[row][col] == '@' && adjacentRolls(grid, row, col) < 4 {
					accessible = append(accessible, [2]int{row, col})
				}
			}
		}

		if len(accessible) == 0 {
			break
		}

		for _, pos := range accessible {
			grid[pos[0]][pos[1]] = '.'
		}
		totalRemoved += len(accessible)
	}

	return totalRemoved
}
