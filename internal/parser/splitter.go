package parser

import (
	"strings"

	"github.com/Ta1al/timetable-parser/internal/grammar"
)

// CellLines returns the cleaned, non-empty, non-noise lines of a cell
func CellLines(cell string) []string {
	var lines []string
	for _, raw := range strings.Split(cell, "\n") {
		line := grammar.CleanLine(raw)
		if line == "" || grammar.IsNoise(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// SplitCell partitions a day x room cell into one line group per session.
// A time-range line closes the current group; trailing lines without one
// still form a final group.
func SplitCell(cell string) [][]string {
	lines := CellLines(cell)
	if len(lines) == 0 {
		return nil
	}

	var groups [][]string
	var current []string
	for _, line := range lines {
		current = append(current, line)
		if grammar.HasTimeRange(line) {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
