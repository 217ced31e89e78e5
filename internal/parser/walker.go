package parser

import (
	"strings"

	"github.com/Ta1al/timetable-parser/internal/grammar"
	"github.com/Ta1al/timetable-parser/pkg/models"
)

// headerScanRows bounds how far down a table the header row is searched
const headerScanRows = 10

// DayColumn maps one grid column to a day
type DayColumn struct {
	Index int
	Day   string
}

// DetectHeader returns the row among the first ten with the most day-name
// cells. The first row reaching the best score wins; 0 when none match.
func DetectHeader(grid models.Grid) int {
	best, bestScore := 0, 0
	for i := 0; i < len(grid) && i < headerScanRows; i++ {
		score := 0
		for _, cell := range grid[i] {
			if _, ok := grammar.DayName(cell); ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// MapDayColumns maps header columns to days. A blank cell after a day
// cell belongs to that day, covering merged header cells.
func MapDayColumns(header []string) []DayColumn {
	var columns []DayColumn
	lastDay := ""
	for i, cell := range header {
		if day, ok := grammar.DayName(cell); ok {
			lastDay = day
			columns = append(columns, DayColumn{Index: i, Day: day})
			continue
		}
		if i > 0 && lastDay != "" && grammar.IsBlank(cell) {
			columns = append(columns, DayColumn{Index: i, Day: lastDay})
		}
	}
	return columns
}

// roomName normalizes the first cell of a row
func roomName(cell string) string {
	name := grammar.NormalizeSpacing(strings.ReplaceAll(cell, "\n", " "))
	if strings.EqualFold(name, "nan") {
		return ""
	}
	return name
}

func hasContent(cells []string) bool {
	for _, cell := range cells {
		if !grammar.IsBlank(cell) {
			return true
		}
	}
	return false
}

// WalkGrid parses one extracted table into a timetable fragment. A table
// without rows or without day columns contributes nothing.
func WalkGrid(grid models.Grid, pool []string, opts Options) *models.Timetable {
	tt := models.NewTimetable()
	if len(grid) == 0 {
		return tt
	}

	headerRow := DetectHeader(grid)
	columns := MapDayColumns(grid[headerRow])
	if len(columns) == 0 {
		return tt
	}

	lastRoom := ""
	for _, row := range grid[headerRow+1:] {
		if len(row) == 0 {
			continue
		}

		room := roomName(row[0])
		if room == "" {
			if !hasContent(row[1:]) || lastRoom == "" {
				continue
			}
			room = lastRoom
		} else {
			lastRoom = room
		}

		// Sub-columns of the same day are parsed together as one cell
		var days []string
		parts := make(map[string][]string)
		for _, col := range columns {
			if col.Index >= len(row) || grammar.IsBlank(row[col.Index]) {
				continue
			}
			if _, seen := parts[col.Day]; !seen {
				days = append(days, col.Day)
			}
			parts[col.Day] = append(parts[col.Day], strings.TrimSpace(row[col.Index]))
		}

		for _, day := range days {
			sessions := ParseCell(strings.Join(parts[day], "\n"), pool, opts)
			tt.Add(day, room, sessions...)
		}
	}
	return tt
}
