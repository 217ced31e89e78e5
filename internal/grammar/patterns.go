// Package grammar holds the token patterns and line classifiers used to read
// timetable cells.
//
// Degree must match before the program/section split is attempted; the
// years and semester tokens are searched independently over the whole line.
package grammar

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	timeRangePattern = regexp.MustCompile(`\((\d{2}:\d{2})\s*-\s*(\d{2}:\d{2})\)`)
	yearsPattern     = regexp.MustCompile(`\b(\d{4})\s*-\s*(\d{4})\b`)
	semesterPattern  = regexp.MustCompile(`Semester#\s*(\d+)`)
	degreePattern    = regexp.MustCompile(`(?i)^(BS|MS|PhD)\s+(?:in\s+)?`)
	sectionPattern   = regexp.MustCompile(`(?i)(Regular|Self Support)\s*\d+`)
	combinedPattern  = regexp.MustCompile(`^combined\s*\(\d+\)`)
)

// TimeRange returns the start and end HH:MM captures of the first
// parenthesized time range in line.
func TimeRange(line string) (start, end string, ok bool) {
	m := timeRangePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Years returns the first YYYY-YYYY token as written in line
func Years(line string) (string, bool) {
	m := yearsPattern.FindString(line)
	return m, m != ""
}

// SemesterToken returns the "Semester#N" token with spaces removed
func SemesterToken(line string) (string, bool) {
	m := semesterPattern.FindString(line)
	if m == "" {
		return "", false
	}
	return strings.ReplaceAll(m, " ", ""), true
}

// Semester returns the semester number of the first Semester# token
func Semester(line string) (int, bool) {
	m := semesterPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Degree matches a leading BS/MS/PhD token (optionally followed by "in")
// and returns the token as captured plus the text after the match.
func Degree(line string) (degree, remainder string, ok bool) {
	loc := degreePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", "", false
	}
	return line[loc[2]:loc[3]], line[loc[1]:], true
}

// Section finds "Regular N" / "Self Support N" in s and returns the text
// before it along with the whitespace-normalized match.
func Section(s string) (before, section string, ok bool) {
	loc := sectionPattern.FindStringIndex(s)
	if loc == nil {
		return "", "", false
	}
	return s[:loc[0]], NormalizeSpacing(s[loc[0]:loc[1]]), true
}
