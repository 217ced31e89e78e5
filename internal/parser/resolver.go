package parser

import (
	"strings"

	"github.com/Ta1al/timetable-parser/internal/grammar"
)

// lineConstraints are the tokens a truncated program line still carries
type lineConstraints struct {
	prefix   string
	years    string
	semester string
}

func constraintsOf(line string) lineConstraints {
	c := lineConstraints{prefix: grammar.StripEllipsis(line)}
	c.years, _ = grammar.Years(line)
	c.semester, _ = grammar.SemesterToken(line)
	return c
}

func (c lineConstraints) matchesYears(candidate string) bool {
	return c.years == "" || strings.Contains(candidate, c.years)
}

func (c lineConstraints) matchesSemester(candidate string) bool {
	return c.semester == "" || strings.Contains(strings.ReplaceAll(candidate, " ", ""), c.semester)
}

type matchTier func(c lineConstraints, candidate string) bool

// resolutionTiers are tried in order; each tier scans the whole pool
var resolutionTiers = []matchTier{
	// literal prefix plus whatever years/semester tokens survived truncation
	func(c lineConstraints, candidate string) bool {
		return c.prefix != "" &&
			strings.HasPrefix(candidate, c.prefix) &&
			c.matchesYears(candidate) &&
			c.matchesSemester(candidate)
	},
	// years token alone, semester too when present
	func(c lineConstraints, candidate string) bool {
		return c.years != "" &&
			strings.Contains(candidate, c.years) &&
			c.matchesSemester(candidate)
	},
}

// ResolveProgramLine returns the first reference line, in pool order, that
// completes the truncated line. The input is returned unchanged when the
// pool is empty or nothing matches.
func ResolveProgramLine(line string, pool []string) string {
	if len(pool) == 0 {
		return line
	}
	c := constraintsOf(line)
	for _, tier := range resolutionTiers {
		for _, candidate := range pool {
			if tier(c, candidate) {
				return candidate
			}
		}
	}
	return line
}

// ReferencePrograms harvests untruncated program lines from first-page
// text: every line carrying both a years token and a Semester# token.
func ReferencePrograms(text string) []string {
	var pool []string
	for _, raw := range strings.Split(text, "\n") {
		line := grammar.CleanLine(raw)
		if line == "" {
			continue
		}
		if grammar.HasYears(line) && grammar.HasSemester(line) {
			pool = append(pool, line)
		}
	}
	return pool
}
