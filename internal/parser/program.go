package parser

import (
	"strings"

	"github.com/Ta1al/timetable-parser/internal/grammar"
)

// ProgramFields are the parts decomposed from a program descriptor line
type ProgramFields struct {
	Degree   *string
	Program  *string
	Section  *string
	Session  *string
	Semester *int
}

// ParseProgramLine decomposes a line such as
// "BS Computer Science (Regular 1) 2021-2025 Semester# 3".
// Nothing is extracted unless the line opens with a degree token.
func ParseProgramLine(line string) ProgramFields {
	var f ProgramFields
	if line == "" {
		return f
	}

	cleaned := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(line)
	cleaned = grammar.NormalizeSpacing(cleaned)

	degree, remainder, ok := grammar.Degree(cleaned)
	if !ok {
		return f
	}
	f.Degree = &degree

	if before, section, ok := grammar.Section(remainder); ok {
		f.Program = optional(strings.TrimRight(before, " ("))
		f.Section = &section
	}

	if years, ok := grammar.Years(cleaned); ok {
		years = strings.ReplaceAll(years, " ", "")
		f.Session = &years
	}

	if n, ok := grammar.Semester(cleaned); ok {
		f.Semester = &n
	}
	return f
}

// optional maps the empty string to nil
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
