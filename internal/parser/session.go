package parser

import (
	"strings"

	"github.com/Ta1al/timetable-parser/internal/grammar"
	"github.com/Ta1al/timetable-parser/pkg/models"
)

// ParseCell splits a cell into groups and parses each into a Session
func ParseCell(cell string, pool []string, opts Options) []*models.Session {
	groups := SplitCell(cell)
	sessions := make([]*models.Session, 0, len(groups))
	for _, group := range groups {
		if s := ParseSession(group, pool, opts); s != nil {
			sessions = append(sessions, s)
		}
	}
	return sessions
}

// ParseSession turns one line group into a Session. Fields that cannot be
// found stay nil; it returns nil only for a group with no content.
func ParseSession(group []string, pool []string, opts Options) *models.Session {
	var raw []string
	for _, line := range group {
		if line = strings.TrimSpace(line); line != "" {
			raw = append(raw, line)
		}
	}
	if len(raw) == 0 {
		return nil
	}

	s := &models.Session{RawLines: raw}

	// The last time-bearing line is the teacher line; an earlier line may
	// carry a time-like pattern by coincidence.
	teacherIdx := -1
	for i, line := range raw {
		if grammar.HasTimeRange(line) {
			teacherIdx = i
		}
	}

	var content []string
	for i, line := range raw {
		if i == teacherIdx {
			continue
		}
		if grammar.IsPractical(line) {
			s.Practical = true
			continue
		}
		content = append(content, line)
	}

	var courseLine, programLine string
	switch {
	case len(content) == 0:
	case grammar.IsCombinedHeader(content[0]):
		s.CombinedClass = optional(content[0])
		courseLine = lineAt(content, 1)
		programLine = lineAt(content, 2)
	default:
		courseLine = lineAt(content, 0)
		programLine = lineAt(content, 1)
	}

	s.CourseTitle, s.CourseCode = SplitCourseLine(courseLine)
	if s.CourseTitle != nil {
		s.CourseTruncated = grammar.HasEllipsis(*s.CourseTitle)
	}

	s.ProgramTruncated = grammar.HasEllipsis(programLine)
	if opts.ResolveTruncated && s.ProgramTruncated {
		resolved := ResolveProgramLine(programLine, pool)
		if opts.KeepTruncated {
			opts.logger().Debug("keeping truncated program line",
				"line", programLine, "resolved", resolved)
		} else {
			programLine = resolved
		}
	}
	s.ProgramLine = optional(programLine)

	fields := ParseProgramLine(programLine)
	s.Degree = fields.Degree
	s.Program = fields.Program
	s.Section = fields.Section
	s.Session = fields.Session
	s.Semester = fields.Semester

	if teacherIdx >= 0 {
		line := raw[teacherIdx]
		if start, end, ok := grammar.TimeRange(line); ok {
			s.StartTime, s.EndTime = &start, &end
		}
		name, _, _ := strings.Cut(line, "(")
		s.TeacherName = optional(name)
		if s.TeacherName != nil {
			s.TeacherTruncated = grammar.HasEllipsis(*s.TeacherName)
		}
	}

	return s
}

// SplitCourseLine splits "Title # Code" on the last '#'
func SplitCourseLine(line string) (title, code *string) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	i := strings.LastIndex(line, "#")
	if i < 0 {
		return optional(line), nil
	}
	return optional(line[:i]), optional(line[i+1:])
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
