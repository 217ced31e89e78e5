package parser

import (
	"strings"

	"github.com/Ta1al/timetable-parser/internal/grammar"
	"github.com/Ta1al/timetable-parser/pkg/models"
)

// identityKey groups sessions of the same class cohort
type identityKey struct {
	degree  string
	program string
	section string
	years   string
}

// semesterRecord is the semester observed for a key. Once conflicted it
// never contributes a value again.
type semesterRecord struct {
	value      int
	conflicted bool
}

func keyOf(s *models.Session) (identityKey, bool) {
	if empty(s.Degree) || empty(s.Program) || empty(s.Section) || empty(s.Session) {
		return identityKey{}, false
	}
	return identityKey{
		degree:  grammar.NormalizeSpacing(*s.Degree),
		program: grammar.NormalizeSpacing(*s.Program),
		section: grammar.NormalizeSpacing(*s.Section),
		years:   strings.ReplaceAll(*s.Session, " ", ""),
	}, true
}

func empty(s *string) bool {
	return s == nil || *s == ""
}

// InferSemesters fills missing semesters from other sessions with the same
// identity key. Keys seen with two different semesters are left alone.
// It returns the number of sessions filled.
func InferSemesters(tt *models.Timetable) int {
	sessions := tt.Sessions()
	records := make(map[identityKey]*semesterRecord)

	for _, s := range sessions {
		if s.Semester == nil {
			continue
		}
		key, ok := keyOf(s)
		if !ok {
			continue
		}
		rec, seen := records[key]
		if !seen {
			records[key] = &semesterRecord{value: *s.Semester}
			continue
		}
		if rec.value != *s.Semester {
			rec.conflicted = true
		}
	}

	filled := 0
	for _, s := range sessions {
		if s.Semester != nil {
			continue
		}
		key, ok := keyOf(s)
		if !ok {
			continue
		}
		rec, seen := records[key]
		if !seen || rec.conflicted {
			continue
		}
		v := rec.value
		s.Semester = &v
		filled++
	}
	return filled
}
