package parser

import (
	"reflect"
	"testing"
)

func str(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestSplitCell(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want [][]string
	}{
		{"empty", "", nil},
		{"only noise", "swap\nWas: Room 3\n[delete]\n  \n", nil},
		{
			"single session",
			"Calculus # MT101\nBS Math (Regular 1) 2022-2026 Semester# 2\nDr. Ali (08:00 - 09:30)",
			[][]string{{"Calculus # MT101", "BS Math (Regular 1) 2022-2026 Semester# 2", "Dr. Ali (08:00 - 09:30)"}},
		},
		{
			"two sessions and trailing group",
			"A # 1\nT1 (08:00 - 09:00)\nswap\nB # 2\nT2 (09:00 - 10:00)\nC # 3",
			[][]string{{"A # 1", "T1 (08:00 - 09:00)"}, {"B # 2", "T2 (09:00 - 10:00)"}, {"C # 3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCell(tt.cell)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCell() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSplitCourseLine(t *testing.T) {
	title, code := SplitCourseLine("Title # Code")
	if str(title) != "Title" || str(code) != "Code" {
		t.Errorf("got %s / %s", str(title), str(code))
	}

	title, code = SplitCourseLine("Title")
	if str(title) != "Title" || code != nil {
		t.Errorf("got %s / %s", str(title), str(code))
	}

	title, code = SplitCourseLine("C# Programming # CS210")
	if str(title) != "C# Programming" || str(code) != "CS210" {
		t.Errorf("split should use the last '#': %s / %s", str(title), str(code))
	}

	title, code = SplitCourseLine("")
	if title != nil || code != nil {
		t.Error("empty line should yield nil fields")
	}
}

func TestParseSessionFullRecord(t *testing.T) {
	cell := "BS Computer Science # CS101\nBS Computer Science (Regular 1) 2021-2025 Semester# 3\nDr. Smith (09:00 - 10:30)"
	sessions := ParseCell(cell, nil, DefaultOptions())
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	s := sessions[0]

	checks := map[string]struct{ got, want string }{
		"course_title": {str(s.CourseTitle), "BS Computer Science"},
		"course_code":  {str(s.CourseCode), "CS101"},
		"degree":       {str(s.Degree), "BS"},
		"program":      {str(s.Program), "Computer Science"},
		"section":      {str(s.Section), "Regular 1"},
		"session":      {str(s.Session), "2021-2025"},
		"teacher_name": {str(s.TeacherName), "Dr. Smith"},
		"start_time":   {str(s.StartTime), "09:00"},
		"end_time":     {str(s.EndTime), "10:30"},
	}
	for field, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", field, c.got, c.want)
		}
	}
	if s.Semester == nil || *s.Semester != 3 {
		t.Errorf("semester = %v, want 3", s.Semester)
	}
	if s.CombinedClass != nil || s.Practical || s.CourseTruncated || s.ProgramTruncated || s.TeacherTruncated {
		t.Error("unexpected flags set")
	}
	if len(s.RawLines) != 3 {
		t.Errorf("raw lines = %v", s.RawLines)
	}
}

func TestParseSessionCombinedAndPractical(t *testing.T) {
	group := []string{
		"Combined(2)",
		"Practical",
		"Physics Lab # PH101L",
		"MS in Physics (Self Support 2) 2023-2025 Semester# 1",
		"Dr. Khan… (11:00 - 12:00)",
	}
	s := ParseSession(group, nil, DefaultOptions())

	if str(s.CombinedClass) != "Combined(2)" {
		t.Errorf("combined_class = %q", str(s.CombinedClass))
	}
	if !s.Practical {
		t.Error("practical should be set")
	}
	if str(s.CourseTitle) != "Physics Lab" || str(s.CourseCode) != "PH101L" {
		t.Errorf("course = %q / %q", str(s.CourseTitle), str(s.CourseCode))
	}
	if str(s.Degree) != "MS" || str(s.Program) != "Physics" || str(s.Section) != "Self Support 2" {
		t.Errorf("program fields = %q %q %q", str(s.Degree), str(s.Program), str(s.Section))
	}
	if str(s.TeacherName) != "Dr. Khan…" || !s.TeacherTruncated {
		t.Errorf("teacher = %q truncated=%v", str(s.TeacherName), s.TeacherTruncated)
	}
	if len(s.RawLines) != len(group) {
		t.Errorf("raw lines should keep every input line, got %v", s.RawLines)
	}
}

func TestParseSessionLastTimeLineIsTeacher(t *testing.T) {
	group := []string{
		"Seminar (10:00 - 11:00) # SM1",
		"BS English (Regular 1) 2020-2024 Semester# 8",
		"Ms. Noor (14:00 - 15:00)",
	}
	s := ParseSession(group, nil, DefaultOptions())
	if str(s.TeacherName) != "Ms. Noor" || str(s.StartTime) != "14:00" {
		t.Errorf("teacher = %q start = %q", str(s.TeacherName), str(s.StartTime))
	}
	if str(s.CourseCode) != "SM1" {
		t.Errorf("course code = %q", str(s.CourseCode))
	}
}

func TestParseSessionWithoutTeacherLine(t *testing.T) {
	s := ParseSession([]string{"Calculus # MT101"}, nil, DefaultOptions())
	if s.TeacherName != nil || s.StartTime != nil || s.EndTime != nil {
		t.Error("teacher and times should be nil without a time line")
	}
	if s.ProgramLine != nil || s.Degree != nil {
		t.Error("program fields should be nil without a program line")
	}

	if ParseSession([]string{"", "  "}, nil, DefaultOptions()) != nil {
		t.Error("empty group should not produce a session")
	}
}

func TestParseSessionTeacherNameEmpty(t *testing.T) {
	s := ParseSession([]string{"Calculus", "(08:00 - 09:00)"}, nil, DefaultOptions())
	if s.TeacherName != nil {
		t.Errorf("teacher = %q, want nil", str(s.TeacherName))
	}
	if str(s.StartTime) != "08:00" || str(s.EndTime) != "09:00" {
		t.Error("times should still be captured")
	}
}

func TestParseSessionNoDegree(t *testing.T) {
	s := ParseSession([]string{"Calculus", "Evening Program 2021-2025 Semester# 3", "T (08:00 - 09:00)"}, nil, DefaultOptions())
	if str(s.ProgramLine) != "Evening Program 2021-2025 Semester# 3" {
		t.Errorf("program_line = %q", str(s.ProgramLine))
	}
	if s.Degree != nil || s.Program != nil || s.Section != nil || s.Session != nil || s.Semester != nil {
		t.Error("derived program fields must all be nil without a degree")
	}
}

func TestParseSessionTruncation(t *testing.T) {
	pool := []string{
		"BS Computer Science (Regular 2) 2021-2025 Semester# 3",
		"BS Computer Science (Regular 1) 2021-2025 Semester# 3",
	}
	group := []string{"Data Struc…", "BS Computer Science (Regular 1) 2021-2025 Seme…", "T (08:00 - 09:00)"}

	t.Run("resolved", func(t *testing.T) {
		s := ParseSession(group, pool, DefaultOptions())
		if !s.ProgramTruncated || !s.CourseTruncated {
			t.Error("truncation flags should be set")
		}
		if str(s.ProgramLine) != pool[1] {
			t.Errorf("program_line = %q", str(s.ProgramLine))
		}
		if s.Semester == nil || *s.Semester != 3 {
			t.Error("semester should come from the resolved line")
		}
	})

	t.Run("kept", func(t *testing.T) {
		opts := DefaultOptions()
		opts.KeepTruncated = true
		s := ParseSession(group, pool, opts)
		if str(s.ProgramLine) != group[1] {
			t.Errorf("program_line = %q", str(s.ProgramLine))
		}
		if !s.ProgramTruncated {
			t.Error("program_truncated should be set")
		}
		if s.Semester != nil {
			t.Error("truncated line carries no semester")
		}
	})

	t.Run("resolution disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.ResolveTruncated = false
		s := ParseSession(group, pool, opts)
		if str(s.ProgramLine) != group[1] || !s.ProgramTruncated {
			t.Errorf("program_line = %q", str(s.ProgramLine))
		}
	})
}

func TestParseProgramLine(t *testing.T) {
	f := ParseProgramLine("PhD  Chemistry(Regular   1) 2019 - 2023 Semester#7")
	if str(f.Degree) != "PhD" || str(f.Program) != "Chemistry" || str(f.Section) != "Regular 1" {
		t.Errorf("got %q %q %q", str(f.Degree), str(f.Program), str(f.Section))
	}
	if str(f.Session) != "2019-2023" {
		t.Errorf("session = %q", str(f.Session))
	}
	if f.Semester == nil || *f.Semester != 7 {
		t.Errorf("semester = %v", f.Semester)
	}

	f = ParseProgramLine("BS Physics 2019-2023")
	if str(f.Degree) != "BS" || f.Program != nil || f.Section != nil {
		t.Error("program and section need a section token")
	}
	if str(f.Session) != "2019-2023" || f.Semester != nil {
		t.Error("years should still be extracted")
	}

	if (ParseProgramLine("") != ProgramFields{}) {
		t.Error("empty line should yield no fields")
	}
}

func BenchmarkParseCell(b *testing.B) {
	cell := "Combined Class\nCalculus # MT101\nBS Math (Regular 1) 2022-2026 Semester# 2\nDr. Ali (08:00 - 09:30)\n" +
		"Physics # PH101\nBS Physics (Regular 2) 2022-2026 Seme…\nDr. Sara (09:30 - 11:00)"
	pool := []string{"BS Physics (Regular 2) 2022-2026 Semester# 2"}
	opts := DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ParseCell(cell, pool, opts)
	}
}
