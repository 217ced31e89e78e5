package grammar

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DayNames lists the recognised day names in week order
var DayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

const ellipsis = "…"

// CleanLine NFC-normalizes and trims a raw line
func CleanLine(line string) string {
	return strings.TrimSpace(norm.NFC.String(line))
}

// NormalizeSpacing collapses runs of whitespace into single spaces
func NormalizeSpacing(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DayName returns the day whose name prefixes line, case-insensitively
func DayName(line string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(line))
	for _, day := range DayNames {
		if strings.HasPrefix(text, strings.ToLower(day)) {
			return day, true
		}
	}
	return "", false
}

// HasTimeRange reports whether line contains "(HH:MM - HH:MM)"
func HasTimeRange(line string) bool {
	return timeRangePattern.MatchString(line)
}

// HasYears reports whether line contains a YYYY-YYYY token
func HasYears(line string) bool {
	return yearsPattern.MatchString(line)
}

// HasSemester reports whether line contains a Semester# token
func HasSemester(line string) bool {
	return semesterPattern.MatchString(line)
}

// IsCombinedHeader reports whether line opens a combined class group
func IsCombinedHeader(line string) bool {
	text := strings.ToLower(strings.TrimSpace(line))
	if strings.HasPrefix(text, "combined class") {
		return true
	}
	return combinedPattern.MatchString(text)
}

// IsNoise reports document markup lines that never carry session content:
// swap stamps, "was:" annotations and deletion boxes.
func IsNoise(line string) bool {
	text := strings.ToLower(strings.TrimSpace(line))
	return text == "swap" ||
		strings.HasPrefix(text, "was:") ||
		strings.Contains(text, "delete")
}

// IsPractical reports a standalone "practical" marker line
func IsPractical(line string) bool {
	return strings.ToLower(strings.TrimSpace(line)) == "practical"
}

// IsBlank reports an empty cell, including the "nan" placeholder
func IsBlank(cell string) bool {
	text := strings.TrimSpace(cell)
	return text == "" || strings.EqualFold(text, "nan")
}

// HasEllipsis reports whether text was clipped by the source layout
func HasEllipsis(text string) bool {
	if text == "" {
		return false
	}
	return strings.Contains(text, ellipsis) || strings.HasSuffix(text, "...")
}

// StripEllipsis removes ellipsis markers and surrounding space
func StripEllipsis(text string) string {
	text = strings.ReplaceAll(text, ellipsis, "")
	text = strings.TrimSpace(text)
	return strings.TrimSpace(strings.TrimSuffix(text, "..."))
}
