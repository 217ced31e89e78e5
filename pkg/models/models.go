package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for Timetable.Timestamp
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Grid is one extracted table: rows of raw cell strings
type Grid [][]string

// Session represents one scheduled class occurrence in a room on a day
type Session struct {
	CombinedClass    *string  `json:"combined_class"`
	CourseTitle      *string  `json:"course_title"`
	CourseCode       *string  `json:"course_code"`
	CourseTruncated  bool     `json:"course_truncated"`
	ProgramLine      *string  `json:"program_line"`
	ProgramTruncated bool     `json:"program_truncated"`
	Degree           *string  `json:"degree"`
	Program          *string  `json:"program"`
	Section          *string  `json:"section"`
	Session          *string  `json:"session"`
	Semester         *int     `json:"semester"`
	TeacherName      *string  `json:"teacher_name"`
	TeacherTruncated bool     `json:"teacher_truncated"`
	StartTime        *string  `json:"start_time"`
	EndTime          *string  `json:"end_time"`
	Practical        bool     `json:"practical"`
	RawLines         []string `json:"raw_lines"`
}

// Room holds the sessions of one room on one day in encounter order
type Room struct {
	Name     string
	Sessions []*Session
}

// Day holds the rooms of one day in encounter order
type Day struct {
	Name  string
	Rooms []*Room

	index map[string]*Room
}

// Room returns the named room, creating it on first use
func (d *Day) Room(name string) *Room {
	if d.index == nil {
		d.index = make(map[string]*Room)
	}
	if r, ok := d.index[name]; ok {
		return r
	}
	r := &Room{Name: name}
	d.index[name] = r
	d.Rooms = append(d.Rooms, r)
	return r
}

// Timetable is the nested day -> room -> sessions result of a parse.
// Keys keep first-encounter order when serialized.
type Timetable struct {
	Timestamp time.Time
	Days      []*Day

	index map[string]*Day
}

// NewTimetable creates an empty timetable
func NewTimetable() *Timetable {
	return &Timetable{index: make(map[string]*Day)}
}

// Day returns the named day, creating it on first use
func (t *Timetable) Day(name string) *Day {
	if t.index == nil {
		t.index = make(map[string]*Day)
	}
	if d, ok := t.index[name]; ok {
		return d
	}
	d := &Day{Name: name}
	t.index[name] = d
	t.Days = append(t.Days, d)
	return d
}

// Add appends sessions under day and room
func (t *Timetable) Add(day, room string, sessions ...*Session) {
	if len(sessions) == 0 {
		return
	}
	r := t.Day(day).Room(room)
	r.Sessions = append(r.Sessions, sessions...)
}

// Sessions returns every session in day, room, encounter order
func (t *Timetable) Sessions() []*Session {
	var all []*Session
	for _, d := range t.Days {
		for _, r := range d.Rooms {
			all = append(all, r.Sessions...)
		}
	}
	return all
}

// Merge appends every session of other into t, keeping other's order.
// Lists for the same day and room are concatenated without deduplication.
func (t *Timetable) Merge(other *Timetable) {
	if other == nil {
		return
	}
	for _, d := range other.Days {
		for _, r := range d.Rooms {
			t.Add(d.Name, r.Name, r.Sessions...)
		}
	}
}

// MarshalJSON writes {"timestamp": ..., "<day>": {"<room>": [...]}} with ordered keys
func (t *Timetable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"timestamp":`)
	ts, err := marshalValue(t.Timestamp.Format(TimestampLayout))
	if err != nil {
		return nil, err
	}
	buf.Write(ts)

	for _, d := range t.Days {
		if err := writeKey(&buf, d.Name); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for i, r := range d.Rooms {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := marshalValue(r.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			sessions := r.Sessions
			if sessions == nil {
				sessions = []*Session{}
			}
			body, err := marshalValue(sessions)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal sessions for %s/%s: %w", d.Name, r.Name, err)
			}
			buf.Write(body)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the timetable as indented JSON followed by a newline
func (t *Timetable) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func writeKey(buf *bytes.Buffer, key string) error {
	k, err := marshalValue(key)
	if err != nil {
		return err
	}
	buf.WriteByte(',')
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}

// marshalValue encodes v without HTML escaping, so course titles with '&'
// or '<' stay readable
func marshalValue(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
