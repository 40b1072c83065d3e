package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

type Day string

const (
	Monday    Day = "M"
	Tuesday   Day = "T"
	Wednesday Day = "W"
	Thursday  Day = "R"
	Friday    Day = "F"
)

var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// Column is the 1-based grid column of the day, Monday first.
func (d Day) Column() (int, error) {
	switch d {
	case Monday:
		return 1, nil
	case Tuesday:
		return 2, nil
	case Wednesday:
		return 3, nil
	case Thursday:
		return 4, nil
	case Friday:
		return 5, nil
	}
	return 0, &InvalidDayError{string(d)}
}

func ParseDay(s string) (Day, error) {
	d := Day(s)
	if _, err := d.Column(); err != nil {
		return "", err
	}
	return d, nil
}

type Meeting struct {
	Day   Day
	Start civil.Time
	End   civil.Time
}

// ParseClock reads a 24-hour "HH:MM" time. Minutes must fall on a 5-minute
// boundary since the week grid has 5-minute rows.
func ParseClock(s string) (civil.Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return civil.Time{}, fmt.Errorf("%q is not an HH:MM time", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return civil.Time{}, fmt.Errorf("%q is not an HH:MM time", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return civil.Time{}, fmt.Errorf("%q is not an HH:MM time", s)
	}
	t := civil.Time{Hour: hour, Minute: minute}
	if !t.IsValid() {
		return civil.Time{}, fmt.Errorf("%q is out of range", s)
	}
	if minute%5 != 0 {
		return civil.Time{}, fmt.Errorf("%q is not on a 5-minute boundary", s)
	}
	return t, nil
}

func minutes(t civil.Time) int {
	return t.Hour*60 + t.Minute
}

type meetingRecord struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func parseMeeting(r meetingRecord) (Meeting, error) {
	day, err := ParseDay(r.Day)
	if err != nil {
		return Meeting{}, err
	}
	start, err := ParseClock(r.Start)
	if err != nil {
		return Meeting{}, err
	}
	end, err := ParseClock(r.End)
	if err != nil {
		return Meeting{}, err
	}
	if minutes(end) <= minutes(start) {
		return Meeting{}, fmt.Errorf("meeting ends at %s before it starts at %s", r.End, r.Start)
	}
	return Meeting{Day: day, Start: start, End: end}, nil
}

type TimesState int

const (
	// Unscheduled courses have no times yet but may get them later.
	Unscheduled TimesState = iota
	// Never is used for transfer and AP credit, which will never meet.
	Never
	Scheduled
)

type Times struct {
	State    TimesState
	Meetings []Meeting
}

func parseTimes(raw json.RawMessage) (Times, error) {
	if len(raw) == 0 {
		return Times{State: Unscheduled}, nil
	}
	if string(raw) == "null" {
		return Times{State: Never}, nil
	}
	var records []meetingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return Times{}, err
	}
	if len(records) == 0 {
		return Times{State: Unscheduled}, nil
	}
	times := Times{State: Scheduled, Meetings: make([]Meeting, len(records))}
	for i, r := range records {
		m, err := parseMeeting(r)
		if err != nil {
			return Times{}, fmt.Errorf("times[%d]: %w", i, err)
		}
		times.Meetings[i] = m
	}
	return times, nil
}
