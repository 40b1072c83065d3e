package week

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/openswoop/fourplan/pkg/plan"
)

func at(hour, minute int) civil.Time {
	return civil.Time{Hour: hour, Minute: minute}
}

func scheduled(subject, number string, meetings ...plan.Meeting) plan.Course {
	return plan.Course{
		Subject: subject,
		Number:  number,
		Title:   subject + " " + number,
		Times:   plan.Times{State: plan.Scheduled, Meetings: meetings},
	}
}

func TestLayoutSemester(t *testing.T) {
	courses := []plan.Course{
		scheduled("CSC", "142", plan.Meeting{Day: plan.Tuesday, Start: at(9, 0), End: at(10, 15)}),
	}
	layout, err := LayoutSemester(courses)
	if err != nil {
		t.Fatal(err)
	}
	if layout.EarliestHour.Int64 != 9 || layout.LatestHour.Int64 != 11 {
		t.Errorf("hours = %d..%d, want 9..11", layout.EarliestHour.Int64, layout.LatestHour.Int64)
	}
	if layout.TotalHours() != 2 {
		t.Errorf("TotalHours() = %d", layout.TotalHours())
	}
	if diff := cmp.Diff([]string{"9:00", "10:00", "11:00"}, layout.Headers); diff != "" {
		t.Errorf("headers (-want +got):\n%s", diff)
	}
	want := []TimeSlot{{
		CourseID:  "CSC-142",
		Shorthand: "CSC 142",
		Title:     "CSC 142",
		Day:       plan.Tuesday,
		Column:    2,
		StartRow:  1,
		EndRow:    16,
		Color:     "bg-red",
		Label:     Label{Start: "9:00 am", End: "10:15 am", Duration: "1h 15m"},
	}}
	if diff := cmp.Diff(want, layout.Slots); diff != "" {
		t.Errorf("slots (-want +got):\n%s", diff)
	}
	if got := layout.Slots[0].Tooltip(); got != "9:00 am–10:15 am • 1h 15m" {
		t.Errorf("tooltip = %q", got)
	}
}

func TestLayoutSemesterSpan(t *testing.T) {
	courses := []plan.Course{
		scheduled("CSC", "141",
			plan.Meeting{Day: plan.Monday, Start: at(9, 0), End: at(9, 50)},
			plan.Meeting{Day: plan.Wednesday, Start: at(9, 0), End: at(9, 50)}),
		{Subject: "FYE", Number: "100", Times: plan.Times{State: plan.Unscheduled}},
		scheduled("MAT", "161", plan.Meeting{Day: plan.Thursday, Start: at(11, 0), End: at(12, 15)}),
		scheduled("WRT", "120", plan.Meeting{Day: plan.Friday, Start: at(13, 0), End: at(15, 0)}),
	}
	layout, err := LayoutSemester(courses)
	if err != nil {
		t.Fatal(err)
	}
	if layout.EarliestHour.Int64 != 9 || layout.LatestHour.Int64 != 15 {
		t.Errorf("hours = %d..%d, want 9..15", layout.EarliestHour.Int64, layout.LatestHour.Int64)
	}
	wantHeaders := []string{"9:00", "10:00", "11:00", "12:00", "1:00", "2:00", "3:00"}
	if diff := cmp.Diff(wantHeaders, layout.Headers); diff != "" {
		t.Errorf("headers (-want +got):\n%s", diff)
	}

	type placed struct {
		ID         string
		Column     int
		Start, End int
		Color      string
		Index      int
		Duration   string
	}
	var got []placed
	for _, s := range layout.Slots {
		got = append(got, placed{s.CourseID, s.Column, s.StartRow, s.EndRow, s.Color, s.Index, s.Label.Duration})
	}
	want := []placed{
		{"CSC-141", 1, 1, 11, "bg-red", 0, "50m"},
		{"CSC-141", 3, 1, 11, "bg-red", 1, "50m"},
		{"MAT-161", 4, 25, 40, "bg-orange", 0, "1h 15m"},
		{"WRT-120", 5, 49, 73, "bg-green", 0, "2h 0m"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("slots (-want +got):\n%s", diff)
	}
	for _, s := range layout.Slots {
		if s.StartRow < 1 || s.EndRow > layout.TotalHours()*RowsPerHour+1 || s.EndRow <= s.StartRow {
			t.Errorf("%s rows %d/%d outside the grid", s.CourseID, s.StartRow, s.EndRow)
		}
	}
}

func TestLayoutSemesterEmpty(t *testing.T) {
	courses := []plan.Course{
		{Subject: "FYE", Number: "100"},
		{Subject: "WRT", Number: "200", Times: plan.Times{State: plan.Never}},
	}
	for _, in := range [][]plan.Course{nil, courses} {
		layout, err := LayoutSemester(in)
		if err != nil {
			t.Fatal(err)
		}
		if !layout.Empty() || len(layout.Slots) != 0 || len(layout.Headers) != 0 || layout.TotalHours() != 0 {
			t.Errorf("got %+v, want an empty layout", layout)
		}
	}
}

func TestLayoutSemesterPalette(t *testing.T) {
	var courses []plan.Course
	for _, n := range []string{"101", "102", "103", "104", "105", "106"} {
		courses = append(courses, scheduled("CSC", n, plan.Meeting{Day: plan.Monday, Start: at(8, 0), End: at(8, 50)}))
	}
	// an unscheduled course does not use up a color
	courses = append([]plan.Course{{Subject: "FYE", Number: "100"}}, courses...)
	layout, err := LayoutSemester(courses)
	if err != nil {
		t.Fatal(err)
	}
	var colors []string
	for _, s := range layout.Slots {
		colors = append(colors, s.Color)
	}
	want := []string{"bg-red", "bg-orange", "bg-green", "bg-blue", "bg-purple", "bg-red"}
	if diff := cmp.Diff(want, colors); diff != "" {
		t.Errorf("colors (-want +got):\n%s", diff)
	}
}

func TestLayoutSemesterInvalidDay(t *testing.T) {
	courses := []plan.Course{
		scheduled("CSC", "141", plan.Meeting{Day: plan.Day("S"), Start: at(9, 0), End: at(10, 0)}),
	}
	_, err := LayoutSemester(courses)
	var dayErr *plan.InvalidDayError
	if !errors.As(err, &dayErr) {
		t.Fatalf("got %v, want an InvalidDayError", err)
	}
}

func TestDuration(t *testing.T) {
	tests := map[int]string{
		5:   "5m",
		50:  "50m",
		60:  "1h 0m",
		75:  "1h 15m",
		165: "2h 45m",
	}
	for in, want := range tests {
		if got := Duration(in); got != want {
			t.Errorf("Duration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		in   civil.Time
		want string
	}{
		{at(0, 0), "0:00 am"},
		{at(9, 5), "9:05 am"},
		{at(11, 55), "11:55 am"},
		{at(12, 0), "12:00 pm"},
		{at(13, 30), "1:30 pm"},
		{at(23, 45), "11:45 pm"},
	}
	for _, tt := range tests {
		if got := Clock(tt.in); got != tt.want {
			t.Errorf("Clock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		t        civil.Time
		earliest int
		want     int
	}{
		{at(8, 0), 8, 1},
		{at(8, 5), 8, 2},
		{at(9, 0), 8, 13},
		{at(10, 15), 9, 16},
	}
	for _, tt := range tests {
		if got := Row(tt.t, tt.earliest); got != tt.want {
			t.Errorf("Row(%v, %d) = %d, want %d", tt.t, tt.earliest, got, tt.want)
		}
	}
}
