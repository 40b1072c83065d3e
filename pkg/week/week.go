package week

import (
	"fmt"
	"strconv"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/openswoop/fourplan/pkg/plan"
)

// RowsPerHour is the number of 5-minute grid rows in an hour.
const RowsPerHour = 12

var Palette = []string{"bg-red", "bg-orange", "bg-green", "bg-blue", "bg-purple"}

type Label struct {
	Start    string
	End      string
	Duration string
}

type TimeSlot struct {
	CourseID  string
	Shorthand string
	Title     string
	Day       plan.Day
	Column    int
	StartRow  int
	EndRow    int
	Color     string
	// Index is the position of the meeting within the course's times.
	Index int
	Label Label
}

func (s TimeSlot) Tooltip() string {
	return fmt.Sprintf("%s–%s • %s", s.Label.Start, s.Label.End, s.Label.Duration)
}

type Layout struct {
	EarliestHour bigquery.NullInt64
	LatestHour   bigquery.NullInt64
	// Headers has one label per displayed hour plus the label of the hour
	// the grid ends on.
	Headers []string
	Slots   []TimeSlot
}

func (l Layout) Empty() bool {
	return !l.EarliestHour.Valid
}

// TotalHours is the height of the grid in hours.
func (l Layout) TotalHours() int {
	if l.Empty() {
		return 0
	}
	return int(l.LatestHour.Int64 - l.EarliestHour.Int64)
}

// LayoutSemester places every meeting of one semester's courses on a grid
// that spans only the hours actually used. Courses without meetings are
// skipped; a semester with none gives an empty layout.
func LayoutSemester(courses []plan.Course) (*Layout, error) {
	var scheduled []plan.Course
	for _, c := range courses {
		if c.Times.State == plan.Scheduled && len(c.Times.Meetings) > 0 {
			scheduled = append(scheduled, c)
		}
	}
	if len(scheduled) == 0 {
		return &Layout{}, nil
	}

	earliest, latest := 24, 0
	for _, c := range scheduled {
		for _, m := range c.Times.Meetings {
			if m.Start.Hour < earliest {
				earliest = m.Start.Hour
			}
			// 10:15 needs the 10 o'clock row, so the grid runs to 11
			end := m.End.Hour
			if m.End.Minute != 0 {
				end++
			}
			if end > latest {
				latest = end
			}
		}
	}

	layout := &Layout{
		EarliestHour: bigquery.NullInt64{Int64: int64(earliest), Valid: true},
		LatestHour:   bigquery.NullInt64{Int64: int64(latest), Valid: true},
		Headers:      Headers(earliest, latest),
	}
	for i, c := range scheduled {
		color := Palette[i%len(Palette)]
		for j, m := range c.Times.Meetings {
			column, err := m.Day.Column()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.ID(), err)
			}
			start, end := Row(m.Start, earliest), Row(m.End, earliest)
			layout.Slots = append(layout.Slots, TimeSlot{
				CourseID:  c.ID(),
				Shorthand: c.Shorthand(),
				Title:     c.Title,
				Day:       m.Day,
				Column:    column,
				StartRow:  start,
				EndRow:    end,
				Color:     color,
				Index:     j,
				Label: Label{
					Start:    Clock(m.Start),
					End:      Clock(m.End),
					Duration: Duration((end - start) * 5),
				},
			})
		}
	}
	return layout, nil
}

// Row converts a clock time to its 1-based 5-minute grid line.
func Row(t civil.Time, earliestHour int) int {
	return (t.Hour-earliestHour)*RowsPerHour + 1 + t.Minute/5
}

// Duration renders minutes as "1h 15m", dropping the hours when there are
// none ("50m").
func Duration(minutes int) string {
	hours := minutes / 60
	if hours == 0 {
		return strconv.Itoa(minutes%60) + "m"
	}
	return fmt.Sprintf("%dh %dm", hours, minutes%60)
}

// Hour12 converts a 24-hour hour for display. Midnight is left as 0.
func Hour12(hour int) int {
	if hour > 12 {
		return hour - 12
	}
	return hour
}

func Period(hour int) string {
	if hour >= 12 {
		return "pm"
	}
	return "am"
}

// Clock renders "1:05 pm" style labels.
func Clock(t civil.Time) string {
	return fmt.Sprintf("%d:%02d %s", Hour12(t.Hour), t.Minute, Period(t.Hour))
}

func Headers(earliest, latest int) []string {
	var headers []string
	for h := earliest; h <= latest; h++ {
		headers = append(headers, strconv.Itoa(Hour12(h))+":00")
	}
	return headers
}
