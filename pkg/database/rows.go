package database

import (
	"github.com/openswoop/fourplan/pkg/app"
	"github.com/openswoop/fourplan/pkg/persist"
	"github.com/openswoop/fourplan/pkg/plan"
)

type CourseRow struct {
	ID           string `db:"id" bigquery:"id"`
	CatalogID    string `db:"catalog_id" bigquery:"catalog_id"`
	Course       string `db:"course" bigquery:"course"`
	Title        string `db:"title" bigquery:"title"`
	Credits      int    `db:"credits" bigquery:"credits"`
	Year         int    `db:"year" bigquery:"year"` // 0 when undated
	Semester     int    `db:"semester" bigquery:"semester"`
	Season       string `db:"season" bigquery:"season"`
	Requirements string `db:"requirements" bigquery:"requirements"`
	Times        string `db:"times" bigquery:"times"`
}

type AssignmentRow struct {
	CourseID  string `db:"course_id" bigquery:"course_id"`
	Category  string `db:"category" bigquery:"category"`
	SlotIndex int    `db:"slot_index" bigquery:"slot_index"`
}

type MeetingRow struct {
	CourseID string `db:"course_id" bigquery:"course_id"`
	Index    int    `db:"meeting_index" bigquery:"meeting_index"`
	Year     int    `db:"year" bigquery:"year"`
	Semester int    `db:"semester" bigquery:"semester"`
	Day      string `db:"day" bigquery:"day"`
	Start    string `db:"start_time" bigquery:"start_time"`
	End      string `db:"end_time" bigquery:"end_time"`
	Column   int    `db:"grid_column" bigquery:"grid_column"`
	StartRow int    `db:"start_row" bigquery:"start_row"`
	EndRow   int    `db:"end_row" bigquery:"end_row"`
	Color    string `db:"color" bigquery:"color"`
}

// Rows is a plan flattened into table rows.
type Rows struct {
	Courses     []CourseRow
	Assignments []AssignmentRow
	Meetings    []MeetingRow
}

func NewRows(p *app.Plan) Rows {
	var rows Rows
	for _, c := range p.Courses {
		row := CourseRow{
			ID:           c.ID(),
			CatalogID:    c.CatalogID(),
			Course:       c.Shorthand(),
			Title:        c.Title,
			Credits:      c.Credits,
			Season:       c.Season(),
			Requirements: c.Reqs.String(),
			Times:        timesState(c.Times.State),
		}
		if c.Dated() {
			row.Year = int(c.Year.Int64)
			row.Semester = int(c.Semester.Int64)
		}
		rows.Courses = append(rows.Courses, row)
	}

	if p.Requirements != nil {
		for _, category := range p.Requirements.Categories {
			for i, slot := range category.Slots {
				if !slot.Filled() {
					continue
				}
				rows.Assignments = append(rows.Assignments, AssignmentRow{
					CourseID:  slot.CourseID,
					Category:  category.Key(),
					SlotIndex: i,
				})
			}
		}
	}

	for _, w := range p.Weeks {
		for _, s := range w.Layout.Slots {
			rows.Meetings = append(rows.Meetings, MeetingRow{
				CourseID: s.CourseID,
				Index:    s.Index,
				Year:     w.Year,
				Semester: w.Semester,
				Day:      string(s.Day),
				Start:    s.Label.Start,
				End:      s.Label.End,
				Column:   s.Column,
				StartRow: s.StartRow,
				EndRow:   s.EndRow,
				Color:    s.Color,
			})
		}
	}
	return rows
}

func (r Rows) Persist(tx persist.Transaction) error {
	for i := range r.Courses {
		if err := tx.Insert(&r.Courses[i]); err != nil {
			return err
		}
	}
	for i := range r.Assignments {
		if err := tx.Insert(&r.Assignments[i]); err != nil {
			return err
		}
	}
	for i := range r.Meetings {
		if err := tx.Insert(&r.Meetings[i]); err != nil {
			return err
		}
	}
	return nil
}

func timesState(s plan.TimesState) string {
	switch s {
	case plan.Never:
		return "never"
	case plan.Scheduled:
		return "scheduled"
	}
	return "unscheduled"
}
