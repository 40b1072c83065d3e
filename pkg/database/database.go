package database

import (
	"io"
)

type Database interface {
	io.Closer
	SaveCourses([]CourseRow) error
	SaveAssignments([]AssignmentRow) error
	SaveMeetings([]MeetingRow) error
}

// SaveRows writes all three tables of a plan.
func SaveRows(db Database, rows Rows) error {
	if err := db.SaveCourses(rows.Courses); err != nil {
		return err
	}
	if err := db.SaveAssignments(rows.Assignments); err != nil {
		return err
	}
	return db.SaveMeetings(rows.Meetings)
}
