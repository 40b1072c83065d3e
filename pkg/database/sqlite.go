package database

import (
	"database/sql"
	"fmt"

	"github.com/go-gorp/gorp/v3"
	_ "github.com/mattn/go-sqlite3"
	"github.com/openswoop/fourplan/pkg/persist"
)

type Sqlite struct {
	db    *sql.DB
	dbmap *gorp.DbMap
}

func NewSqlite(file string) (Sqlite, error) {
	sqlite := Sqlite{}

	// Initialize the database connection
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return sqlite, fmt.Errorf("unable to connect to database: %w", err)
	}
	sqlite.db = db

	// Initialize the database mapping, creating the tables if it's our first run
	dbmap := &gorp.DbMap{Db: db, Dialect: gorp.SqliteDialect{}}
	dbmap.AddTableWithName(CourseRow{}, "courses").SetKeys(false, "ID")
	dbmap.AddTableWithName(AssignmentRow{}, "assignments").SetUniqueTogether("category", "slot_index")
	dbmap.AddTableWithName(MeetingRow{}, "meetings").SetUniqueTogether("course_id", "meeting_index")
	if err := dbmap.CreateTablesIfNotExists(); err != nil {
		_ = db.Close()
		return sqlite, fmt.Errorf("unable to create tables: %w", err)
	}
	sqlite.dbmap = dbmap

	return sqlite, nil
}

func (s Sqlite) SaveCourses(courses []CourseRow) error {
	return s.replace(Rows{Courses: courses}, "courses")
}

func (s Sqlite) SaveAssignments(assignments []AssignmentRow) error {
	return s.replace(Rows{Assignments: assignments}, "assignments")
}

func (s Sqlite) SaveMeetings(meetings []MeetingRow) error {
	return s.replace(Rows{Meetings: meetings}, "meetings")
}

// Save replaces everything stored with the rows of one plan.
func (s Sqlite) Save(rows Rows) error {
	return s.replace(rows, "courses", "assignments", "meetings")
}

// replace empties the tables and persists v in one transaction, so a failed
// save leaves the previous plan in place.
func (s Sqlite) replace(v persist.Persistable, tables ...string) error {
	tx, err := s.dbmap.Begin()
	if err != nil {
		return err
	}
	for _, table := range tables {
		if _, err := tx.Exec("delete from " + table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := v.Persist(persist.InsertIgnoringDupes(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Count returns the number of rows in table.
func (s Sqlite) Count(table string) (int64, error) {
	return s.dbmap.SelectInt("select count(*) from " + table)
}

func (s Sqlite) Close() error {
	return s.db.Close()
}
