package plan

import (
	"fmt"
	"net/url"
	"strconv"

	"cloud.google.com/go/bigquery"
)

const CatalogSearchUrl = "https://catalog.wcupa.edu/search/"

type Course struct {
	Subject  string
	Number   string
	Title    string
	Credits  int
	Reqs     Requirements
	Times    Times
	Year     bigquery.NullInt64
	Semester bigquery.NullInt64
	Instance int
}

func (c Course) Shorthand() string {
	return c.Subject + " " + c.Number
}

// CatalogID identifies the catalog course. A course that is taken twice
// shares its CatalogID with the retake.
func (c Course) CatalogID() string {
	return c.Subject + "-" + c.Number
}

// ID identifies this instance of the course within the plan.
func (c Course) ID() string {
	if c.Instance > 1 {
		return c.CatalogID() + "-" + strconv.Itoa(c.Instance)
	}
	return c.CatalogID()
}

func (c Course) Dated() bool {
	return c.Year.Valid && c.Semester.Valid
}

func (c Course) Season() string {
	if !c.Semester.Valid {
		return ""
	}
	return SeasonName(int(c.Semester.Int64))
}

// CalendarYear is the year the course is taken in, for a student who started
// in the fall of startYear. Fall and winter of program year 1 are still in
// startYear; spring and summer have ticked over.
func (c Course) CalendarYear(startYear int) int {
	if !c.Dated() {
		return 0
	}
	year := startYear + int(c.Year.Int64)
	if s := c.Semester.Int64; s == 1 || s == 3 {
		year--
	}
	return year
}

// When renders "Fall 2020 • Year 1", or "" for undated courses.
func (c Course) When(startYear int) string {
	if !c.Dated() {
		return ""
	}
	return fmt.Sprintf("%s %d • Year %d", c.Season(), c.CalendarYear(startYear), c.Year.Int64)
}

func (c Course) CatalogURL() string {
	return c.SearchURL(CatalogSearchUrl)
}

// SearchURL is the catalog search page for this course under base.
func (c Course) SearchURL(base string) string {
	return base + "?P=" + url.QueryEscape(c.Subject+" "+c.Number)
}

func SeasonName(semester int) string {
	switch semester {
	case 1:
		return "Fall"
	case 2:
		return "Spring"
	case 3:
		return "Winter"
	case 4:
		return "Summer 1"
	case 5:
		return "Summer 2"
	}
	return "Semester " + strconv.Itoa(semester)
}
