package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"cloud.google.com/go/bigquery"
)

// Document is the layout of courses.json.
type Document struct {
	Years []YearRecord   `json:"years"`
	Other []CourseRecord `json:"other"`
}

type YearRecord struct {
	Year      int              `json:"year"`
	Semesters []SemesterRecord `json:"semesters"`
}

type SemesterRecord struct {
	Semester int            `json:"semester"`
	Courses  []CourseRecord `json:"courses"`
}

type CourseRecord struct {
	Subject     *string         `json:"subject"`
	Number      *courseNumber   `json:"number"`
	Name        string          `json:"name"`
	Requirement json.RawMessage `json:"requirement"`
	Attribute   json.RawMessage `json:"attribute"`
	Credits     *int            `json:"credits"`
	Times       json.RawMessage `json:"times,omitempty"`
}

// courseNumber accepts both "142" and 142.
type courseNumber string

func (n *courseNumber) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = courseNumber(s)
		return nil
	}
	var i int
	if err := json.Unmarshal(b, &i); err != nil {
		return errors.New("course number must be a string or an integer")
	}
	*n = courseNumber(strconv.Itoa(i))
	return nil
}

func ParseDocument(data []byte) ([]Course, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return BuildCatalog(doc.Years, doc.Other)
}

// BuildCatalog flattens the year/semester tree and the undated list into one
// course per record, in document order. Nothing is deduplicated; a course
// listed twice gets a second instance number.
func BuildCatalog(years []YearRecord, other []CourseRecord) ([]Course, error) {
	var courses []Course
	instances := make(map[string]int)

	add := func(path string, r CourseRecord, year, semester bigquery.NullInt64, times *Times) error {
		c, err := newCourse(path, r, times)
		if err != nil {
			return err
		}
		c.Year = year
		c.Semester = semester
		instances[c.CatalogID()]++
		c.Instance = instances[c.CatalogID()]
		courses = append(courses, c)
		return nil
	}

	for yi, y := range years {
		for si, s := range y.Semesters {
			for ci, r := range s.Courses {
				path := fmt.Sprintf("years[%d].semesters[%d].courses[%d]", yi, si, ci)
				year := bigquery.NullInt64{Int64: int64(y.Year), Valid: true}
				semester := bigquery.NullInt64{Int64: int64(s.Semester), Valid: true}
				if err := add(path, r, year, semester, nil); err != nil {
					return nil, err
				}
			}
		}
	}

	// AP credit, transfer courses, etc. never get a time
	never := Times{State: Never}
	for i, r := range other {
		path := fmt.Sprintf("other[%d]", i)
		if err := add(path, r, bigquery.NullInt64{}, bigquery.NullInt64{}, &never); err != nil {
			return nil, err
		}
	}

	return courses, nil
}

func newCourse(path string, r CourseRecord, times *Times) (Course, error) {
	if r.Subject == nil || *r.Subject == "" {
		return Course{}, &MalformedRecordError{Path: path, Field: "subject"}
	}
	if r.Number == nil || *r.Number == "" {
		return Course{}, &MalformedRecordError{Path: path, Field: "number"}
	}
	if r.Credits == nil {
		return Course{}, &MalformedRecordError{Path: path, Field: "credits"}
	}
	if *r.Credits < 0 {
		return Course{}, &MalformedRecordError{Path: path, Field: "credits", Err: fmt.Errorf("negative value %d", *r.Credits)}
	}

	reqs, err := ParseRequirements(r.Requirement, r.Attribute)
	if err != nil {
		return Course{}, &MalformedRecordError{Path: path, Field: "requirement", Err: err}
	}

	c := Course{
		Subject: *r.Subject,
		Number:  string(*r.Number),
		Title:   r.Name,
		Credits: *r.Credits,
		Reqs:    reqs,
	}
	if times != nil {
		c.Times = *times
	} else {
		c.Times, err = parseTimes(r.Times)
		if err != nil {
			return Course{}, &MalformedRecordError{Path: path, Field: "times", Err: err}
		}
	}
	return c, nil
}
