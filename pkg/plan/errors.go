package plan

import "fmt"

// MalformedRecordError reports a course record that cannot be turned into a
// Course. Path is the index path of the record in courses.json, e.g.
// "years[0].semesters[1].courses[2]".
type MalformedRecordError struct {
	Path  string
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed record %s: %s: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed record %s: missing %s", e.Path, e.Field)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// RequirementMismatchError is returned when a course lists several
// requirement types but the attribute list does not line up with them.
type RequirementMismatchError struct {
	Requirements int
	Attributes   int
}

func (e *RequirementMismatchError) Error() string {
	return fmt.Sprintf("%d requirement types but %d attributes", e.Requirements, e.Attributes)
}

type InvalidDayError struct {
	Day string
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("invalid meeting day %q (want one of M, T, W, R, F)", e.Day)
}
