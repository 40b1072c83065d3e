package requirements

import "fmt"

// ResolutionError is returned for a major math course whose title names
// neither Statistics nor Calculus.
type ResolutionError struct {
	CourseID string
	Title    string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot tell which math requirement %s (%q) fills", e.CourseID, e.Title)
}

type CategoryExhaustedError struct {
	Category string
	Number   int
	CourseID string
}

func (e *CategoryExhaustedError) Error() string {
	return fmt.Sprintf("%s has no open slot for %s (all %d filled)", e.Category, e.CourseID, e.Number)
}

// LookupError is returned when a requirement pair matches no category, or
// when the taxonomy declares the same pair twice.
type LookupError struct {
	Type      string
	Attribute string
	CourseID  string
	Duplicate bool
}

func (e *LookupError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("requirement %s.%s is declared more than once", e.Type, e.Attribute)
	}
	return fmt.Sprintf("no requirement %s.%s for %s", e.Type, e.Attribute, e.CourseID)
}
