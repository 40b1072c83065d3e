package plan

type SemesterGroup struct {
	Year         int
	Semester     int
	Season       string
	CalendarYear int
	Courses      []Course
}

type YearGroup struct {
	Year      int
	Semesters []SemesterGroup
}

// Schedule groups the dated courses by program year and semester, in the
// order they first appear in the plan.
func Schedule(courses []Course, startYear int) []YearGroup {
	var years []YearGroup
	yearIndex := make(map[int64]int)
	semIndex := make(map[[2]int64]int)

	for _, c := range courses {
		if !c.Dated() {
			continue
		}
		yi, ok := yearIndex[c.Year.Int64]
		if !ok {
			yi = len(years)
			yearIndex[c.Year.Int64] = yi
			years = append(years, YearGroup{Year: int(c.Year.Int64)})
		}
		key := [2]int64{c.Year.Int64, c.Semester.Int64}
		si, ok := semIndex[key]
		if !ok {
			si = len(years[yi].Semesters)
			semIndex[key] = si
			years[yi].Semesters = append(years[yi].Semesters, SemesterGroup{
				Year:         int(c.Year.Int64),
				Semester:     int(c.Semester.Int64),
				Season:       c.Season(),
				CalendarYear: c.CalendarYear(startYear),
			})
		}
		sem := &years[yi].Semesters[si]
		sem.Courses = append(sem.Courses, c)
	}
	return years
}

// Undated returns the courses that will never be placed on a calendar.
func Undated(courses []Course) []Course {
	var out []Course
	for _, c := range courses {
		if c.Times.State == Never {
			out = append(out, c)
		}
	}
	return out
}
