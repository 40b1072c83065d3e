package app

import (
	"fmt"

	"github.com/openswoop/fourplan/pkg/plan"
	"github.com/openswoop/fourplan/pkg/requirements"
	"github.com/openswoop/fourplan/pkg/scrape"
	"github.com/openswoop/fourplan/pkg/week"
)

// DefaultStartYear is the fall the plan starts in.
const DefaultStartYear = 2020

type Week struct {
	Year     int
	Semester int
	Layout   *week.Layout
}

// Plan is everything the page shows, computed from scratch on each build.
type Plan struct {
	StartYear    int
	Courses      []plan.Course
	Requirements *requirements.Result
	Schedule     []plan.YearGroup
	Weeks        []Week
	Undated      []plan.Course
}

func Build(docs *scrape.Documents, startYear int) (*Plan, error) {
	taxonomy, err := requirements.ParseTaxonomy(docs.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to load requirements: %w", err)
	}
	courses, err := plan.ParseDocument(docs.Courses)
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	return Assemble(courses, taxonomy, startYear)
}

func Assemble(courses []plan.Course, taxonomy requirements.Taxonomy, startYear int) (*Plan, error) {
	p := &Plan{
		StartYear: startYear,
		Courses:   courses,
		Schedule:  plan.Schedule(courses, startYear),
		Undated:   plan.Undated(courses),
	}

	res, err := requirements.Fill(courses, taxonomy)
	p.Requirements = res
	if err != nil {
		return p, fmt.Errorf("failed to fill requirements: %w", err)
	}

	for _, y := range p.Schedule {
		for _, s := range y.Semesters {
			layout, err := week.LayoutSemester(s.Courses)
			if err != nil {
				return p, fmt.Errorf("failed to lay out %s %d: %w", s.Season, s.CalendarYear, err)
			}
			p.Weeks = append(p.Weeks, Week{Year: s.Year, Semester: s.Semester, Layout: layout})
		}
	}
	return p, nil
}

// Week returns the layout for one semester, or nil if the plan has none.
func (p *Plan) Week(year, semester int) *week.Layout {
	for _, w := range p.Weeks {
		if w.Year == year && w.Semester == semester {
			return w.Layout
		}
	}
	return nil
}
