package report

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/openswoop/fourplan/pkg/app"
	"github.com/openswoop/fourplan/pkg/plan"
)

const (
	ScheduleFile     = "schedule.csv"
	RequirementsFile = "requirements.csv"
	SummaryFile      = "summary.csv"
	WeekFile         = "week.csv"
)

type scheduleView struct {
	When         string `csv:"when"`
	Course       string `csv:"course"`
	Title        string `csv:"title"`
	Credits      int    `csv:"credits"`
	Requirements string `csv:"requirements"`
	Catalog      string `csv:"catalog"`
	Description  string `csv:"description"`
}

type requirementView struct {
	Requirement string `csv:"requirement"`
	Group       string `csv:"group"`
	Attribute   string `csv:"attribute"`
	Slot        int    `csv:"slot"`
	Course      string `csv:"course"`
	Complete    bool   `csv:"complete"`
}

type summaryView struct {
	Requirement string `csv:"requirement"`
	Courses     int    `csv:"courses"`
	Credits     int    `csv:"credits"`
}

type weekView struct {
	Semester string `csv:"semester"`
	Course   string `csv:"course"`
	Day      string `csv:"day"`
	Start    string `csv:"start"`
	End      string `csv:"end"`
	Duration string `csv:"duration"`
	Rows     string `csv:"grid_row"`
	Column   int    `csv:"grid_column"`
	Color    string `csv:"color"`
}

// WritePlan writes the schedule, requirements, summary and week reports
// into dir. descriptions maps course shorthands to catalog text and may be
// nil.
func WritePlan(dir string, p *app.Plan, descriptions map[string]string) error {
	if err := WriteCsv(scheduleRows(p, descriptions), filepath.Join(dir, ScheduleFile)); err != nil {
		return err
	}
	if err := WriteCsv(requirementRows(p), filepath.Join(dir, RequirementsFile)); err != nil {
		return err
	}
	if err := WriteCsv(summaryRows(p), filepath.Join(dir, SummaryFile)); err != nil {
		return err
	}
	return WriteCsv(weekRows(p), filepath.Join(dir, WeekFile))
}

func scheduleRows(p *app.Plan, descriptions map[string]string) []scheduleView {
	var rows []scheduleView
	for _, c := range p.Courses {
		rows = append(rows, scheduleView{
			When:         whenOrUndated(c, p.StartYear),
			Course:       c.Shorthand(),
			Title:        c.Title,
			Credits:      c.Credits,
			Requirements: pillText(c),
			Catalog:      c.CatalogURL(),
			Description:  descriptions[c.Shorthand()],
		})
	}
	return rows
}

func requirementRows(p *app.Plan) []requirementView {
	var rows []requirementView
	if p.Requirements == nil {
		return rows
	}
	shorthands := make(map[string]string, len(p.Courses))
	for _, c := range p.Courses {
		shorthands[c.ID()] = c.Shorthand()
	}
	for _, category := range p.Requirements.Categories {
		for i, slot := range category.Slots {
			course := "—"
			if slot.Filled() {
				course = shorthands[slot.CourseID]
			}
			rows = append(rows, requirementView{
				Requirement: category.Type,
				Group:       category.Group,
				Attribute:   category.Label(),
				Slot:        i + 1,
				Course:      course,
				Complete:    category.Complete(),
			})
		}
	}
	return rows
}

func summaryRows(p *app.Plan) []summaryView {
	var rows []summaryView
	if p.Requirements == nil {
		return rows
	}
	totals := p.Requirements.Totals
	var types []string
	for t := range totals.ByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		rows = append(rows, summaryView{t, totals.ByType[t].Courses, totals.ByType[t].Credits})
	}
	return append(rows, summaryView{"total", totals.Grand.Courses, totals.Grand.Credits})
}

func weekRows(p *app.Plan) []weekView {
	var rows []weekView
	for _, w := range p.Weeks {
		semester := plan.SeasonName(w.Semester) + " (Year " + strconv.Itoa(w.Year) + ")"
		for _, s := range w.Layout.Slots {
			rows = append(rows, weekView{
				Semester: semester,
				Course:   s.Shorthand,
				Day:      string(s.Day),
				Start:    s.Label.Start,
				End:      s.Label.End,
				Duration: s.Label.Duration,
				Rows:     strconv.Itoa(s.StartRow) + "/" + strconv.Itoa(s.EndRow),
				Column:   s.Column,
				Color:    s.Color,
			})
		}
	}
	return rows
}

func whenOrUndated(c plan.Course, startYear int) string {
	if w := c.When(startYear); w != "" {
		return w
	}
	return "Undated"
}

func pillText(c plan.Course) string {
	pills := plan.Pills(c.Reqs)
	if len(pills) == 0 {
		return "Does not meet any requirements"
	}
	labels := make([]string, len(pills))
	for i, p := range pills {
		labels[i] = "[" + p.Label + "]"
	}
	return strings.Join(labels, " ")
}
