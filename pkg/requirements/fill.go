package requirements

import (
	"strings"

	"github.com/openswoop/fourplan/pkg/plan"
)

// SlotRef points at one slot of one category.
type SlotRef struct {
	Category string
	Index    int
}

type Tally struct {
	Courses int
	Credits int
}

// Totals are the summary counts. A course that counts for the major and gen
// ed is in both ByType entries but only once in Grand, so Grand can be less
// than the sum of ByType.
type Totals struct {
	ByType map[string]Tally
	Grand  Tally
}

type Result struct {
	Categories  []Category
	Assignments map[string][]SlotRef
	Totals      Totals
}

// Board holds the slot state of one fill pass.
type Board struct {
	taxonomy    Taxonomy
	categories  []Category
	assignments map[string][]SlotRef
}

func NewBoard(t Taxonomy) *Board {
	return &Board{
		taxonomy:    t,
		categories:  t.Categories(),
		assignments: make(map[string][]SlotRef),
	}
}

// Assign puts the course into the lowest open slot of the category its pair
// resolves to. A full category is an error; nothing spills into the next one.
func (b *Board) Assign(c plan.Course, p plan.Pair) (SlotRef, error) {
	p, err := resolve(c, p)
	if err != nil {
		return SlotRef{}, err
	}
	ci, ok := b.taxonomy.index[p]
	if !ok {
		return SlotRef{}, &LookupError{Type: p.Type, Attribute: p.Attribute, CourseID: c.ID()}
	}
	category := &b.categories[ci]
	for i := range category.Slots {
		if category.Slots[i].Filled() {
			continue
		}
		category.Slots[i].CourseID = c.ID()
		ref := SlotRef{Category: category.Key(), Index: i}
		b.assignments[c.ID()] = append(b.assignments[c.ID()], ref)
		return ref, nil
	}
	return SlotRef{}, &CategoryExhaustedError{Category: category.Key(), Number: category.Number, CourseID: c.ID()}
}

// AssignCourse assigns every requirement pair of the course in order.
func (b *Board) AssignCourse(c plan.Course) error {
	for _, p := range c.Reqs.Pairs() {
		if _, err := b.Assign(c, p); err != nil {
			return err
		}
	}
	return nil
}

// Result snapshots the board. Totals are left empty; see Fill.
func (b *Board) Result() *Result {
	res := &Result{
		Categories:  make([]Category, len(b.categories)),
		Assignments: make(map[string][]SlotRef, len(b.assignments)),
	}
	for i, c := range b.categories {
		res.Categories[i] = c.clone()
	}
	for id, refs := range b.assignments {
		res.Assignments[id] = append([]SlotRef(nil), refs...)
	}
	return res
}

// Fill assigns all courses, in order, to a fresh copy of the taxonomy. On
// error the returned Result still holds everything assigned before the
// failing course, and its Totals only count those courses.
func Fill(courses []plan.Course, t Taxonomy) (*Result, error) {
	b := NewBoard(t)
	done := len(courses)
	var err error
	for i, c := range courses {
		if err = b.AssignCourse(c); err != nil {
			done = i
			break
		}
	}
	res := b.Result()
	res.Totals = Summarize(courses[:done])
	return res, err
}

// Summarize counts courses and credits per requirement type and overall.
func Summarize(courses []plan.Course) Totals {
	totals := Totals{ByType: make(map[string]Tally)}
	seen := make(map[string]bool)
	for _, c := range courses {
		for _, typ := range c.Reqs.Types() {
			t := totals.ByType[typ]
			t.Courses++
			t.Credits += c.Credits
			totals.ByType[typ] = t
		}
		if !seen[c.ID()] {
			totals.Grand.Courses++
			totals.Grand.Credits += c.Credits
			seen[c.ID()] = true
		}
	}
	return totals
}

// resolve routes major math courses to the statistics or calculus row; both
// keep the "math" pill.
func resolve(c plan.Course, p plan.Pair) (plan.Pair, error) {
	if p.Type != "major" || p.Attribute != "math" {
		return p, nil
	}
	switch {
	case strings.Contains(c.Title, "Statistics"):
		p.Attribute = "statistics"
	case strings.Contains(c.Title, "Calculus"):
		p.Attribute = "calculus"
	default:
		return p, &ResolutionError{CourseID: c.ID(), Title: c.Title}
	}
	return p, nil
}
