package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openswoop/fourplan/pkg/plan"
	"github.com/openswoop/fourplan/pkg/plantest"
	"github.com/openswoop/fourplan/pkg/requirements"
	"github.com/openswoop/fourplan/pkg/scrape"
)

func TestBuild(t *testing.T) {
	p, err := Build(&scrape.Documents{
		Requirements: []byte(plantest.Requirements),
		Courses:      []byte(plantest.Courses),
	}, 2020)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Courses) != 11 || len(p.Undated) != 2 {
		t.Errorf("got %d courses and %d undated", len(p.Courses), len(p.Undated))
	}
	if p.Requirements.Totals.Grand != (requirements.Tally{Courses: 11, Credits: 33}) {
		t.Errorf("grand totals = %+v", p.Requirements.Totals.Grand)
	}

	type week struct {
		Year, Semester int
		Slots          int
		Hours          int
	}
	var weeks []week
	for _, w := range p.Weeks {
		weeks = append(weeks, week{w.Year, w.Semester, len(w.Layout.Slots), w.Layout.TotalHours()})
	}
	want := []week{
		{1, 1, 6, 6},
		{1, 2, 2, 6},
		{2, 1, 0, 0},
	}
	if diff := cmp.Diff(want, weeks); diff != "" {
		t.Errorf("weeks (-want +got):\n%s", diff)
	}

	fall := p.Week(1, 1)
	if fall == nil || fall.EarliestHour.Int64 != 9 || fall.LatestHour.Int64 != 15 {
		t.Errorf("fall of year 1 = %+v", fall)
	}
	if p.Week(4, 2) != nil {
		t.Error("found a layout for a semester that is not in the plan")
	}
}

func TestBuildErrors(t *testing.T) {
	t.Run("bad requirements", func(t *testing.T) {
		p, err := Build(&scrape.Documents{
			Requirements: []byte(`[`),
			Courses:      []byte(plantest.Courses),
		}, 2020)
		if err == nil || p != nil {
			t.Fatalf("got %v, %v", p, err)
		}
	})

	t.Run("malformed course", func(t *testing.T) {
		_, err := Build(&scrape.Documents{
			Requirements: []byte(plantest.Requirements),
			Courses:      []byte(`{"other": [{"subject": "BIO", "number": "110", "requirement": "none"}]}`),
		}, 2020)
		var malformed *plan.MalformedRecordError
		if !errors.As(err, &malformed) || malformed.Path != "other[0]" {
			t.Fatalf("got %v, want a MalformedRecordError at other[0]", err)
		}
	})

	t.Run("exhausted category", func(t *testing.T) {
		courses := strings.Replace(plantest.Courses,
			`{"subject": "PSY", "number": "100", "name": "General Psychology", "requirement": "none", "credits": 3}`,
			`{"subject": "FYE", "number": "101", "name": "First Year Seminar", "requirement": "gened", "attribute": "fye", "credits": 1}`, 1)
		p, err := Build(&scrape.Documents{
			Requirements: []byte(plantest.Requirements),
			Courses:      []byte(courses),
		}, 2020)
		var exhausted *requirements.CategoryExhaustedError
		if !errors.As(err, &exhausted) {
			t.Fatalf("got %v, want a CategoryExhaustedError", err)
		}
		if p == nil || p.Requirements == nil {
			t.Fatal("partial plan was not returned")
		}
		if refs := p.Requirements.Assignments["CSC-301"]; len(refs) != 2 {
			t.Errorf("assignments made before the failure were lost: %v", refs)
		}
	})
}
