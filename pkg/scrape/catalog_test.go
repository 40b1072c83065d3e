package scrape

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gocolly/colly/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/openswoop/fourplan/pkg/plan"
)

const catalogPage = `<html><body><div id="fssearchresults">
<div class="searchresult search-courseresult">
  <h2>%s.&nbsp; Computer Science II.&nbsp; 3 Credits.</h2>
  <p class="courseblockdesc">Continuation of
    CSC 141 with an emphasis on data structures.</p>
</div>
</div></body></html>`

const emptyPage = `<html><body><div id="fssearchresults"><p>No results.</p></div></body></html>`

func TestGetDescriptions(t *testing.T) {
	var mu sync.Mutex
	queries := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("P")
		mu.Lock()
		queries[q]++
		mu.Unlock()
		w.Header().Set("Content-Type", "text/html")
		if q == "CSC 142" {
			fmt.Fprintf(w, catalogPage, q)
			return
		}
		if q == "ERR 500" {
			http.Error(w, "search is down", http.StatusInternalServerError)
			return
		}
		if q == "OLD 101" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, emptyPage)
	}))
	defer srv.Close()

	courses := []plan.Course{
		{Subject: "CSC", Number: "142", Instance: 1},
		{Subject: "CSC", Number: "142", Instance: 2},
		{Subject: "OLD", Number: "101", Instance: 1},
		{Subject: "ERR", Number: "500", Instance: 1},
		{Subject: "ZZZ", Number: "999", Instance: 1},
	}
	got, err := GetDescriptions(colly.NewCollector(), srv.URL+"/search/", courses)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"CSC 142": "Continuation of CSC 141 with an emphasis on data structures.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("descriptions (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]int{"CSC 142": 1, "OLD 101": 1, "ERR 500": 1, "ZZZ 999": 1}, queries); diff != "" {
		t.Errorf("catalog queries (-want +got):\n%s", diff)
	}
}

func TestGetDescriptionsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	courses := []plan.Course{{Subject: "CSC", Number: "142", Instance: 1}}
	if _, err := GetDescriptions(colly.NewCollector(), addr+"/search/", courses); err == nil {
		t.Fatal("expected an error when the catalog cannot be reached")
	}
}

func TestNormalizeSpace(t *testing.T) {
	tests := map[string]string{
		"CSC 142":                     "CSC 142",
		"  Computer\n\t Science  II ": "Computer Science II",
		"":                            "",
	}
	for in, want := range tests {
		if got := normalizeSpace(in); got != want {
			t.Errorf("normalizeSpace(%q) = %q, want %q", in, got, want)
		}
	}
}
