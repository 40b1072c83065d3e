// Package planview is a Cloud Function that dumps the assembled plan.
package planview

import (
	"errors"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"github.com/gocolly/colly/v2"
	"github.com/openswoop/fourplan/pkg/app"
	"github.com/openswoop/fourplan/pkg/scrape"
)

// DataUrl is where the plan documents are read from.
var DataUrl = scrape.DefaultDataUrl

func ServePlan(w http.ResponseWriter, r *http.Request) {
	// Set up colly
	c := colly.NewCollector()
	c.AllowURLRevisit = true

	docs, err := scrape.FetchDocuments(r.Context(), c, DataUrl)
	if err != nil {
		var unavailable *scrape.DataUnavailableError
		if errors.As(err, &unavailable) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	p, err := app.Build(docs, app.DefaultStartYear)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	spew.Fdump(w, p)
}
