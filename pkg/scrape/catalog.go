package scrape

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/openswoop/fourplan/pkg/plan"
)

// catalogSearch collects course descriptions from catalog search result
// pages, keyed by course shorthand ("CSC 142").
type catalogSearch struct {
	urls         []string
	descriptions map[string]string
}

func (s catalogSearch) Urls() []string {
	return s.urls
}

func (s catalogSearch) UnmarshalDoc(doc *goquery.Document) error {
	doc.Find(".searchresult, .courseblock").Each(func(_ int, sel *goquery.Selection) {
		title := normalizeSpace(sel.Find("h2, .courseblocktitle").First().Text())
		if title == "" {
			return
		}
		// Titles look like "CSC 142. Computer Science II. 3 Credits."
		code := strings.SplitN(title, ".", 2)[0]
		desc := normalizeSpace(sel.Find(".courseblockdesc").First().Text())
		if desc == "" || s.descriptions[code] != "" {
			return
		}
		s.descriptions[code] = desc
	})
	return nil
}

// GetDescriptions looks every distinct catalog course up in the course
// catalog searched at base. Courses the catalog has no entry for, or whose
// search page answers with an HTTP error, are left out of the map.
func GetDescriptions(c *colly.Collector, base string, courses []plan.Course) (map[string]string, error) {
	descriptions := make(map[string]string)
	seen := make(map[string]bool)
	for _, course := range courses {
		if seen[course.CatalogID()] {
			continue
		}
		seen[course.CatalogID()] = true
		search := catalogSearch{urls: []string{course.SearchURL(base)}, descriptions: descriptions}
		if err := Scrape(c, search); err != nil {
			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				continue
			}
			return nil, err
		}
	}
	return descriptions, nil
}

func normalizeSpace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
