package scrape

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

type Unmarshaler interface {
	UnmarshalDoc(doc *goquery.Document) error
}

type Scrapable interface {
	Urls() []string
	Unmarshaler
}

// HTTPError is returned when a page was reached but answered with an error
// status.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", e.URL, e.StatusCode)
}

// Scrape visits every url of s in turn and hands each page to s. It stops at
// the first error.
func Scrape(c *colly.Collector, s Scrapable) error {
	var e error
	var httpErr *HTTPError
	c = c.Clone() // same collector but without old callbacks
	c.AllowURLRevisit = true
	c.OnResponse(func(res *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body))
		if err != nil {
			e = err
			return
		}
		e = s.UnmarshalDoc(doc)
	})
	c.OnError(func(res *colly.Response, err error) {
		if res.StatusCode != 0 {
			httpErr = &HTTPError{URL: res.Request.URL.String(), StatusCode: res.StatusCode}
		}
	})

	for _, url := range s.Urls() {
		httpErr = nil
		if err := c.Visit(url); err != nil {
			if httpErr != nil {
				return httpErr
			}
			return err
		}
		if e != nil {
			return e
		}
	}
	return e
}
