package scrape

import (
	"context"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/gocolly/colly/v2"
	"golang.org/x/sync/errgroup"
)

const (
	RequirementsFile = "requirements.json"
	CoursesFile      = "courses.json"

	DefaultDataUrl = "https://gw859060.github.io/four-year-plan/data/"
)

// DataUnavailableError means one of the two plan documents could not be
// loaded. The plan cannot be built without both.
type DataUnavailableError struct {
	File string
	Err  error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("%s failed to load: %v", e.File, e.Err)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

type Documents struct {
	Requirements []byte
	Courses      []byte
}

// FetchDocuments loads requirements.json and courses.json side by side from
// base, which is either an http(s) url or a local directory. It returns once
// both are in; there are no retries.
func FetchDocuments(ctx context.Context, c *colly.Collector, base string) (*Documents, error) {
	var docs Documents
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := fetch(ctx, c, base, RequirementsFile)
		docs.Requirements = b
		return err
	})
	g.Go(func() error {
		b, err := fetch(ctx, c, base, CoursesFile)
		docs.Courses = b
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &docs, nil
}

func fetch(ctx context.Context, c *colly.Collector, base, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &DataUnavailableError{file, err}
	}
	var body []byte
	var err error
	if isRemote(base) {
		body, err = visit(c, strings.TrimSuffix(base, "/")+"/"+file)
	} else {
		body, err = ioutil.ReadFile(filepath.Join(base, file))
	}
	if err != nil {
		return nil, &DataUnavailableError{file, err}
	}
	return body, nil
}

func isRemote(base string) bool {
	return strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://")
}

func visit(c *colly.Collector, url string) ([]byte, error) {
	var body []byte
	var e error
	c = c.Clone()
	c.AllowURLRevisit = true
	c.OnResponse(func(res *colly.Response) {
		body = res.Body
	})
	c.OnError(func(res *colly.Response, err error) {
		e = fmt.Errorf("HTTP %d: %v", res.StatusCode, err)
	})
	if err := c.Visit(url); err != nil {
		if e != nil {
			return nil, e
		}
		return nil, err
	}
	if e != nil {
		return nil, e
	}
	return body, nil
}
