package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocolly/colly/v2"
	"github.com/openswoop/fourplan/pkg/plantest"
)

func serveDir(t *testing.T, dir string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.StripPrefix("/data/", http.FileServer(http.Dir(dir))))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchDocumentsLocal(t *testing.T) {
	dir := plantest.WriteDir(t)
	docs, err := FetchDocuments(context.Background(), colly.NewCollector(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if string(docs.Requirements) != plantest.Requirements {
		t.Error("requirements.json was not read back unchanged")
	}
	if string(docs.Courses) != plantest.Courses {
		t.Error("courses.json was not read back unchanged")
	}
}

func TestFetchDocumentsRemote(t *testing.T) {
	srv := serveDir(t, plantest.WriteDir(t))
	for _, base := range []string{srv.URL + "/data/", srv.URL + "/data"} {
		docs, err := FetchDocuments(context.Background(), colly.NewCollector(), base)
		if err != nil {
			t.Fatalf("%s: %v", base, err)
		}
		if string(docs.Requirements) != plantest.Requirements || string(docs.Courses) != plantest.Courses {
			t.Errorf("%s: documents differ from what was served", base)
		}
	}
}

func TestFetchDocumentsUnavailable(t *testing.T) {
	dir := plantest.WriteDir(t)
	if err := os.Remove(filepath.Join(dir, CoursesFile)); err != nil {
		t.Fatal(err)
	}
	srv := serveDir(t, dir)

	tests := map[string]string{
		"local":  dir,
		"remote": srv.URL + "/data/",
	}
	for name, base := range tests {
		t.Run(name, func(t *testing.T) {
			docs, err := FetchDocuments(context.Background(), colly.NewCollector(), base)
			var unavailable *DataUnavailableError
			if !errors.As(err, &unavailable) {
				t.Fatalf("got %v, want a DataUnavailableError", err)
			}
			if unavailable.File != CoursesFile {
				t.Errorf("file = %q, want %q", unavailable.File, CoursesFile)
			}
			if docs != nil {
				t.Error("got documents alongside the error")
			}
		})
	}
}

func TestFetchDocumentsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FetchDocuments(ctx, colly.NewCollector(), plantest.WriteDir(t))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
