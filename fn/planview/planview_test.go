package planview

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openswoop/fourplan/pkg/plantest"
)

func serve(t *testing.T, dataUrl string) *httptest.ResponseRecorder {
	t.Helper()
	old := DataUrl
	DataUrl = dataUrl
	t.Cleanup(func() { DataUrl = old })

	rec := httptest.NewRecorder()
	ServePlan(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestServePlan(t *testing.T) {
	rec := serve(t, plantest.WriteDir(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	for _, want := range []string{`"Computer Science I"`, `"major.mathematics.calculus"`, `"bg-orange"`} {
		if !strings.Contains(body, want) {
			t.Errorf("dump is missing %s", want)
		}
	}
}

func TestServePlanMissingData(t *testing.T) {
	rec := serve(t, t.TempDir())
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestServePlanMalformed(t *testing.T) {
	dir := plantest.WriteDir(t)
	err := ioutil.WriteFile(filepath.Join(dir, "courses.json"), []byte(`{"other": [{"subject": "BIO"}]}`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	rec := serve(t, dir)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}
