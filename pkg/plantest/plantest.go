// Package plantest holds a small but complete pair of plan documents for
// tests.
//
// The fixture plan has 11 courses: 5 count for the major (16 credits), 7 for
// gen ed (21 credits) and 1 for nothing, 33 credits in all. MAT 151 and
// CSC 301 count for both the major and gen ed.
package plantest

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

const Requirements = `{
  "gened": [{
    "academic": [
      {"attribute": "fye", "number": 1},
      {"attribute": "english", "number": 2},
      {"attribute": "math", "number": 1}
    ],
    "distributive": [
      {"attribute": "science", "number": 2},
      {"attribute": "humanities", "number": 1}
    ],
    "additional": [
      {"attribute": "i", "number": 1},
      {"attribute": "j", "number": 1},
      {"attribute": "writing", "number": 3}
    ]
  }],
  "major": [{
    "core": [{"attribute": "core", "number": 4}],
    "mathematics": [
      {"attribute": "calculus", "number": 1},
      {"attribute": "statistics", "number": 1}
    ],
    "electives": [{"attribute": "electives", "number": 2}]
  }],
  "minor": [{
    "core": {"attribute": "core", "number": 2},
    "electives": {"attribute": "electives", "number": 1}
  }]
}`

const Courses = `{
  "years": [
    {
      "year": 1,
      "semesters": [
        {
          "semester": 1,
          "courses": [
            {"subject": "CSC", "number": 141, "name": "Computer Science I", "requirement": "major", "attribute": "core", "credits": 3,
             "times": [{"day": "M", "start": "09:00", "end": "09:50"}, {"day": "W", "start": "09:00", "end": "09:50"}, {"day": "F", "start": "09:00", "end": "09:50"}]},
            {"subject": "MAT", "number": "161", "name": "Elementary Statistics I", "requirement": "major", "attribute": "math", "credits": 3,
             "times": [{"day": "T", "start": "11:00", "end": "12:15"}, {"day": "R", "start": "11:00", "end": "12:15"}]},
            {"subject": "WRT", "number": "120", "name": "Effective Writing I", "requirement": "gened", "attribute": "english", "credits": 3,
             "times": [{"day": "M", "start": "13:00", "end": "14:15"}]},
            {"subject": "FYE", "number": "100", "name": "First Year Experience", "requirement": "gened", "attribute": "fye", "credits": 1}
          ]
        },
        {
          "semester": 2,
          "courses": [
            {"subject": "CSC", "number": "142", "name": "Computer Science II", "requirement": "major", "attribute": "core", "credits": 3,
             "times": [{"day": "T", "start": "14:00", "end": "15:15"}]},
            {"subject": "MAT", "number": "151", "name": "Calculus I", "requirement": ["major", "gened"], "attribute": ["math", "math"], "credits": 4,
             "times": [{"day": "M", "start": "10:00", "end": "10:50"}]},
            {"subject": "GEO", "number": "204", "name": "Geography of the World", "requirement": "gened", "attribute": ["i", "j"], "credits": 3}
          ]
        }
      ]
    },
    {
      "year": 2,
      "semesters": [
        {
          "semester": 1,
          "courses": [
            {"subject": "CSC", "number": "301", "name": "Computer Ethics", "requirement": ["major", "gened"], "attribute": ["electives", "writing"], "credits": 3},
            {"subject": "PSY", "number": "100", "name": "General Psychology", "requirement": "none", "credits": 3}
          ]
        }
      ]
    }
  ],
  "other": [
    {"subject": "WRT", "number": "200", "name": "Critical Writing", "requirement": "gened", "attribute": "english", "credits": 3},
    {"subject": "BIO", "number": "110", "name": "Introductory Biology", "requirement": "gened", "attribute": "science", "credits": 4}
  ]
}`

// WriteDir writes both documents into a temporary directory and returns it.
func WriteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"requirements.json": Requirements,
		"courses.json":      Courses,
	}
	for name, body := range files {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
