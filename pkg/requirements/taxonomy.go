package requirements

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openswoop/fourplan/pkg/plan"
)

type Attr struct {
	Attribute string `json:"attribute"`
	Number    int    `json:"number"`
}

// attrList is either a single Attr or a list of them; minor requirements
// use the single form.
type attrList []Attr

func (l *attrList) UnmarshalJSON(b []byte) error {
	var many []Attr
	if err := json.Unmarshal(b, &many); err == nil {
		*l = many
		return nil
	}
	var one Attr
	if err := json.Unmarshal(b, &one); err != nil {
		return errors.New("expected an attribute or a list of attributes")
	}
	*l = attrList{one}
	return nil
}

// Document is the layout of requirements.json.
type Document struct {
	Gened []struct {
		Academic     attrList `json:"academic"`
		Distributive attrList `json:"distributive"`
		Additional   attrList `json:"additional"`
	} `json:"gened"`
	Major []struct {
		Core        attrList `json:"core"`
		Mathematics attrList `json:"mathematics"`
		Electives   attrList `json:"electives"`
	} `json:"major"`
	Minor []struct {
		Core      attrList `json:"core"`
		Electives attrList `json:"electives"`
	} `json:"minor"`
}

type group struct {
	typ   string
	name  string
	attrs attrList
}

func (d Document) groups() []group {
	var gs []group
	if len(d.Gened) > 0 {
		g := d.Gened[0]
		gs = append(gs,
			group{"gened", "academic", g.Academic},
			group{"gened", "distributive", g.Distributive},
			group{"gened", "additional", g.Additional})
	}
	if len(d.Major) > 0 {
		m := d.Major[0]
		gs = append(gs,
			group{"major", "core", m.Core},
			group{"major", "mathematics", m.Mathematics},
			group{"major", "electives", m.Electives})
	}
	if len(d.Minor) > 0 {
		m := d.Minor[0]
		gs = append(gs,
			group{"minor", "core", m.Core},
			group{"minor", "electives", m.Electives})
	}
	return gs
}

type Slot struct {
	CourseID string
}

func (s Slot) Filled() bool {
	return s.CourseID != ""
}

// Category is one requirement row group, e.g. major.mathematics.calculus,
// with Number reservable slots.
type Category struct {
	Type      string
	Group     string
	Attribute string
	Number    int
	Slots     []Slot
}

func (c Category) Key() string {
	return c.Type + "." + c.Group + "." + c.Attribute
}

func (c Category) Complete() bool {
	for _, s := range c.Slots {
		if !s.Filled() {
			return false
		}
	}
	return true
}

func (c Category) Label() string {
	return plan.ExpandAbbrev(c.Attribute)
}

func (c Category) clone() Category {
	c.Slots = append([]Slot(nil), c.Slots...)
	return c
}

// Taxonomy is the set of requirement categories in declaration order. It is
// never mutated; fill passes work on a copy.
type Taxonomy struct {
	categories []Category
	index      map[plan.Pair]int
}

func ParseTaxonomy(data []byte) (Taxonomy, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Taxonomy{}, fmt.Errorf("failed to decode requirements: %w", err)
	}
	return NewTaxonomy(doc)
}

func NewTaxonomy(doc Document) (Taxonomy, error) {
	var categories []Category
	for _, g := range doc.groups() {
		for i, a := range g.attrs {
			path := fmt.Sprintf("%s[0].%s[%d]", g.typ, g.name, i)
			if a.Attribute == "" {
				return Taxonomy{}, &plan.MalformedRecordError{Path: path, Field: "attribute"}
			}
			if a.Number < 1 {
				return Taxonomy{}, &plan.MalformedRecordError{Path: path, Field: "number", Err: fmt.Errorf("need at least one slot, got %d", a.Number)}
			}
			categories = append(categories, Category{
				Type:      g.typ,
				Group:     g.name,
				Attribute: a.Attribute,
				Number:    a.Number,
				Slots:     make([]Slot, a.Number),
			})
		}
	}
	return newTaxonomy(categories)
}

func newTaxonomy(categories []Category) (Taxonomy, error) {
	t := Taxonomy{categories: categories, index: make(map[plan.Pair]int, len(categories))}
	for i, c := range categories {
		key := plan.Pair{Type: c.Type, Attribute: c.Attribute}
		if _, dup := t.index[key]; dup {
			return Taxonomy{}, &LookupError{Type: c.Type, Attribute: c.Attribute, Duplicate: true}
		}
		t.index[key] = i
	}
	return t, nil
}

// Categories returns a copy of the categories with every slot open.
func (t Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = c.clone()
	}
	return out
}
