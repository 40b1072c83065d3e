package plan

import (
	"encoding/json"
	"errors"
	"strings"
)

type Pair struct {
	Type      string `json:"type"`
	Attribute string `json:"attribute"`
}

type ReqKind int

const (
	None ReqKind = iota
	Single
	Multiple
)

// Requirements is what a course counts towards: nothing, one
// requirement/attribute pair, or several pairs at once.
type Requirements struct {
	Kind  ReqKind
	pairs []Pair
}

func NoRequirements() Requirements {
	return Requirements{Kind: None}
}

func SingleRequirement(p Pair) Requirements {
	return Requirements{Kind: Single, pairs: []Pair{p}}
}

// MultipleRequirements collapses repeated pairs, so each type and attribute
// combination appears once.
func MultipleRequirements(pairs ...Pair) Requirements {
	var out []Pair
	seen := make(map[Pair]bool)
	for _, p := range pairs {
		if !seen[p] {
			out = append(out, p)
			seen[p] = true
		}
	}
	if len(out) == 1 {
		return SingleRequirement(out[0])
	}
	return Requirements{Kind: Multiple, pairs: out}
}

// Pairs returns the pairs in source order. The slice is a copy.
func (r Requirements) Pairs() []Pair {
	return append([]Pair(nil), r.pairs...)
}

// Types returns the distinct requirement types in first-seen order, or
// "none" for a course that meets nothing.
func (r Requirements) Types() []string {
	if r.Kind == None {
		return []string{"none"}
	}
	var types []string
	seen := make(map[string]bool)
	for _, p := range r.pairs {
		if !seen[p.Type] {
			types = append(types, p.Type)
			seen[p.Type] = true
		}
	}
	return types
}

func (r Requirements) String() string {
	if r.Kind == None {
		return "none"
	}
	parts := make([]string, len(r.pairs))
	for i, p := range r.pairs {
		parts[i] = p.Type + ":" + p.Attribute
	}
	return strings.Join(parts, ",")
}

// stringOrList holds a JSON value that is either a string or a list of them.
type stringOrList struct {
	values []string
	list   bool
}

func (s *stringOrList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		s.values, s.list = []string{one}, false
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return errors.New("expected a string or a list of strings")
	}
	s.values, s.list = many, true
	return nil
}

// ParseRequirements decides the requirement variant from the raw
// "requirement" and "attribute" fields of a course record.
func ParseRequirements(requirement, attribute json.RawMessage) (Requirements, error) {
	if len(requirement) == 0 {
		return Requirements{}, errors.New("missing requirement")
	}
	var req stringOrList
	if err := json.Unmarshal(requirement, &req); err != nil {
		return Requirements{}, err
	}
	if req.list && len(req.values) == 0 {
		return Requirements{}, errors.New("empty requirement list")
	}
	if !req.list && (req.values[0] == "none" || req.values[0] == "other") {
		return NoRequirements(), nil
	}

	var attr stringOrList
	if len(attribute) == 0 {
		return Requirements{}, errors.New("missing attribute")
	}
	if err := json.Unmarshal(attribute, &attr); err != nil {
		return Requirements{}, err
	}

	switch {
	case req.list:
		// e.g. CSC 301 counts for both the major and gen ed
		if !attr.list || len(attr.values) != len(req.values) {
			return Requirements{}, &RequirementMismatchError{len(req.values), len(attr.values)}
		}
		pairs := make([]Pair, len(req.values))
		for i := range req.values {
			pairs[i] = Pair{req.values[i], attr.values[i]}
		}
		return MultipleRequirements(pairs...), nil
	case attr.list:
		// e.g. GEO 204 is both interdisciplinary and diverse
		if len(attr.values) == 0 {
			return Requirements{}, errors.New("empty attribute list")
		}
		pairs := make([]Pair, len(attr.values))
		for i, a := range attr.values {
			pairs[i] = Pair{req.values[0], a}
		}
		return MultipleRequirements(pairs...), nil
	default:
		return SingleRequirement(Pair{req.values[0], attr.values[0]}), nil
	}
}
