package plan

import "strings"

// Pill is one requirement badge shown on a course tile.
type Pill struct {
	Class string
	Label string
}

// Pills lists the badges for a course. Consecutive attributes of the same
// requirement type share one type badge: GEO 204 shows [gened] [i] [j]
// instead of [gened] [i] [gened] [j].
func Pills(r Requirements) []Pill {
	if r.Kind == None {
		return nil
	}
	var pills []Pill
	prevType := ""
	for _, p := range r.pairs {
		if p.Type != prevType {
			pills = append(pills, Pill{Class: p.Type, Label: ExpandAbbrev(p.Type)})
			prevType = p.Type
		}
		// attributes with the same name can appear under several types
		// (core in both major and minor)
		pills = append(pills, Pill{Class: p.Type + "-" + p.Attribute, Label: ExpandAbbrev(p.Attribute)})
	}
	return pills
}

func ExpandAbbrev(abbrev string) string {
	switch abbrev {
	case "gened":
		return "Gen Ed"
	case "fye":
		return "First Year Experience"
	case "social":
		return "Behav. & Social Science"
	case "math":
		return "Mathematics"
	case "english":
		return "English Composition"
	case "writing":
		return "Writing Emphasis"
	case "speaking":
		return "Speaking Emphasis"
	case "i":
		return "Interdisciplinary"
	case "j":
		return "Diverse Communities"
	case "complex":
		return "Complex Large-Scale Systems"
	case "":
		return ""
	default:
		return strings.ToUpper(abbrev[:1]) + abbrev[1:]
	}
}
