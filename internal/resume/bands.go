package resume

import (
	"strings"

	"portfolio-server/internal/model"
)

// Band is one of the three skill display groups. Each skill entry carries
// its category explicitly, so band membership survives reordering and
// resizing; a band is just the category-filtered view of the list.
type Band int

const (
	BandLanguages Band = iota
	BandFrameworks
	BandDatabases
)

func ParseBand(s string) (Band, bool) {
	switch s {
	case "languages":
		return BandLanguages, true
	case "frameworks":
		return BandFrameworks, true
	case "databases":
		return BandDatabases, true
	}
	return 0, false
}

func (b Band) String() string {
	switch b {
	case BandLanguages:
		return "languages"
	case BandFrameworks:
		return "frameworks"
	default:
		return "databases"
	}
}

// Label is the heading the band renders under.
func (b Band) Label() string {
	switch b {
	case BandLanguages:
		return "Languages"
	case BandFrameworks:
		return "Frameworks"
	default:
		return "Databases"
	}
}

// Category is the skill tag this band displays.
func (b Band) Category() model.SkillCategory {
	switch b {
	case BandLanguages:
		return model.SkillLanguage
	case BandFrameworks:
		return model.SkillFramework
	default:
		return model.SkillDatabase
	}
}

// ReadBand joins the band's skills with ", " for display, in list order.
func ReadBand(skills []model.Skill, b Band) string {
	names := []string{}
	for _, s := range skills {
		if s.Category == b.Category() {
			names = append(names, s.Name)
		}
	}
	return strings.Join(names, ", ")
}

// SetBand re-splits an edited comma-separated band value, trims whitespace,
// and replaces the band's skills with the result, returning a new list. The
// new entries take the place of the old ones so overall list order is
// stable; skills in other bands are untouched. An empty value empties the
// band.
func SetBand(skills []model.Skill, b Band, value string) []model.Skill {
	cat := b.Category()
	entries := []model.Skill{}
	for _, p := range splitCommaList(value) {
		if p != "" {
			entries = append(entries, model.Skill{Name: p, Category: cat})
		}
	}

	out := make([]model.Skill, 0, len(skills)+len(entries))
	inserted := false
	for _, s := range skills {
		if s.Category != cat {
			out = append(out, s)
			continue
		}
		if !inserted {
			out = append(out, entries...)
			inserted = true
		}
	}
	if !inserted {
		out = append(out, entries...)
	}
	return out
}

func splitCommaList(value string) []string {
	raw := strings.Split(value, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		parts = append(parts, strings.TrimSpace(p))
	}
	return parts
}
