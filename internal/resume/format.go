// Package resume implements the editing semantics of the résumé builder:
// date and label formatting, tagged skill bands, project bullet
// derivation, path-addressed edits, and the inline field editor state
// machine. Every operation produces a new record; nothing mutates the
// caller's copy.
package resume

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

// FormatDate renders a stored "YYYY-MM" value as "Jan. 2006".
// Empty input renders empty; unparseable input is passed through as-is.
func FormatDate(yearMonth string) string {
	if yearMonth == "" {
		return ""
	}
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return t.Format("Jan. 2006")
}

// FormatDateRange renders "{start} -- {end}", where end is "Present"
// whenever current is set, regardless of the stored end date.
func FormatDateRange(start, end string, current bool) string {
	e := FormatDate(end)
	if current {
		e = "Present"
	}
	return FormatDate(start) + " -- " + e
}

// GradeLabel returns the display label for a grade value: values containing
// "%" are percentages, everything else is a CGPA. Empty grades have no label.
func GradeLabel(gpa string) string {
	if gpa == "" {
		return ""
	}
	if strings.Contains(gpa, "%") {
		return "Percentage: " + gpa
	}
	return "CGPA: " + gpa
}

// StripGradeLabel undoes GradeLabel so an edited display value can be
// written back as the raw grade.
func StripGradeLabel(display string) string {
	display = strings.TrimPrefix(display, "Percentage: ")
	display = strings.TrimPrefix(display, "CGPA: ")
	return display
}

// LinkLabel shortens a URL to an eTLD+1 label for compact display next to
// certification and project links. Falls back to the hostname, then to the
// raw input.
func LinkLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
