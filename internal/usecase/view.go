package usecase

import (
	"strings"

	"portfolio-server/internal/model"
	"portfolio-server/internal/resume"
)

// resumeView is the flattened data handed to the print template. All the
// derivation rules (date ranges, grade labels, skill bands, description
// bullets) are applied here so the template stays declarative.
type resumeView struct {
	Name           string
	ContactLine    string
	Summary        string
	Education      []educationView
	Bands          []bandView
	Experience     []experienceView
	Projects       []projectView
	Certifications []certificationView
}

type educationView struct {
	Institution string
	Degree      string
	DateRange   string
	Grade       string
}

type bandView struct {
	Label string
	Value string
}

type experienceView struct {
	Title        string
	DateRange    string
	Company      string
	Location     string
	Achievements []string
}

type projectView struct {
	Title        string
	Technologies string
	Link         string
	LinkLabel    string
	Bullets      []string
}

type certificationView struct {
	Name      string
	Issuer    string
	Date      string
	Link      string
	LinkLabel string
}

func buildView(r model.ResumeRecord) resumeView {
	v := resumeView{
		Name:    strings.ToUpper(r.Contact.FullName),
		Summary: r.Summary,
	}

	parts := []string{}
	for _, p := range []string{r.Contact.Phone, r.Contact.Email, r.Contact.LinkedIn, r.Contact.GitHub} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	v.ContactLine = strings.Join(parts, " | ")

	for _, e := range r.Education {
		v.Education = append(v.Education, educationView{
			Institution: e.Institution,
			Degree:      e.Degree,
			DateRange:   resume.FormatDateRange(e.StartDate, e.EndDate, false),
			Grade:       resume.GradeLabel(e.GPA),
		})
	}

	for _, b := range []resume.Band{resume.BandLanguages, resume.BandFrameworks, resume.BandDatabases} {
		v.Bands = append(v.Bands, bandView{Label: b.Label(), Value: resume.ReadBand(r.Skills, b)})
	}

	for _, e := range r.Experience {
		v.Experience = append(v.Experience, experienceView{
			Title:        e.Title,
			DateRange:    resume.FormatDateRange(e.StartDate, e.EndDate, e.Current),
			Company:      e.Company,
			Location:     e.Location,
			Achievements: append([]string(nil), e.Achievements...),
		})
	}

	for _, p := range r.Projects {
		v.Projects = append(v.Projects, projectView{
			Title:        p.Title,
			Technologies: strings.Join(p.Technologies, ", "),
			Link:         p.Link,
			LinkLabel:    resume.LinkLabel(p.Link),
			Bullets:      resume.Bullets(p.Description),
		})
	}

	for _, c := range r.Certifications {
		v.Certifications = append(v.Certifications, certificationView{
			Name:      c.Name,
			Issuer:    c.Issuer,
			Date:      resume.FormatDate(c.Date),
			Link:      c.Link,
			LinkLabel: resume.LinkLabel(c.Link),
		})
	}

	return v
}
