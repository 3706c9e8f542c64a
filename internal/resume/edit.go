package resume

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"portfolio-server/internal/model"
)

// Edit is a single committed field change, addressed by a dotted path.
//
// Supported paths:
//
//	contact.fullName|email|phone|linkedin|github
//	summary
//	skills.languages|frameworks|databases      (comma-separated band value)
//	experience.<id>.title|company|location|startDate|endDate
//	experience.<id>.achievements.<n>
//	education.<id>.degree|institution|startDate|endDate|gpa
//	projects.<id>.title|link|technologies      (technologies comma-separated)
//	projects.<id>.bullets.<n>                  (description bullet)
//	certifications.<id>.name|issuer|date|link
type Edit struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Apply returns a new record with the edit applied. The input record is
// never mutated; the result is deep-equal to the input everywhere except at
// the edited location.
func Apply(r model.ResumeRecord, e Edit) (model.ResumeRecord, error) {
	out := r.Clone()
	parts := strings.Split(e.Path, ".")
	if len(parts) == 0 || parts[0] == "" {
		return r, fmt.Errorf("empty edit path")
	}

	switch parts[0] {
	case "summary":
		out.Summary = e.Value
		return out, nil

	case "contact":
		if len(parts) != 2 {
			return r, fmt.Errorf("invalid contact path %q", e.Path)
		}
		switch parts[1] {
		case "fullName":
			out.Contact.FullName = e.Value
		case "email":
			out.Contact.Email = e.Value
		case "phone":
			out.Contact.Phone = e.Value
		case "linkedin":
			out.Contact.LinkedIn = e.Value
		case "github":
			out.Contact.GitHub = e.Value
		default:
			return r, fmt.Errorf("unknown contact field %q", parts[1])
		}
		return out, nil

	case "skills":
		if len(parts) != 2 {
			return r, fmt.Errorf("invalid skills path %q", e.Path)
		}
		band, ok := ParseBand(parts[1])
		if !ok {
			return r, fmt.Errorf("unknown skill band %q", parts[1])
		}
		out.Skills = SetBand(out.Skills, band, e.Value)
		return out, nil

	case "experience":
		if len(parts) < 3 {
			return r, fmt.Errorf("invalid experience path %q", e.Path)
		}
		i := findExperience(out.Experience, parts[1])
		if i < 0 {
			return r, fmt.Errorf("no experience entry %q", parts[1])
		}
		entry := &out.Experience[i]
		switch parts[2] {
		case "title":
			entry.Title = e.Value
		case "company":
			entry.Company = e.Value
		case "location":
			entry.Location = e.Value
		case "startDate":
			entry.StartDate = e.Value
		case "endDate":
			entry.EndDate = e.Value
		case "achievements":
			if len(parts) != 4 {
				return r, fmt.Errorf("invalid achievement path %q", e.Path)
			}
			n, err := strconv.Atoi(parts[3])
			if err != nil || n < 0 || n >= len(entry.Achievements) {
				return r, fmt.Errorf("invalid achievement index %q", parts[3])
			}
			entry.Achievements[n] = e.Value
		default:
			return r, fmt.Errorf("unknown experience field %q", parts[2])
		}
		return out, nil

	case "education":
		if len(parts) != 3 {
			return r, fmt.Errorf("invalid education path %q", e.Path)
		}
		i := findEducation(out.Education, parts[1])
		if i < 0 {
			return r, fmt.Errorf("no education entry %q", parts[1])
		}
		entry := &out.Education[i]
		switch parts[2] {
		case "degree":
			entry.Degree = e.Value
		case "institution":
			entry.Institution = e.Value
		case "startDate":
			entry.StartDate = e.Value
		case "endDate":
			entry.EndDate = e.Value
		case "gpa":
			// the display value carries the CGPA/Percentage label
			entry.GPA = StripGradeLabel(e.Value)
		default:
			return r, fmt.Errorf("unknown education field %q", parts[2])
		}
		return out, nil

	case "projects":
		if len(parts) < 3 {
			return r, fmt.Errorf("invalid project path %q", e.Path)
		}
		i := findProject(out.Projects, parts[1])
		if i < 0 {
			return r, fmt.Errorf("no project entry %q", parts[1])
		}
		entry := &out.Projects[i]
		switch parts[2] {
		case "title":
			entry.Title = e.Value
		case "link":
			entry.Link = e.Value
		case "technologies":
			entry.Technologies = splitCommaList(e.Value)
		case "bullets":
			if len(parts) != 4 {
				return r, fmt.Errorf("invalid bullet path %q", e.Path)
			}
			n, err := strconv.Atoi(parts[3])
			if err != nil {
				return r, fmt.Errorf("invalid bullet index %q", parts[3])
			}
			entry.Description = ReplaceBullet(entry.Description, n, e.Value)
		default:
			return r, fmt.Errorf("unknown project field %q", parts[2])
		}
		return out, nil

	case "certifications":
		if len(parts) != 3 {
			return r, fmt.Errorf("invalid certification path %q", e.Path)
		}
		i := findCertification(out.Certifications, parts[1])
		if i < 0 {
			return r, fmt.Errorf("no certification entry %q", parts[1])
		}
		entry := &out.Certifications[i]
		switch parts[2] {
		case "name":
			entry.Name = e.Value
		case "issuer":
			entry.Issuer = e.Value
		case "date":
			entry.Date = e.Value
		case "link":
			entry.Link = e.Value
		default:
			return r, fmt.Errorf("unknown certification field %q", parts[2])
		}
		return out, nil
	}

	return r, fmt.Errorf("unknown edit path %q", e.Path)
}

// ReadField returns the current display value at an edit path, used to seed
// the field editor's draft. Band and bullet paths return derived values.
func ReadField(r model.ResumeRecord, path string) (string, error) {
	parts := strings.Split(path, ".")
	if len(parts) == 0 || parts[0] == "" {
		return "", fmt.Errorf("empty path")
	}

	switch parts[0] {
	case "summary":
		return r.Summary, nil
	case "contact":
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid contact path %q", path)
		}
		switch parts[1] {
		case "fullName":
			return r.Contact.FullName, nil
		case "email":
			return r.Contact.Email, nil
		case "phone":
			return r.Contact.Phone, nil
		case "linkedin":
			return r.Contact.LinkedIn, nil
		case "github":
			return r.Contact.GitHub, nil
		}
	case "skills":
		if len(parts) == 2 {
			if band, ok := ParseBand(parts[1]); ok {
				return ReadBand(r.Skills, band), nil
			}
		}
	case "experience":
		if len(parts) >= 3 {
			if i := findExperience(r.Experience, parts[1]); i >= 0 {
				entry := r.Experience[i]
				switch parts[2] {
				case "title":
					return entry.Title, nil
				case "company":
					return entry.Company, nil
				case "location":
					return entry.Location, nil
				case "startDate":
					return entry.StartDate, nil
				case "endDate":
					return entry.EndDate, nil
				case "achievements":
					if len(parts) == 4 {
						if n, err := strconv.Atoi(parts[3]); err == nil && n >= 0 && n < len(entry.Achievements) {
							return entry.Achievements[n], nil
						}
					}
				}
			}
		}
	case "education":
		if len(parts) == 3 {
			if i := findEducation(r.Education, parts[1]); i >= 0 {
				entry := r.Education[i]
				switch parts[2] {
				case "degree":
					return entry.Degree, nil
				case "institution":
					return entry.Institution, nil
				case "startDate":
					return entry.StartDate, nil
				case "endDate":
					return entry.EndDate, nil
				case "gpa":
					return GradeLabel(entry.GPA), nil
				}
			}
		}
	case "projects":
		if len(parts) >= 3 {
			if i := findProject(r.Projects, parts[1]); i >= 0 {
				entry := r.Projects[i]
				switch parts[2] {
				case "title":
					return entry.Title, nil
				case "link":
					return entry.Link, nil
				case "technologies":
					return strings.Join(entry.Technologies, ", "), nil
				case "bullets":
					if len(parts) == 4 {
						if n, err := strconv.Atoi(parts[3]); err == nil {
							bullets := Bullets(entry.Description)
							if n >= 0 && n < len(bullets) {
								return bullets[n], nil
							}
						}
					}
				}
			}
		}
	case "certifications":
		if len(parts) == 3 {
			if i := findCertification(r.Certifications, parts[1]); i >= 0 {
				entry := r.Certifications[i]
				switch parts[2] {
				case "name":
					return entry.Name, nil
				case "issuer":
					return entry.Issuer, nil
				case "date":
					return entry.Date, nil
				case "link":
					return entry.Link, nil
				}
			}
		}
	}
	return "", fmt.Errorf("unknown path %q", path)
}

// NewEntryID generates an id unique within its list. Ids are never
// referenced outside the owning record.
func NewEntryID() string { return uuid.NewString() }

// AddExperience appends a blank experience entry and returns the new record
// with the entry's id.
func AddExperience(r model.ResumeRecord) (model.ResumeRecord, string) {
	out := r.Clone()
	id := NewEntryID()
	out.Experience = append(out.Experience, model.ExperienceEntry{ID: id, Achievements: []string{""}})
	return out, id
}

func AddEducation(r model.ResumeRecord) (model.ResumeRecord, string) {
	out := r.Clone()
	id := NewEntryID()
	out.Education = append(out.Education, model.EducationEntry{ID: id})
	return out, id
}

func AddProject(r model.ResumeRecord) (model.ResumeRecord, string) {
	out := r.Clone()
	id := NewEntryID()
	out.Projects = append(out.Projects, model.ProjectEntry{ID: id})
	return out, id
}

func AddCertification(r model.ResumeRecord) (model.ResumeRecord, string) {
	out := r.Clone()
	id := NewEntryID()
	out.Certifications = append(out.Certifications, model.CertificationEntry{ID: id})
	return out, id
}

// RemoveEntry deletes an entry by id from the named list. Unknown ids are a
// no-op so removal is idempotent.
func RemoveEntry(r model.ResumeRecord, list, id string) (model.ResumeRecord, error) {
	out := r.Clone()
	switch list {
	case "experience":
		if i := findExperience(out.Experience, id); i >= 0 {
			out.Experience = append(out.Experience[:i], out.Experience[i+1:]...)
		}
	case "education":
		if i := findEducation(out.Education, id); i >= 0 {
			out.Education = append(out.Education[:i], out.Education[i+1:]...)
		}
	case "projects":
		if i := findProject(out.Projects, id); i >= 0 {
			out.Projects = append(out.Projects[:i], out.Projects[i+1:]...)
		}
	case "certifications":
		if i := findCertification(out.Certifications, id); i >= 0 {
			out.Certifications = append(out.Certifications[:i], out.Certifications[i+1:]...)
		}
	default:
		return r, fmt.Errorf("unknown entry list %q", list)
	}
	return out, nil
}

func findExperience(entries []model.ExperienceEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func findEducation(entries []model.EducationEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func findProject(entries []model.ProjectEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func findCertification(entries []model.CertificationEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}
