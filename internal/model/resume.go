package model

// Models that match resume.schema.json used for validation and rendering.

// SkillCategory tags a skill with its display group. Category membership is
// carried explicitly on each entry so reordering the list cannot corrupt it.
type SkillCategory string

const (
	SkillLanguage  SkillCategory = "language"
	SkillFramework SkillCategory = "framework"
	SkillDatabase  SkillCategory = "database"
)

type Skill struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

type ContactInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type ExperienceEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"` // "YYYY-MM" or empty
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
}

type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	// GPA may contain "%" to indicate a percentage grade, which changes
	// the display label from CGPA to Percentage.
	GPA string `json:"gpa,omitempty"`
}

type ProjectEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies"`
}

type CertificationEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link,omitempty"`
}

// ResumeRecord aggregates one résumé. Skills keep their list order within
// each category; display groups them into bands (see internal/resume).
type ResumeRecord struct {
	Contact        ContactInfo          `json:"contact"`
	Summary        string               `json:"summary"`
	Skills         []Skill              `json:"skills"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
}

// Clone returns a deep copy. Edits operate on copies so the store's record
// is only ever replaced wholesale, never mutated in place.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	out.Skills = append([]Skill(nil), r.Skills...)
	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, e := range r.Experience {
		e.Achievements = append([]string(nil), e.Achievements...)
		out.Experience[i] = e
	}
	out.Education = append([]EducationEntry(nil), r.Education...)
	out.Projects = make([]ProjectEntry, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}
	out.Certifications = append([]CertificationEntry(nil), r.Certifications...)
	return out
}
