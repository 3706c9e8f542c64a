package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-server/internal/model"
)

func testRecord() model.ResumeRecord {
	return model.ResumeRecord{
		Contact: model.ContactInfo{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+1 555 0100",
			LinkedIn: "linkedin.com/in/ada",
			GitHub:   "github.com/ada",
		},
		Summary: "Analyst and programmer.",
		Skills:  testSkills(),
		Experience: []model.ExperienceEntry{
			{
				ID:           "exp-1",
				Title:        "Engineer",
				Company:      "Analytical Engines Ltd",
				Location:     "London",
				StartDate:    "2021-08",
				EndDate:      "2022-06",
				Achievements: []string{"Wrote the first program", "Documented the engine"},
			},
		},
		Education: []model.EducationEntry{
			{ID: "edu-1", Degree: "Mathematics", Institution: "Home Tutoring", StartDate: "2015-06", EndDate: "2017-05", GPA: "9.1/10"},
		},
		Projects: []model.ProjectEntry{
			{
				ID:           "prj-1",
				Title:        "Notes on the Engine",
				Description:  "Translated the memoir. Added original notes. Published the result.",
				Link:         "https://example.com/notes",
				Technologies: []string{"Pen", "Paper"},
			},
		},
		Certifications: []model.CertificationEntry{
			{ID: "cert-1", Name: "Numbers", Issuer: "Royal Society", Date: "2020-11", Link: "https://example.com/cert"},
		},
	}
}

func TestApplyEditsSingleLocation(t *testing.T) {
	testcases := []struct {
		name  string
		edit  Edit
		check func(t *testing.T, out model.ResumeRecord)
	}{
		{
			name: "summary",
			edit: Edit{Path: "summary", Value: "New summary."},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "New summary.", out.Summary)
			},
		},
		{
			name: "contact full name",
			edit: Edit{Path: "contact.fullName", Value: "Augusta Ada King"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "Augusta Ada King", out.Contact.FullName)
			},
		},
		{
			name: "experience title",
			edit: Edit{Path: "experience.exp-1.title", Value: "Senior Engineer"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "Senior Engineer", out.Experience[0].Title)
			},
		},
		{
			name: "achievement by index",
			edit: Edit{Path: "experience.exp-1.achievements.1", Value: "Rewrote the docs"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "Rewrote the docs", out.Experience[0].Achievements[1])
				assert.Equal(t, "Wrote the first program", out.Experience[0].Achievements[0])
			},
		},
		{
			name: "gpa strips display label",
			edit: Edit{Path: "education.edu-1.gpa", Value: "CGPA: 9.5/10"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "9.5/10", out.Education[0].GPA)
			},
		},
		{
			name: "percentage gpa strips display label",
			edit: Edit{Path: "education.edu-1.gpa", Value: "Percentage: 95%"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "95%", out.Education[0].GPA)
			},
		},
		{
			name: "project technologies resplit",
			edit: Edit{Path: "projects.prj-1.technologies", Value: "Pen, Paper, Ink"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, []string{"Pen", "Paper", "Ink"}, out.Projects[0].Technologies)
			},
		},
		{
			name: "project bullet rebuilds description",
			edit: Edit{Path: "projects.prj-1.bullets.1", Value: "Added extensive notes"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "Translated the memoir. Added extensive notes. Published the result.", out.Projects[0].Description)
			},
		},
		{
			name: "skill band",
			edit: Edit{Path: "skills.databases", Value: "SQLite"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "SQLite", ReadBand(out.Skills, BandDatabases))
			},
		},
		{
			name: "certification issuer",
			edit: Edit{Path: "certifications.cert-1.issuer", Value: "The Academy"},
			check: func(t *testing.T, out model.ResumeRecord) {
				assert.Equal(t, "The Academy", out.Certifications[0].Issuer)
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			in := testRecord()
			out, err := Apply(in, tc.edit)
			require.NoError(t, err)
			tc.check(t, out)
			// the input record is never mutated
			assert.Equal(t, testRecord(), in)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	testcases := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "unknown root", path: "hobbies.reading"},
		{name: "unknown contact field", path: "contact.fax"},
		{name: "unknown experience id", path: "experience.nope.title"},
		{name: "achievement index out of range", path: "experience.exp-1.achievements.9"},
		{name: "unknown band", path: "skills.tools"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Apply(testRecord(), Edit{Path: tc.path, Value: "x"})
			assert.Error(t, err)
		})
	}
}

func TestReadFieldDerivedValues(t *testing.T) {
	r := testRecord()

	v, err := ReadField(r, "education.edu-1.gpa")
	require.NoError(t, err)
	assert.Equal(t, "CGPA: 9.1/10", v)

	v, err = ReadField(r, "skills.frameworks")
	require.NoError(t, err)
	assert.Equal(t, "React, Node.js, Flask", v)

	v, err = ReadField(r, "projects.prj-1.bullets.0")
	require.NoError(t, err)
	assert.Equal(t, "Translated the memoir.", v)

	v, err = ReadField(r, "projects.prj-1.technologies")
	require.NoError(t, err)
	assert.Equal(t, "Pen, Paper", v)

	_, err = ReadField(r, "projects.prj-1.bullets.99")
	assert.Error(t, err)
}

func TestAddAndRemoveEntries(t *testing.T) {
	r := testRecord()

	out, id := AddExperience(r)
	require.NotEmpty(t, id)
	require.Len(t, out.Experience, 2)
	assert.Equal(t, id, out.Experience[1].ID)
	// new entries carry one empty achievement so the editor has a target
	assert.Equal(t, []string{""}, out.Experience[1].Achievements)
	assert.Len(t, r.Experience, 1)

	out, err := RemoveEntry(out, "experience", id)
	require.NoError(t, err)
	assert.Len(t, out.Experience, 1)

	// unknown ids are a no-op
	out, err = RemoveEntry(out, "experience", "ghost")
	require.NoError(t, err)
	assert.Len(t, out.Experience, 1)

	_, err = RemoveEntry(out, "volunteering", "x")
	assert.Error(t, err)
}

func TestAddEntryIDsAreUnique(t *testing.T) {
	r := testRecord()
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		var id string
		r, id = AddProject(r)
		require.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, r.Projects, 6)
}
