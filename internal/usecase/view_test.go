package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-server/internal/model"
)

func TestBuildView(t *testing.T) {
	rec := model.ResumeRecord{
		Contact: model.ContactInfo{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+1 555 0100",
			GitHub:   "github.com/ada",
		},
		Summary: "Analyst.",
		Skills: []model.Skill{
			{Name: "Python", Category: model.SkillLanguage},
			{Name: "Go", Category: model.SkillLanguage},
			{Name: "React", Category: model.SkillFramework},
			{Name: "Node.js", Category: model.SkillFramework},
			{Name: "Flask", Category: model.SkillFramework},
			{Name: "Express", Category: model.SkillFramework},
			{Name: "PostgreSQL", Category: model.SkillDatabase},
		},
		Experience: []model.ExperienceEntry{
			{Title: "Engineer", Company: "Engines Ltd", StartDate: "2022-06", Current: true, Achievements: []string{"Did things"}},
		},
		Education: []model.EducationEntry{
			{Degree: "Maths", Institution: "Tutors", StartDate: "2015-06", EndDate: "2017-05", GPA: "97.1%"},
		},
		Projects: []model.ProjectEntry{
			{Title: "Notes", Description: "Wrote it. Shipped it.", Link: "https://www.github.com/ada/notes", Technologies: []string{"Pen", "Paper"}},
		},
		Certifications: []model.CertificationEntry{
			{Name: "Numbers", Issuer: "Royal Society", Date: "2020-11", Link: "coursera.org/cert/1"},
		},
	}

	v := buildView(rec)

	assert.Equal(t, "ADA LOVELACE", v.Name)
	// blank contact parts are dropped from the joined line
	assert.Equal(t, "+1 555 0100 | ada@example.com | github.com/ada", v.ContactLine)

	require.Len(t, v.Education, 1)
	assert.Equal(t, "Jun. 2015 -- May. 2017", v.Education[0].DateRange)
	assert.Equal(t, "Percentage: 97.1%", v.Education[0].Grade)

	require.Len(t, v.Bands, 3)
	assert.Equal(t, "Languages", v.Bands[0].Label)
	assert.Equal(t, "React, Node.js, Flask, Express", v.Bands[1].Value)
	assert.Equal(t, "PostgreSQL", v.Bands[2].Value)

	require.Len(t, v.Experience, 1)
	assert.Equal(t, "Jun. 2022 -- Present", v.Experience[0].DateRange)

	require.Len(t, v.Projects, 1)
	assert.Equal(t, []string{"Wrote it.", "Shipped it."}, v.Projects[0].Bullets)
	assert.Equal(t, "Pen, Paper", v.Projects[0].Technologies)
	assert.Equal(t, "github.com", v.Projects[0].LinkLabel)

	require.Len(t, v.Certifications, 1)
	assert.Equal(t, "Nov. 2020", v.Certifications[0].Date)
	assert.Equal(t, "coursera.org", v.Certifications[0].LinkLabel)
}
