package resume

import "portfolio-server/internal/model"

// Seed returns the sample record a new builder session starts from. Edits
// replace the session's record wholesale; navigating away discards it.
func Seed() model.ResumeRecord {
	return model.ResumeRecord{
		Contact: model.ContactInfo{
			FullName: "Tejesh Krishnammagari",
			Email:    "tejeshkumar448@gmail.com",
			Phone:    "+91 98765 43210",
			LinkedIn: "linkedin.com/in/tejeshk",
			GitHub:   "github.com/tejeshk",
		},
		Summary: "Software engineer building full-stack web applications and automations.",
		Skills: []model.Skill{
			{Name: "Python", Category: model.SkillLanguage},
			{Name: "JavaScript", Category: model.SkillLanguage},
			{Name: "TypeScript", Category: model.SkillLanguage},
			{Name: "Go", Category: model.SkillLanguage},
			{Name: "SQL", Category: model.SkillLanguage},
			{Name: "HTML/CSS", Category: model.SkillLanguage},
			{Name: "React.js", Category: model.SkillFramework},
			{Name: "Node.js", Category: model.SkillFramework},
			{Name: "Flask", Category: model.SkillFramework},
			{Name: "Redux.js", Category: model.SkillFramework},
			{Name: "PostgreSQL", Category: model.SkillDatabase},
			{Name: "MongoDB", Category: model.SkillDatabase},
			{Name: "Redis", Category: model.SkillDatabase},
		},
		Experience: []model.ExperienceEntry{
			{
				ID:        NewEntryID(),
				Title:     "Software Application Development Engineer",
				Company:   "Intel Corporation",
				Location:  "Bengaluru, Karnataka, India",
				StartDate: "2022-06",
				Current:   true,
				Achievements: []string{
					"Developed and deployed full stack applications using React, Python, and Node.js",
					"Managed and trained interns, conducted code reviews, and led successful implementation processes",
					"Utilized industry-standard tools and techniques to ensure efficient and effective application development",
				},
			},
			{
				ID:        NewEntryID(),
				Title:     "Graduate Intern Technical",
				Company:   "Intel Corporation",
				Location:  "Bengaluru, Karnataka, India",
				StartDate: "2021-08",
				EndDate:   "2022-06",
				Achievements: []string{
					"Developed backend scripts using Python for data processing and analysis",
					"Created frontend applications to streamline critical data processing tasks",
					"Ensured thorough documentation of projects for future reference",
				},
			},
		},
		Education: []model.EducationEntry{
			{
				ID:          NewEntryID(),
				Degree:      "M.Tech Integrated Software Engineering, Computer Science",
				Institution: "Vellore Institute of Technology",
				StartDate:   "2017-07",
				EndDate:     "2022-05",
				GPA:         "9.12/10",
			},
			{
				ID:          NewEntryID(),
				Degree:      "Higher Secondary Education, MPC",
				Institution: "Sai Sri Chaitanya Junior College",
				StartDate:   "2015-06",
				EndDate:     "2017-04",
				GPA:         "97.1%",
			},
		},
		Projects: []model.ProjectEntry{
			{
				ID:           NewEntryID(),
				Title:        "Bipolar Disorder Detection",
				Description:  "Researched machine learning concepts to develop a detection model for patients and healthy siblings. Presented the paper at the International Semantic Intelligence Conference 2021. Collaborated with team members to implement the model successfully.",
				Technologies: []string{"Python", "Random Forest", "scikit-learn"},
			},
		},
		Certifications: []model.CertificationEntry{
			{
				ID:     NewEntryID(),
				Name:   "Product Assurance and Security Yellow Belt - Software",
				Issuer: "Intel Corporation",
				Date:   "2023-02",
			},
			{
				ID:     NewEntryID(),
				Name:   "The Bits and Bytes of Computer Networking",
				Issuer: "Google",
				Date:   "2019-11",
				Link:   "https://www.coursera.org/account/accomplishments",
			},
		},
	}
}
